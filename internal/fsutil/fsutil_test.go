package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}

	if !Exists(file) {
		t.Error("Exists should be true for a present file")
	}
	if Exists(filepath.Join(dir, "missing.txt")) {
		t.Error("Exists should be false for a missing file")
	}
	if Exists(dir) {
		t.Error("Exists should be false for a directory")
	}
}

func TestSHA1(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(file, []byte("hello world"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := SHA1(file)
	if err != nil {
		t.Fatal(err)
	}
	want := "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"
	if got != want {
		t.Errorf("SHA1 = %s, want %s", got, want)
	}
}

func TestSHA1MissingFile(t *testing.T) {
	if _, err := SHA1(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
