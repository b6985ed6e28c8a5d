package appconfig

import (
	"path/filepath"
	"testing"
)

func TestDefaultHasSaneDefaults(t *testing.T) {
	cfg := Default()
	if cfg.DataDir == "" {
		t.Error("expected a non-empty data directory")
	}
	if cfg.DefaultMinMemoryMB == 0 || cfg.DefaultMaxMemoryMB == 0 {
		t.Error("expected non-zero default memory figures")
	}
	if len(cfg.JVMArgs) == 0 {
		t.Error("expected default JVM args")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	xdgHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdgHome)

	cfg := Default()
	cfg.JavaPath = "/usr/bin/java"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reloaded.JavaPath != "/usr/bin/java" {
		t.Errorf("JavaPath = %q, want /usr/bin/java", reloaded.JavaPath)
	}
	if reloaded.DataDir != filepath.Join(xdgHome, "mccore") {
		t.Errorf("DataDir = %q", reloaded.DataDir)
	}
}

func TestMinecraftRootUnderDataDir(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/xyz"}
	if got := cfg.MinecraftRoot(); got != "/tmp/xyz/minecraft" {
		t.Errorf("MinecraftRoot = %q", got)
	}
}
