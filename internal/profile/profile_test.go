package profile

import (
	"testing"
)

func TestEnsureActiveCreatesAndPersists(t *testing.T) {
	dir := t.TempDir()

	s := NewStore(dir)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	p, err := s.EnsureActive("Tester")
	if err != nil {
		t.Fatalf("EnsureActive: %v", err)
	}
	if p.Name != "Tester" {
		t.Errorf("Name = %q", p.Name)
	}
	if len(p.ID) != 32 || len(p.AccessToken) != 32 {
		t.Errorf("expected 128-bit hex id/token, got id=%q token=%q", p.ID, p.AccessToken)
	}

	reloaded := NewStore(dir)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	active := reloaded.GetActive()
	if active == nil || active.ID != p.ID {
		t.Fatalf("expected the persisted profile to survive reload, got %+v", active)
	}
}

func TestEnsureActiveReusesExisting(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	first, err := s.EnsureActive("Tester")
	if err != nil {
		t.Fatalf("EnsureActive: %v", err)
	}
	second, err := s.EnsureActive("SomeoneElse")
	if err != nil {
		t.Fatalf("EnsureActive: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected EnsureActive to reuse the existing profile, got a new one")
	}
}

func TestSetActiveUnknownID(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.SetActive("nope"); err == nil {
		t.Fatal("expected an error for an unknown profile id")
	}
}

func TestToLaunchProfile(t *testing.T) {
	p := &Profile{ID: "abc", Name: "Tester"}
	lp := p.ToLaunchProfile()
	if lp.ID != "abc" || lp.Name != "Tester" {
		t.Errorf("ToLaunchProfile = %+v", lp)
	}
}
