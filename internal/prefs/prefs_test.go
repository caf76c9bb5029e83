package prefs

import (
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewStore(nil)
	p, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p != (Preferences{}) {
		t.Fatalf("fresh store = %+v, want zero", p)
	}
	want := Preferences{Style: "left", IconColor: "#ff0000", Muted: true}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got, _ := s.Load(); got != want {
		t.Fatalf("Load after Save = %+v, want %+v", got, want)
	}
	if s.Current() != want {
		t.Fatalf("Current = %+v", s.Current())
	}
}

func TestPersistentStore(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	s, err := Open("liquid_button_test")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if p, err := s.Load(); err != nil || p != (Preferences{}) {
		t.Fatalf("empty store Load = %+v, %v", p, err)
	}
	want := Preferences{Style: "down", Muted: true}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened, err := Open("liquid_button_test")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("reloaded %+v, want %+v", got, want)
	}
}
