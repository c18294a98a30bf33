package store

import "testing"

func TestGetAbsentKey(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	value, ok, err := s.Get("missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected ok=false for absent key")
	}
	if value != "" {
		t.Errorf("expected empty value for absent key, got %q", value)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	if err := s.Set(KeyContentPreference, "video"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, ok, err := s.Get(KeyContentPreference)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected key to be present")
	}
	if value != "video" {
		t.Errorf("expected %q, got %q", "video", value)
	}
}

func TestSetOverwritesWholesale(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	if err := s.Set(KeySavedItems, `[{"id":"1"}]`); err != nil {
		t.Fatalf("first set failed: %v", err)
	}
	if err := s.Set(KeySavedItems, `[]`); err != nil {
		t.Fatalf("second set failed: %v", err)
	}

	value, ok, err := s.Get(KeySavedItems)
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if value != `[]` {
		t.Errorf("expected last write to win, got %q", value)
	}
}

func TestRemove(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	if err := s.Set(KeySessionUser, "drchen"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := s.Remove(KeySessionUser); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	_, ok, err := s.Get(KeySessionUser)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Error("expected key to be absent after remove")
	}

	// Removing an absent key is a no-op, not an error
	if err := s.Remove(KeySessionUser); err != nil {
		t.Errorf("remove of absent key should be a no-op, got %v", err)
	}
}
