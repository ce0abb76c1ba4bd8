package store

import (
	"errors"
	"path/filepath"
	"testing"

	"costshift/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scenarios.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testSnapshot() model.Snapshot {
	return model.Snapshot{
		Allocations: map[string]float64{"envelope": 22.96, "mechanical": 15.79},
		Adjustments: map[string]float64{"envelope": 7.96, "mechanical": -2.21},
		TotalCost:   50_000_000,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save("value-engineering", model.ModePercent, testSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	snap, mode, err := s.Load("value-engineering")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if mode != model.ModePercent {
		t.Errorf("mode = %q, want percent", mode)
	}
	if snap.TotalCost != 50_000_000 {
		t.Errorf("total = %v, want 50000000", snap.TotalCost)
	}
	if got := snap.Allocations["envelope"]; got != 22.96 {
		t.Errorf("allocations[envelope] = %v, want 22.96", got)
	}
	if got := snap.Adjustments["mechanical"]; got != -2.21 {
		t.Errorf("adjustments[mechanical] = %v, want -2.21", got)
	}
}

func TestSaveReplacesExisting(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save("draft", model.ModePercent, testSnapshot()); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	replacement := model.Snapshot{
		Allocations: map[string]float64{"shell": 100},
		Adjustments: map[string]float64{"shell": 0},
		TotalCost:   10_000_000,
	}
	if err := s.Save("draft", model.ModePercent, replacement); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	snap, _, err := s.Load("draft")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Allocations) != 1 {
		t.Errorf("entries = %d, want 1 (old categories must not linger)", len(snap.Allocations))
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestLoadMissing(t *testing.T) {
	s := openTestStore(t)

	if _, _, err := s.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load err = %v, want ErrNotFound", err)
	}
}

func TestSaveRejectsEmptyName(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save("", model.ModePercent, testSnapshot()); err == nil {
		t.Fatal("Save accepted empty name")
	}
}

func TestListAndDelete(t *testing.T) {
	s := openTestStore(t)

	for _, name := range []string{"baseline", "aggressive"} {
		if err := s.Save(name, model.ModeStrategy, testSnapshot()); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}

	metas, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("List returned %d, want 2", len(metas))
	}
	for _, m := range metas {
		if m.Mode != model.ModeStrategy {
			t.Errorf("meta %q mode = %q, want strategy", m.Name, m.Mode)
		}
		if m.SavedAt == "" {
			t.Errorf("meta %q has empty saved_at", m.Name)
		}
	}

	if err := s.Delete("baseline"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("baseline"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete err = %v, want ErrNotFound", err)
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
