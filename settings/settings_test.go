package settings

import (
	"path/filepath"
	"testing"
)

func TestMissingFileIsEmptyStore(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.MeasurementID(); got != "" {
		t.Fatalf("expected empty measurement id, got %q", got)
	}
}

func TestMeasurementIDSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetMeasurementID("G-XYZ123"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	reloaded, err := NewStore(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got := reloaded.MeasurementID(); got != "G-XYZ123" {
		t.Fatalf("expected persisted id, got %q", got)
	}
}

func TestSetOverwrites(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetMeasurementID("G-ONE")
	s.SetMeasurementID("G-TWO")
	if got := s.MeasurementID(); got != "G-TWO" {
		t.Fatalf("expected last write to win, got %q", got)
	}
}
