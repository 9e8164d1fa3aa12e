package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	sum := cfg.Weights.Workflow + cfg.Weights.Space + cfg.Weights.Safety + cfg.Weights.Accessibility
	if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("weights sum = %v, want 1.0", sum)
	}
	if cfg.Constraints.SingleAisle <= cfg.Constraints.ComfortAisle {
		t.Errorf("single aisle %v should exceed comfort aisle %v",
			cfg.Constraints.SingleAisle, cfg.Constraints.ComfortAisle)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "galley.toml")
	data := []byte("[constraints]\ngrid_step = 0.05\n\n[heuristic]\njitter = 0.0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Constraints.GridStep != 0.05 {
		t.Errorf("GridStep = %v, want 0.05", cfg.Constraints.GridStep)
	}
	if cfg.Heuristic.Jitter != 0 {
		t.Errorf("Jitter = %v, want 0", cfg.Heuristic.Jitter)
	}
	// Unset keys keep defaults.
	if cfg.Constraints.EquipmentSpacing != 0.30 {
		t.Errorf("EquipmentSpacing = %v, want default 0.30", cfg.Constraints.EquipmentSpacing)
	}
	if cfg.Weights.Workflow != 0.40 {
		t.Errorf("Workflow weight = %v, want default 0.40", cfg.Weights.Workflow)
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data string
	}{
		{"zero grid step", "[constraints]\ngrid_step = 0.0\n"},
		{"inverted space band", "[bands]\nspace_low = 0.5\nspace_high = 0.1\n"},
		{"malformed toml", "[constraints\ngrid_step = 0.1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() = nil error, want failure")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load() = nil error for missing file")
	}
}
