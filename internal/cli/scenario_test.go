package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/galleykit/galley/pkg/pipeline"
	"github.com/galleykit/galley/pkg/plan"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestApplyScenario(t *testing.T) {
	path := writeScenario(t, `
business = "fine_dining"
seats = 60
shape = "L"
equipment = ["gas_range_4burner", "three_compartment_sink"]
iterations = 50

[ratios]
cooking = 0.38

[[fixed]]
kind = "vent"
x = 4.0
y = 5.0
width = 1.0
`)

	opts := pipeline.Options{Business: string(pipeline.DefaultBusiness)}
	if err := applyScenario(&opts, path); err != nil {
		t.Fatalf("applyScenario() error: %v", err)
	}

	if opts.Business != "fine_dining" {
		t.Errorf("Business = %q", opts.Business)
	}
	if opts.Seats != 60 || opts.Shape != "L" || opts.Iterations != 50 {
		t.Errorf("opts = %+v", opts)
	}
	if len(opts.Equipment) != 2 {
		t.Errorf("Equipment = %v", opts.Equipment)
	}
	if opts.Ratios[plan.ZoneCooking] != 0.38 {
		t.Errorf("Ratios = %v", opts.Ratios)
	}
	if len(opts.Fixed) != 1 || opts.Fixed[0].Kind != plan.FixedVent {
		t.Errorf("Fixed = %+v", opts.Fixed)
	}
}

func TestApplyScenarioFlagsWin(t *testing.T) {
	path := writeScenario(t, `
business = "bakery"
seats = 20
width = 10.0
depth = 5.0
`)

	opts := pipeline.Options{Business: "cafe", Seats: 45}
	if err := applyScenario(&opts, path); err != nil {
		t.Fatalf("applyScenario() error: %v", err)
	}

	if opts.Business != "cafe" {
		t.Errorf("Business = %q, flag value should win", opts.Business)
	}
	if opts.Seats != 45 {
		t.Errorf("Seats = %d, flag value should win", opts.Seats)
	}
	if opts.Width != 10.0 || opts.Depth != 5.0 {
		t.Errorf("unset dimensions should come from the scenario: %+v", opts)
	}
}

func TestApplyScenarioErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", `seats = `},
		{"bad zone", "[ratios]\npantry = 0.2\n"},
		{"bad fixed kind", "[[fixed]]\nkind = \"window\"\nx = 1.0\ny = 1.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, tt.content)
			opts := pipeline.Options{}
			if err := applyScenario(&opts, path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestApplyScenarioMissingFile(t *testing.T) {
	opts := pipeline.Options{}
	if err := applyScenario(&opts, filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
