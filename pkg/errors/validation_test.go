package errors

import (
	"testing"
)

func TestValidateEquipmentID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "refrigerator", false},
		{"valid snake case", "gas_range_4burner", false},
		{"valid with digits", "prep_sink_2", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 100)), true},
		{"uppercase", "GasRange", true},
		{"leading digit", "4burner_range", true},
		{"leading underscore", "_range", true},
		{"trailing underscore", "range_", true},
		{"double underscore", "gas__range", true},
		{"path traversal", "foo/../bar", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"space", "gas range", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEquipmentID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEquipmentID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "out/layout.svg", false},
		{"valid simple", "layout.json", false},
		{"valid nested", "reports/2026/plan.svg", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"path traversal", "foo/../bar", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\nbar", true},
		{"backslash", "foo\\bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
