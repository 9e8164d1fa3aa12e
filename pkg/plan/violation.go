package plan

import "github.com/galleykit/galley/pkg/geom"

// Severity classifies a constraint finding. Only errors fail a layout.
type Severity string

// Finding severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ViolationType identifies which constraint check produced a finding.
type ViolationType string

// Constraint check identifiers.
const (
	ViolationEquipmentSpacing ViolationType = "equipment_spacing"
	ViolationZoneAdjacency    ViolationType = "zone_adjacency"
	ViolationCollision        ViolationType = "equipment_collision"
	ViolationWallClearance    ViolationType = "wall_clearance"
	ViolationInfrastructure   ViolationType = "infrastructure"
	ViolationRangeSpacing     ViolationType = "range_spacing"
	ViolationAisleWidth       ViolationType = "aisle_width"
	ViolationZoneRatio        ViolationType = "zone_ratio"
)

// Violation is a single constraint finding with a report location.
type Violation struct {
	Type     ViolationType `json:"type"`
	Message  string        `json:"message"`
	At       geom.Point    `json:"at"`
	Severity Severity      `json:"severity"`
}

// ValidationSummary aggregates findings for reporting. Passed is true
// iff no finding has error severity.
type ValidationSummary struct {
	Passed   bool     `json:"passed"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Infos    []string `json:"infos,omitempty"`
}

// Summarize builds a ValidationSummary from raw findings.
func Summarize(violations []Violation) ValidationSummary {
	s := ValidationSummary{Passed: true}
	for _, v := range violations {
		switch v.Severity {
		case SeverityError:
			s.Passed = false
			s.Errors = append(s.Errors, v.Message)
		case SeverityWarning:
			s.Warnings = append(s.Warnings, v.Message)
		default:
			s.Infos = append(s.Infos, v.Message)
		}
	}
	return s
}
