package plan

import "github.com/galleykit/galley/pkg/geom"

// ZoneType is one of the four functional work zones.
type ZoneType string

// The four work zones.
const (
	ZoneStorage     ZoneType = "storage"
	ZonePreparation ZoneType = "preparation"
	ZoneCooking     ZoneType = "cooking"
	ZoneWashing     ZoneType = "washing"
)

// ValidZones is the set of recognized zone tags.
var ValidZones = map[ZoneType]bool{
	ZoneStorage:     true,
	ZonePreparation: true,
	ZoneCooking:     true,
	ZoneWashing:     true,
}

// WorkflowOrder is the canonical goods flow through a kitchen:
// receiving into storage, prep, cooking, then dish return to washing.
// Partitioning, placement bias, and workflow scoring all follow it.
var WorkflowOrder = []ZoneType{ZoneStorage, ZonePreparation, ZoneCooking, ZoneWashing}

// AdjacencyRules lists the zones each zone must border (within the
// adjacency tolerance). Washing may sit apart from the hot line.
var AdjacencyRules = map[ZoneType][]ZoneType{
	ZoneStorage:     {ZonePreparation},
	ZonePreparation: {ZoneStorage, ZoneCooking},
	ZoneCooking:     {ZonePreparation},
	ZoneWashing:     {},
}

// RatioBounds is an advisory min/max share of kitchen area for a zone.
type RatioBounds struct {
	Min, Max float64
}

// RecommendedRatios are the advisory per-zone area shares. Falling
// outside them is reported as an info finding, never an error.
var RecommendedRatios = map[ZoneType]RatioBounds{
	ZoneStorage:     {Min: 0.15, Max: 0.25},
	ZonePreparation: {Min: 0.20, Max: 0.30},
	ZoneCooking:     {Min: 0.30, Max: 0.40},
	ZoneWashing:     {Min: 0.15, Max: 0.20},
}

// Zone is one partitioned work area. Created fresh each optimizer
// iteration and never mutated afterwards.
type Zone struct {
	Type         ZoneType     `json:"type"`
	Polygon      geom.Polygon `json:"polygon"`
	Area         float64      `json:"area"`
	EquipmentIDs []string     `json:"equipment_ids,omitempty"`
}
