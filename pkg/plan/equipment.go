package plan

// Category groups equipment by the zone it belongs to.
type Category string

// Equipment categories, one per zone.
const (
	CategoryStorage     Category = "storage"
	CategoryPreparation Category = "preparation"
	CategoryCooking     Category = "cooking"
	CategoryWashing     Category = "washing"
)

// CategoryZone maps an equipment category to its target zone.
var CategoryZone = map[Category]ZoneType{
	CategoryStorage:     ZoneStorage,
	CategoryPreparation: ZonePreparation,
	CategoryCooking:     ZoneCooking,
	CategoryWashing:     ZoneWashing,
}

// EquipmentSpec is a catalog entry. Dimensions and clearances are in
// meters. Specs are read-only reference data shared across runs.
type EquipmentSpec struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`

	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`

	ClearanceFront float64 `json:"clearance_front"`
	ClearanceSides float64 `json:"clearance_sides"`

	RequiresWall        bool `json:"requires_wall,omitempty"`
	RequiresVentilation bool `json:"requires_ventilation,omitempty"`
	RequiresWater       bool `json:"requires_water,omitempty"`
	RequiresDrain       bool `json:"requires_drain,omitempty"`

	// WorkflowOrder is the item's relative position in its zone's
	// internal flow; lower values are placed first and biased away
	// from the downstream zone boundary.
	WorkflowOrder int `json:"workflow_order"`
}

// Footprint returns the floor area occupied by the spec.
func (s EquipmentSpec) Footprint() float64 {
	return s.Width * s.Depth
}

// Placement is one placed equipment instance. ID is the catalog id plus
// a positional index, since a layout can repeat catalog entries.
type Placement struct {
	ID       string   `json:"id"`
	Zone     ZoneType `json:"zone"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Rotation int      `json:"rotation"`
}

// PlacementResult is the full outcome of a placement pass.
type PlacementResult struct {
	Placements []Placement `json:"placements"`
	Unplaced   []string    `json:"unplaced,omitempty"`
	Warnings   []string    `json:"warnings,omitempty"`
}
