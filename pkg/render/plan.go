package render

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/galleykit/galley/pkg/catalog"
	"github.com/galleykit/galley/pkg/geom"
	"github.com/galleykit/galley/pkg/plan"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	id        string
	timestamp time.Time
	summary   map[string]any
}

// WithJSONID fixes the simulation id instead of generating a fresh UUID.
// Useful for reproducible output and cache-keyed re-rendering.
func WithJSONID(id string) JSONOption { return func(r *jsonRenderer) { r.id = id } }

// WithJSONTimestamp fixes the document timestamp instead of using the
// current time.
func WithJSONTimestamp(t time.Time) JSONOption { return func(r *jsonRenderer) { r.timestamp = t } }

// WithJSONInputSummary attaches an echo of the request parameters
// (business, seats, requested equipment) to the document.
func WithJSONInputSummary(s map[string]any) JSONOption {
	return func(r *jsonRenderer) { r.summary = s }
}

type jsonOutput struct {
	Success      bool                   `json:"success"`
	SimulationID string                 `json:"simulation_id"`
	Timestamp    time.Time              `json:"timestamp"`
	InputSummary map[string]any         `json:"input_summary,omitempty"`
	Kitchen      plan.Kitchen           `json:"kitchen"`
	TotalArea    float64                `json:"total_area_sqm"`
	Zones        []jsonZone             `json:"zones"`
	Placements   []jsonPlacement        `json:"placements"`
	Validation   plan.ValidationSummary `json:"validation"`
	Scores       plan.ScoreBreakdown    `json:"scores"`
	Iterations   int                    `json:"iterations_run"`
	ElapsedMs    float64                `json:"computation_time_ms"`
}

type jsonZone struct {
	Type         plan.ZoneType `json:"type"`
	Polygon      [][2]float64  `json:"polygon"`
	Area         float64       `json:"area_sqm"`
	Ratio        float64       `json:"ratio"`
	EquipmentIDs []string      `json:"equipment_ids,omitempty"`
}

type jsonPlacement struct {
	ID       string        `json:"id"`
	Name     string        `json:"name,omitempty"`
	Zone     plan.ZoneType `json:"zone"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	Width    float64       `json:"width"`
	Depth    float64       `json:"depth"`
	Rotation int           `json:"rotation"`
}

// RenderJSON exports an optimization result as a pretty-printed JSON
// simulation document. This is the primary data interchange format,
// enabling:
//
//   - Integration with external floor-planning tools
//   - Caching computed layouts for fast re-rendering
//   - Re-import into the SVG renderer without re-optimizing
//
// The document includes zone polygons with their area share of the
// kitchen, placements with dimensions resolved from the equipment
// catalog (rotated footprints are reported post-rotation), the
// validation summary, the score breakdown, and run metadata.
//
// RenderJSON returns an error only if JSON marshaling fails. It does not
// modify its inputs and is safe to call concurrently.
func RenderJSON(k plan.Kitchen, res plan.Result, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.id == "" {
		r.id = uuid.NewString()
	}
	if r.timestamp.IsZero() {
		r.timestamp = time.Now().UTC()
	}

	out := jsonOutput{
		Success:      plan.Summarize(res.Violations).Passed,
		SimulationID: r.id,
		Timestamp:    r.timestamp,
		InputSummary: r.summary,
		Kitchen:      k,
		TotalArea:    k.Area(),
		Zones:        buildJSONZones(k, res.Zones),
		Placements:   buildJSONPlacements(res.Placement.Placements),
		Validation:   plan.Summarize(res.Violations),
		Scores:       res.Score,
		Iterations:   res.Iterations,
		ElapsedMs:    float64(res.Elapsed) / float64(time.Millisecond),
	}

	return json.MarshalIndent(out, "", "  ")
}

// ParseJSON reads a simulation document back into the kitchen and a
// partial result, sufficient for re-rendering. Violation details are
// not recoverable from the document; only the summary survives a
// round trip.
func ParseJSON(data []byte) (plan.Kitchen, plan.Result, error) {
	var doc jsonOutput
	if err := json.Unmarshal(data, &doc); err != nil {
		return plan.Kitchen{}, plan.Result{}, fmt.Errorf("parse simulation document: %w", err)
	}

	res := plan.Result{
		Score:      doc.Scores,
		Iterations: doc.Iterations,
		Elapsed:    time.Duration(doc.ElapsedMs * float64(time.Millisecond)),
	}
	for _, jz := range doc.Zones {
		z := plan.Zone{
			Type:         jz.Type,
			Area:         jz.Area,
			EquipmentIDs: jz.EquipmentIDs,
		}
		for _, p := range jz.Polygon {
			z.Polygon = append(z.Polygon, geom.Point{X: p[0], Y: p[1]})
		}
		res.Zones = append(res.Zones, z)
	}
	for _, jp := range doc.Placements {
		res.Placement.Placements = append(res.Placement.Placements, plan.Placement{
			ID:       jp.ID,
			Zone:     jp.Zone,
			X:        jp.X,
			Y:        jp.Y,
			Rotation: jp.Rotation,
		})
	}
	return doc.Kitchen, res, nil
}

func buildJSONZones(k plan.Kitchen, zones []plan.Zone) []jsonZone {
	total := k.Area()
	out := make([]jsonZone, 0, len(zones))
	for _, z := range zones {
		jz := jsonZone{
			Type:         z.Type,
			Polygon:      make([][2]float64, 0, len(z.Polygon)),
			Area:         z.Area,
			EquipmentIDs: z.EquipmentIDs,
		}
		for _, p := range z.Polygon {
			jz.Polygon = append(jz.Polygon, [2]float64{p.X, p.Y})
		}
		if total > 0 {
			jz.Ratio = z.Area / total
		}
		out = append(out, jz)
	}
	return out
}

func buildJSONPlacements(placements []plan.Placement) []jsonPlacement {
	out := make([]jsonPlacement, 0, len(placements))
	for _, p := range placements {
		jp := jsonPlacement{
			ID:       p.ID,
			Zone:     p.Zone,
			X:        p.X,
			Y:        p.Y,
			Rotation: p.Rotation,
		}
		if spec, ok := catalog.GetByPlacementID(p.ID); ok {
			jp.Name = spec.Name
			jp.Width, jp.Depth = spec.Width, spec.Depth
			if p.Rotation == 90 {
				jp.Width, jp.Depth = spec.Depth, spec.Width
			}
		}
		out = append(out, jp)
	}
	return out
}
