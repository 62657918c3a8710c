package phys

import "github.com/mkovar/fieldsim/internal/geom"

// Rect is an axis-aligned sampling region.
type Rect struct {
	Min, Max geom.Point
}

// FieldSample is the superposed field at one grid point.
type FieldSample struct {
	Position geom.Point
	Field    geom.Vec2
}

// SampleGrid evaluates the superposed field of the sources on a regular grid
// over r with the given spacing, inclusive of both edges. Used to seed static
// field-marker entities and by the field inspection command.
func SampleGrid(sources []*Charge, r Rect, spacing float64) []FieldSample {
	if spacing <= 0 {
		return nil
	}
	var samples []FieldSample
	for x := r.Min.X; x <= r.Max.X; x += spacing {
		for y := r.Min.Y; y <= r.Max.Y; y += spacing {
			p := geom.Point{X: x, Y: y}
			samples = append(samples, FieldSample{
				Position: p,
				Field:    FieldSuperposition(sources, p),
			})
		}
	}
	return samples
}
