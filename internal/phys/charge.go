package phys

import (
	"fmt"
	"math"

	"github.com/mkovar/fieldsim/internal/geom"
)

// Charge is a point charge acting as a field source. It is immutable after
// construction; the Coulomb constant k is derived once from the permittivity
// and never recomputed.
type Charge struct {
	Value        float64 // C
	Position     geom.Point
	Permittivity float64 // F/m

	k float64
}

// NewCharge builds a point charge in a medium with the given permittivity.
func NewCharge(value float64, position geom.Point, permittivity float64) (*Charge, error) {
	if permittivity <= 0 {
		return nil, fmt.Errorf("%w: permittivity must be positive, got %g", ErrInvalidParameter, permittivity)
	}
	return &Charge{
		Value:        value,
		Position:     position,
		Permittivity: permittivity,
		k:            1 / (4 * math.Pi * permittivity),
	}, nil
}

// NewVacuumCharge builds a point charge in vacuum.
func NewVacuumCharge(value float64, position geom.Point) *Charge {
	c, _ := NewCharge(value, position, VacuumPermittivity)
	return c
}

// K returns the Coulomb constant 1/(4π·ε) fixed at construction.
func (c *Charge) K() float64 { return c.k }

// FieldAt evaluates the electric field this charge induces at p:
//
//	E = k·Q/r² · r̂
//
// The field exactly at the charge's own position is defined as the zero
// vector, so the singularity is never divided through. The 3D law is used
// with the planar distance² unchanged; downstream scaling depends on it.
func (c *Charge) FieldAt(p geom.Point) geom.Vec2 {
	d := geom.FromPoints(c.Position, p)
	r2 := d.Norm2()
	if r2 == 0 {
		return geom.Vec2{}
	}
	return d.Normalize().Scale(c.k * c.Value / r2)
}

// FieldSuperposition sums the field contributions of every source at p.
// Summation order does not matter beyond floating-point tolerance.
func FieldSuperposition(sources []*Charge, p geom.Point) geom.Vec2 {
	var field geom.Vec2
	for _, c := range sources {
		field = field.Add(c.FieldAt(p))
	}
	return field
}
