package entity

import (
	"github.com/mkovar/fieldsim/internal/geom"
	"github.com/mkovar/fieldsim/internal/phys"
)

// Aux keys produced by the built-in behaviors.
const (
	AuxVelocity     = "velocity"
	AuxAcceleration = "acceleration"
	AuxForce        = "force"
	AuxLabel        = "label"
	AuxCharge       = "charge"
	AuxField        = "field"
	AuxKinetic      = "kinetic"
)

// SourceProvider yields the field sources acting during a tick. Every body's
// force within one world step must observe the same snapshot.
type SourceProvider interface {
	Sources() []*phys.Charge
}

// StaticSources is a fixed source list.
type StaticSources []*phys.Charge

func (s StaticSources) Sources() []*phys.Charge { return s }

// Motion integrates a body under the provider's sources. It owns the body's
// velocity; the entity owns the position.
type Motion struct {
	body     phys.Body
	provider SourceProvider
}

func NewMotion(body phys.Body, provider SourceProvider) *Motion {
	return &Motion{body: body, provider: provider}
}

// Body returns the current body state, with the position as of its last tick.
func (m *Motion) Body() phys.Body { return m.body }

func (m *Motion) Tick(pos geom.Point, dt float64) Update {
	m.body.Position = pos
	res := phys.Step(m.body, m.provider.Sources(), dt)
	m.body = res.Body

	return Update{
		Position: &m.body.Position,
		Aux: map[string]any{
			AuxVelocity:     m.body.Velocity,
			AuxAcceleration: res.Acceleration,
			AuxForce:        res.Force,
			AuxLabel:        m.body.Label,
			AuxKinetic:      0.5 * m.body.Mass * m.body.Velocity.Norm2(),
		},
	}
}

// SourceMarker exposes a field source's value for presentation. It never
// moves the entity.
type SourceMarker struct {
	charge *phys.Charge
}

func NewSourceMarker(c *phys.Charge) *SourceMarker {
	return &SourceMarker{charge: c}
}

func (s *SourceMarker) Charge() *phys.Charge { return s.charge }

func (s *SourceMarker) Tick(pos geom.Point, dt float64) Update {
	return Update{Aux: map[string]any{AuxCharge: s.charge.Value}}
}

// FieldProbe samples the superposed field at the entity's position. Probes
// are attached to static entities, so the sample is computed exactly once,
// at insertion.
type FieldProbe struct {
	provider SourceProvider
}

func NewFieldProbe(provider SourceProvider) *FieldProbe {
	return &FieldProbe{provider: provider}
}

func (f *FieldProbe) Tick(pos geom.Point, dt float64) Update {
	field := phys.FieldSuperposition(f.provider.Sources(), pos)
	return Update{Aux: map[string]any{AuxField: field}}
}
