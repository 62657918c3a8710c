package phys

import (
	"fmt"

	"github.com/mkovar/fieldsim/internal/geom"
)

// Body is a massed, possibly charged object displaced by field forces. Bodies
// are value types: Step returns an updated copy and the caller commits it.
type Body struct {
	Position  geom.Point
	Velocity  geom.Vec2
	Mass      float64 // kg
	Charge    float64 // C
	TimeScale float64 // divisor on dt
	Label     string  // presentation hint, e.g. "e-"
}

// NewBody validates and builds a body. Mass and time scale must be strictly
// positive so the integrator never divides by zero.
func NewBody(position geom.Point, velocity geom.Vec2, mass, charge, timeScale float64, label string) (Body, error) {
	if mass <= 0 {
		return Body{}, fmt.Errorf("%w: mass must be positive, got %g", ErrInvalidParameter, mass)
	}
	if timeScale <= 0 {
		return Body{}, fmt.Errorf("%w: time scale must be positive, got %g", ErrInvalidParameter, timeScale)
	}
	return Body{
		Position:  position,
		Velocity:  velocity,
		Mass:      mass,
		Charge:    charge,
		TimeScale: timeScale,
		Label:     label,
	}, nil
}

// Preset holds the constant properties of a named particle kind. Kinds are
// data, not types: every body goes through the same constructor.
type Preset struct {
	Name   string
	Mass   float64
	Charge float64
	Label  string
}

var (
	Electron = Preset{Name: "electron", Mass: ElectronMass, Charge: -ElementaryCharge, Label: "e-"}
	Positron = Preset{Name: "positron", Mass: ElectronMass, Charge: ElementaryCharge, Label: "e+"}
	Proton   = Preset{Name: "proton", Mass: ProtonMass, Charge: ElementaryCharge, Label: "p+"}
	Neutron  = Preset{Name: "neutron", Mass: NeutronMass, Charge: 0, Label: "n"}
)

// Presets lists every named particle kind.
var Presets = []Preset{Electron, Positron, Proton, Neutron}

// PresetByName returns the preset with the given name, or false.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// NewPresetBody builds a body from a named particle kind with the default
// time scale. Preset masses are positive by construction, so this cannot fail.
func NewPresetBody(p Preset, position geom.Point, velocity geom.Vec2) Body {
	b, _ := NewBody(position, velocity, p.Mass, p.Charge, DefaultTimeScale, p.Label)
	return b
}
