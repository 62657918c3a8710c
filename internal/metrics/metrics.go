package metrics

import (
	"github.com/mkovar/fieldsim/internal/entity"
	"github.com/mkovar/fieldsim/internal/geom"
	"github.com/mkovar/fieldsim/internal/world"
)

// Metric observes the world snapshot after each step and reduces it to one
// number.
type Metric interface {
	Name() string
	Observe(snaps []world.Snapshot, t float64)
	Value() float64
	Reset()
}

// KineticEnergy accumulates the mean total kinetic energy of the dynamic
// population over the observed steps.
type KineticEnergy struct {
	total   float64
	samples int
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(snaps []world.Snapshot, t float64) {
	sum := 0.0
	for _, s := range snaps {
		if ke, ok := s.Aux[entity.AuxKinetic].(float64); ok {
			sum += ke
		}
	}
	k.total += sum
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}

// MaxSpeed tracks the fastest body speed seen across all observed steps.
type MaxSpeed struct {
	max float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{} }

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(snaps []world.Snapshot, t float64) {
	for _, s := range snaps {
		if v, ok := s.Aux[entity.AuxVelocity].(geom.Vec2); ok {
			if speed := v.Norm(); speed > m.max {
				m.max = speed
			}
		}
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }

func (m *MaxSpeed) Reset() { m.max = 0 }

// Population tracks the peak dynamic entity count.
type Population struct {
	peak int
}

func NewPopulation() *Population { return &Population{} }

func (p *Population) Name() string { return "peak_population" }

func (p *Population) Observe(snaps []world.Snapshot, t float64) {
	n := 0
	for _, s := range snaps {
		if s.Dynamic {
			n++
		}
	}
	if n > p.peak {
		p.peak = n
	}
}

func (p *Population) Value() float64 { return float64(p.peak) }

func (p *Population) Reset() { p.peak = 0 }
