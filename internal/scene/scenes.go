package scene

import (
	"math"
	"math/rand"

	"github.com/mkovar/fieldsim/internal/geom"
	"github.com/mkovar/fieldsim/internal/phys"
)

// DefaultSize is the side length of the square region scenes are laid out in.
const DefaultSize = 800.0

// Builder constructs the charge layout for a square region of the given side
// length. Randomized layouts draw from rng so a seeded run reproduces.
type Builder func(size float64, rng *rand.Rand) []*phys.Charge

// Scene is a named preset charge layout used to seed a world.
type Scene struct {
	Name        string
	Description string
	Build       Builder
}

var catalog = []Scene{
	{
		Name:        "dipole",
		Description: "opposite charges horizontally aligned",
		Build: func(s float64, _ *rand.Rand) []*phys.Charge {
			return []*phys.Charge{
				phys.NewVacuumCharge(-2.0e-5, geom.Point{X: s * 0.25, Y: s * 0.5}),
				phys.NewVacuumCharge(2.0e-5, geom.Point{X: s * 0.75, Y: s * 0.5}),
			}
		},
	},
	{
		Name:        "quadrupole",
		Description: "four charges on a square, signs paired diagonally",
		Build: func(s float64, _ *rand.Rand) []*phys.Charge {
			return []*phys.Charge{
				phys.NewVacuumCharge(-1.0e-5, geom.Point{X: s * 0.25, Y: s * 0.25}),
				phys.NewVacuumCharge(1.0e-5, geom.Point{X: s * 0.75, Y: s * 0.25}),
				phys.NewVacuumCharge(1.0e-5, geom.Point{X: s * 0.25, Y: s * 0.75}),
				phys.NewVacuumCharge(-1.0e-5, geom.Point{X: s * 0.75, Y: s * 0.75}),
			}
		},
	},
	{
		Name:        "quadrupole-skew",
		Description: "square of charges with uneven magnitudes",
		Build: func(s float64, _ *rand.Rand) []*phys.Charge {
			return []*phys.Charge{
				phys.NewVacuumCharge(-2.0e-5, geom.Point{X: s * 0.25, Y: s * 0.25}),
				phys.NewVacuumCharge(2.0e-5, geom.Point{X: s * 0.75, Y: s * 0.25}),
				phys.NewVacuumCharge(1.0e-5, geom.Point{X: s * 0.25, Y: s * 0.75}),
				phys.NewVacuumCharge(-1.0e-5, geom.Point{X: s * 0.75, Y: s * 0.75}),
			}
		},
	},
	{
		Name:        "ring",
		Description: "32 negative charges on a circle",
		Build: func(s float64, _ *rand.Rand) []*phys.Charge {
			const n = 32
			charges := make([]*phys.Charge, 0, n)
			center := s * 0.5
			radius := s * 0.375
			for i := 0; i < n; i++ {
				angle := float64(i) * (2 * math.Pi / n)
				charges = append(charges, phys.NewVacuumCharge(-1.0e-5, geom.Point{
					X: center + radius*math.Cos(angle),
					Y: center + radius*math.Sin(angle),
				}))
			}
			return charges
		},
	},
	{
		Name:        "cage",
		Description: "negative charges along all four borders",
		Build: func(s float64, _ *rand.Rand) []*phys.Charge {
			return borderCharges(s, -5.0e-6, -5.0e-6)
		},
	},
	{
		Name:        "cage-split",
		Description: "positive top/bottom borders, negative sides",
		Build: func(s float64, _ *rand.Rand) []*phys.Charge {
			return borderCharges(s, -5.0e-6, 5.0e-6)
		},
	},
	{
		Name:        "neutral",
		Description: "a single neutral charge at the center",
		Build: func(s float64, _ *rand.Rand) []*phys.Charge {
			return []*phys.Charge{phys.NewVacuumCharge(0, geom.Point{X: s * 0.5, Y: s * 0.5})}
		},
	},
	{
		Name:        "grid-neutral",
		Description: "neutral charges on a coarse grid",
		Build: func(s float64, _ *rand.Rand) []*phys.Charge {
			var charges []*phys.Charge
			step := s / 8
			for x := 0.0; x <= s; x += step {
				for y := 0.0; y <= s; y += step {
					charges = append(charges, phys.NewVacuumCharge(0, geom.Point{X: x, Y: y}))
				}
			}
			return charges
		},
	},
	{
		Name:        "bottle",
		Description: "negative charges forming a magnetic-bottle-like throat",
		Build: func(s float64, _ *rand.Rand) []*phys.Charge {
			var charges []*phys.Charge
			for _, x := range []float64{0.375, 0.625} {
				for _, y := range []float64{0.125, 0.875} {
					charges = append(charges, phys.NewVacuumCharge(-2.0e-5, geom.Point{X: s * x, Y: s * y}))
				}
			}
			for _, x := range []float64{0.25, 0.75} {
				for _, y := range []float64{0.25, 0.375, 0.5, 0.625, 0.75} {
					charges = append(charges, phys.NewVacuumCharge(-2.0e-5, geom.Point{X: s * x, Y: s * y}))
				}
			}
			return charges
		},
	},
	{
		Name:        "channel",
		Description: "two vertical walls of negative charges",
		Build: func(s float64, _ *rand.Rand) []*phys.Charge {
			var charges []*phys.Charge
			for _, x := range []float64{0.375, 0.625} {
				for y := 0.125; y <= 0.875; y += 0.125 {
					charges = append(charges, phys.NewVacuumCharge(-2.0e-5, geom.Point{X: s * x, Y: s * y}))
				}
			}
			return charges
		},
	},
	{
		Name:        "random",
		Description: "10-15 random charges",
		Build:       randomCharges(10, 15, 2.0e-5),
	},
	{
		Name:        "random-medium",
		Description: "25-35 random charges",
		Build:       randomCharges(25, 35, 1.0e-5),
	},
	{
		Name:        "random-dense",
		Description: "60-70 random charges",
		Build:       randomCharges(60, 70, 1.0e-5),
	},
}

func borderCharges(s, sideValue, capValue float64) []*phys.Charge {
	const n = 32
	var charges []*phys.Charge
	step := s / n
	for i := 0; i <= n; i++ {
		y := float64(i) * step
		charges = append(charges,
			phys.NewVacuumCharge(sideValue, geom.Point{X: 0, Y: y}),
			phys.NewVacuumCharge(sideValue, geom.Point{X: s, Y: y}),
		)
	}
	for i := 1; i < n; i++ {
		x := float64(i) * step
		charges = append(charges,
			phys.NewVacuumCharge(capValue, geom.Point{X: x, Y: 0}),
			phys.NewVacuumCharge(capValue, geom.Point{X: x, Y: s}),
		)
	}
	return charges
}

func randomCharges(minCount, maxCount int, maxValue float64) Builder {
	return func(s float64, rng *rand.Rand) []*phys.Charge {
		count := minCount + rng.Intn(maxCount-minCount+1)
		charges := make([]*phys.Charge, 0, count)
		for i := 0; i < count; i++ {
			value := (rng.Float64()*2 - 1) * maxValue
			charges = append(charges, phys.NewVacuumCharge(value, geom.Point{
				X: rng.Float64() * s,
				Y: rng.Float64() * s,
			}))
		}
		return charges
	}
}

// Get returns the scene with the given name.
func Get(name string) (Scene, bool) {
	for _, sc := range catalog {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scene{}, false
}

// Names lists every scene in catalog order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, sc := range catalog {
		names = append(names, sc.Name)
	}
	return names
}

// All returns the full catalog.
func All() []Scene {
	return catalog
}
