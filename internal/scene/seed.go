package scene

import (
	"github.com/mkovar/fieldsim/internal/entity"
	"github.com/mkovar/fieldsim/internal/geom"
	"github.com/mkovar/fieldsim/internal/phys"
	"github.com/mkovar/fieldsim/internal/world"
)

// Seed populates a world with one static marker entity per charge and a grid
// of static field probes over the scene region. It returns the source list
// that bodies spawned later should feel. A non-positive spacing skips the
// probe grid.
func Seed(w *world.World, charges []*phys.Charge, size, spacing float64) entity.StaticSources {
	sources := entity.StaticSources(charges)

	if spacing > 0 {
		region := phys.Rect{Max: geom.Point{X: size, Y: size}}
		for _, sample := range phys.SampleGrid(charges, region, spacing) {
			w.AddObject(entity.New(sample.Position, false, entity.NewFieldProbe(sources)))
		}
	}
	for _, c := range charges {
		w.AddObject(entity.New(c.Position, false, entity.NewSourceMarker(c)))
	}
	return sources
}

// SpawnBodies wraps bodies in dynamic motion entities and adds them to the
// world. A positive timeScale overrides each body's own.
func SpawnBodies(w *world.World, sources entity.SourceProvider, timeScale float64, bodies []phys.Body) {
	for _, b := range bodies {
		if timeScale > 0 {
			b.TimeScale = timeScale
		}
		w.AddObject(entity.New(b.Position, true, entity.NewMotion(b, sources)))
	}
}
