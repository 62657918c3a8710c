package scene

import (
	"testing"

	"github.com/mkovar/fieldsim/internal/entity"
	"github.com/mkovar/fieldsim/internal/geom"
	"github.com/mkovar/fieldsim/internal/phys"
	"github.com/mkovar/fieldsim/internal/world"
)

func TestSeed(t *testing.T) {
	w := world.New(10000)
	sc, _ := Get("dipole")
	charges := sc.Build(800, nil)

	sources := Seed(w, charges, 800, 400)

	if len(sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(sources))
	}
	// 3x3 probe grid plus one marker per charge.
	if w.StaticCount() != 9+2 {
		t.Errorf("expected 11 static entities, got %d", w.StaticCount())
	}
	if w.DynamicCount() != 0 {
		t.Errorf("expected no dynamic entities, got %d", w.DynamicCount())
	}
	if !w.StaticDirty() {
		t.Error("seeding statics should mark the cache dirty")
	}

	probes := 0
	for _, s := range w.Snapshots() {
		if _, ok := s.Aux[entity.AuxField]; ok {
			probes++
		}
	}
	if probes != 9 {
		t.Errorf("expected 9 probe snapshots with field aux, got %d", probes)
	}
}

func TestSeedNoGrid(t *testing.T) {
	w := world.New(10000)
	sc, _ := Get("neutral")
	Seed(w, sc.Build(800, nil), 800, 0)

	if w.StaticCount() != 1 {
		t.Errorf("expected only the charge marker, got %d statics", w.StaticCount())
	}
}

func TestSpawnBodies(t *testing.T) {
	w := world.New(10000)
	sources := entity.StaticSources{phys.NewVacuumCharge(1.0e-5, geom.Point{X: 400, Y: 400})}

	SpawnBodies(w, sources, 5e4, Single(phys.Electron, geom.Point{X: 100, Y: 100}))

	if w.DynamicCount() != 1 {
		t.Fatalf("expected 1 dynamic entity, got %d", w.DynamicCount())
	}
	if w.StaticDirty() {
		t.Error("spawning dynamic bodies must not dirty the static cache")
	}

	w.Step(1.0 / 60.0)
	snap := w.Snapshots()[0]
	if _, ok := snap.Aux[entity.AuxVelocity]; !ok {
		t.Error("spawned body should report velocity aux after a step")
	}
}
