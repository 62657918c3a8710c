package world_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mkovar/fieldsim/internal/entity"
	"github.com/mkovar/fieldsim/internal/geom"
	"github.com/mkovar/fieldsim/internal/phys"
	"github.com/mkovar/fieldsim/internal/world"
)

// counter counts ticks and optionally drifts the entity by a fixed velocity.
type counter struct {
	ticks    int
	velocity geom.Vec2
}

func (c *counter) Tick(pos geom.Point, dt float64) entity.Update {
	c.ticks++
	if c.velocity.IsZero() {
		return entity.Update{Aux: map[string]any{"ticks": c.ticks}}
	}
	next := pos.Translate(c.velocity.Scale(dt))
	return entity.Update{Position: &next, Aux: map[string]any{"ticks": c.ticks}}
}

var _ = Describe("World", func() {
	var w *world.World

	BeforeEach(func() {
		w = world.New(100)
	})

	Describe("static entities", func() {
		It("marks the render cache dirty exactly once per add", func() {
			Expect(w.StaticDirty()).To(BeFalse())

			w.AddObject(entity.New(geom.Point{}, false, &counter{}))
			Expect(w.StaticDirty()).To(BeTrue())

			w.MarkStaticClean()
			Expect(w.StaticDirty()).To(BeFalse())

			w.AddObject(entity.New(geom.Point{X: 1}, false, &counter{}))
			Expect(w.StaticDirty()).To(BeTrue())
		})

		It("evaluates a static entity once at insertion and never on Step", func() {
			c := &counter{}
			w.AddObject(entity.New(geom.Point{}, false, c))
			Expect(c.ticks).To(Equal(1))

			for i := 0; i < 5; i++ {
				w.Step(0.1)
			}
			Expect(c.ticks).To(Equal(1))
		})

		It("caches the one-time aux data in snapshots", func() {
			src := phys.NewVacuumCharge(1.0e-5, geom.Point{X: 10})
			probe := entity.NewFieldProbe(entity.StaticSources{src})
			at := geom.Point{X: 20}
			w.AddObject(entity.New(at, false, probe))

			snaps := w.Snapshots()
			Expect(snaps).To(HaveLen(1))
			Expect(snaps[0].Dynamic).To(BeFalse())
			Expect(snaps[0].Aux).To(HaveKeyWithValue(entity.AuxField, src.FieldAt(at)))
		})
	})

	Describe("dynamic entities", func() {
		It("ticks each dynamic entity exactly once per Step", func() {
			c := &counter{}
			w.AddObject(entity.New(geom.Point{}, true, c))
			Expect(c.ticks).To(BeZero())
			Expect(w.StaticDirty()).To(BeFalse())

			w.Step(0.1)
			w.Step(0.1)
			w.Step(0.1)
			Expect(c.ticks).To(Equal(3))
			Expect(w.Steps()).To(Equal(3))
		})

		It("removes an out-of-bounds entity at the end of its tick and never ticks it again", func() {
			escaping := &counter{velocity: geom.Vec2{X: 60}}
			w.AddObject(entity.New(geom.Point{}, true, escaping))

			w.Step(1.0) // x=60, inside ±100
			Expect(w.DynamicCount()).To(Equal(1))

			w.Step(1.0) // x=120, destroyed after the pass
			Expect(w.DynamicCount()).To(BeZero())

			ticksAtRemoval := escaping.ticks
			w.Step(1.0)
			w.Step(1.0)
			Expect(escaping.ticks).To(Equal(ticksAtRemoval))
		})

		It("defers removal so later entities in the same pass still tick", func() {
			escaping := &counter{velocity: geom.Vec2{X: 1000}}
			after := &counter{}
			w.AddObject(entity.New(geom.Point{}, true, escaping))
			w.AddObject(entity.New(geom.Point{}, true, after))

			w.Step(1.0)
			Expect(after.ticks).To(Equal(1))
			Expect(w.DynamicCount()).To(Equal(1))
		})

		It("keeps insertion order in snapshots", func() {
			w.AddObject(entity.New(geom.Point{X: 1}, true, &counter{}))
			w.AddObject(entity.New(geom.Point{X: 2}, false, &counter{}))
			w.AddObject(entity.New(geom.Point{X: 3}, true, &counter{}))

			snaps := w.Snapshots()
			Expect(snaps).To(HaveLen(3))
			Expect(snaps[0].Position.X).To(Equal(1.0))
			Expect(snaps[1].Position.X).To(Equal(2.0))
			Expect(snaps[2].Position.X).To(Equal(3.0))
		})
	})

	Describe("ClearDynamic", func() {
		It("removes all dynamic entities immediately and leaves statics", func() {
			w.AddObject(entity.New(geom.Point{}, false, &counter{}))
			w.AddObject(entity.New(geom.Point{}, true, &counter{}))
			w.AddObject(entity.New(geom.Point{}, true, &counter{}))

			w.ClearDynamic()
			Expect(w.DynamicCount()).To(BeZero())
			Expect(w.StaticCount()).To(Equal(1))
		})
	})

	Describe("Reset", func() {
		It("removes everything and forces a static rebuild", func() {
			w.AddObject(entity.New(geom.Point{}, false, &counter{}))
			w.MarkStaticClean()
			w.AddObject(entity.New(geom.Point{}, true, &counter{}))

			w.Reset()
			Expect(w.Snapshots()).To(BeEmpty())
			Expect(w.StaticDirty()).To(BeTrue())
			Expect(w.Steps()).To(BeZero())
		})
	})

	Describe("integration with the physics pipeline", func() {
		It("drives a charged body off the world and culls it", func() {
			// A strong repulsive source right next to an electron-mass body
			// with matching sign accelerates it monotonically outward.
			src := phys.NewVacuumCharge(-2.0e-5, geom.Point{X: 0, Y: 0})
			body := phys.NewPresetBody(phys.Electron, geom.Point{X: 1, Y: 0}, geom.Vec2{})
			motion := entity.NewMotion(body, entity.StaticSources{src})
			w.AddObject(entity.New(body.Position, true, motion))

			for i := 0; i < 10000 && w.DynamicCount() > 0; i++ {
				w.Step(0.016)
			}
			Expect(w.DynamicCount()).To(BeZero())
		})
	})

	It("falls back to the default bound for non-positive extents", func() {
		Expect(world.New(0).Bound()).To(Equal(world.DefaultBound))
		Expect(world.New(-5).Bound()).To(Equal(world.DefaultBound))
		Expect(world.New(250).Bound()).To(Equal(250.0))
	})
})
