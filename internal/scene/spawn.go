package scene

import (
	"math"
	"math/rand"

	"github.com/mkovar/fieldsim/internal/geom"
	"github.com/mkovar/fieldsim/internal/phys"
)

// Spawn patterns build body groups around an anchor point. They are pure: the
// caller wraps the bodies in entities and hands them to the world.

// Single spawns one body of the given kind at rest.
func Single(p phys.Preset, at geom.Point) []phys.Body {
	return []phys.Body{phys.NewPresetBody(p, at, geom.Vec2{})}
}

// Rings spawns a body at the anchor plus concentric rings of 8, 16 and 24
// bodies, all at rest.
func Rings(p phys.Preset, at geom.Point) []phys.Body {
	bodies := []phys.Body{phys.NewPresetBody(p, at, geom.Vec2{})}
	radius := 0.0
	for _, n := range []int{8, 16, 24} {
		radius += 5
		for i := 0; i < n; i++ {
			angle := float64(i) * (2 * math.Pi / float64(n))
			pos := geom.Point{
				X: at.X + 3*radius*math.Cos(angle),
				Y: at.Y + 3*radius*math.Sin(angle),
			}
			bodies = append(bodies, phys.NewPresetBody(p, pos, geom.Vec2{}))
		}
	}
	return bodies
}

// Burst spawns four concentric rings with uniformly random initial
// velocities up to maxSpeed on each axis.
func Burst(p phys.Preset, at geom.Point, maxSpeed float64, rng *rand.Rand) []phys.Body {
	bodies := []phys.Body{phys.NewPresetBody(p, at, geom.Vec2{})}
	radius := 0.0
	for _, n := range []int{8, 16, 24, 32} {
		radius += 5
		for i := 0; i < n; i++ {
			angle := float64(i) * (2 * math.Pi / float64(n))
			pos := geom.Point{
				X: at.X + 3*radius*math.Cos(angle),
				Y: at.Y + 3*radius*math.Sin(angle),
			}
			vel := geom.Vec2{
				X: (rng.Float64()*2 - 1) * maxSpeed,
				Y: (rng.Float64()*2 - 1) * maxSpeed,
			}
			bodies = append(bodies, phys.NewPresetBody(p, pos, vel))
		}
	}
	return bodies
}

// Beam spawns a 10x6 block of bodies moving right at beamSpeed.
func Beam(p phys.Preset, at geom.Point, beamSpeed float64) []phys.Body {
	var bodies []phys.Body
	for w := 0; w < 10; w++ {
		for h := 0; h < 6; h++ {
			pos := geom.Point{
				X: at.X + 10*float64(w),
				Y: at.Y + 10*float64(h-1),
			}
			bodies = append(bodies, phys.NewPresetBody(p, pos, geom.Vec2{X: beamSpeed}))
		}
	}
	return bodies
}

// BurstSpeed and BeamSpeed are the spawn velocities the live view uses, in
// the same length-per-second units the time scale compresses.
const (
	BurstSpeed = 1e7
	BeamSpeed  = 4e7
)
