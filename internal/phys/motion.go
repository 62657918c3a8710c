package phys

import "github.com/mkovar/fieldsim/internal/geom"

// StepResult carries the committed body plus the intermediate quantities of
// one integration step, for observers and presentation.
type StepResult struct {
	Body         Body
	Force        geom.Vec2
	Acceleration geom.Vec2
}

// Step advances a body by one symplectic (semi-implicit) Euler step under the
// superposed field of the given sources:
//
//	F  = q·E(x)
//	a  = F/m
//	v' = v + a·(dt/timeScale)
//	x' = x + v'·(dt/timeScale)
//
// The position update uses the already-updated velocity; that is what keeps
// the energy behavior acceptable at large relative timesteps. The source
// slice is read-only for the duration of the step. Step is total: mass and
// time scale are validated at construction, so nothing here can divide by
// zero.
func Step(b Body, sources []*Charge, dt float64) StepResult {
	field := FieldSuperposition(sources, b.Position)
	force := field.Scale(b.Charge)

	scaledDt := dt / b.TimeScale
	acceleration := force.Scale(1 / b.Mass)

	b.Velocity = b.Velocity.Add(acceleration.Scale(scaledDt))
	b.Position = b.Position.Translate(b.Velocity.Scale(scaledDt))

	return StepResult{Body: b, Force: force, Acceleration: acceleration}
}
