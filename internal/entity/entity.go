package entity

import (
	"math"

	"github.com/mkovar/fieldsim/internal/geom"
)

// Update is what a behavior reports for one tick. A nil Position leaves the
// entity where it is; a non-nil one is adopted before the next behavior in
// the same tick runs.
type Update struct {
	Position *geom.Point
	Aux      map[string]any
}

// Behavior is one composable unit of per-tick logic. Implementations must be
// deterministic and must treat any shared source list as read-only for the
// duration of the tick.
type Behavior interface {
	Tick(pos geom.Point, dt float64) Update
}

// Entity is a simulated object composed of ordered behaviors. The position is
// the single source of truth; behaviors see the value left by their
// predecessors in the same tick. Static entities are ticked once at insertion
// and never again.
type Entity struct {
	Position  geom.Point
	Behaviors []Behavior
	Dynamic   bool
}

func New(position geom.Point, dynamic bool, behaviors ...Behavior) *Entity {
	return &Entity{
		Position:  position,
		Behaviors: behaviors,
		Dynamic:   dynamic,
	}
}

// Outcome is the result of one entity tick. Destroy tells the world to remove
// the entity at the end of the current pass.
type Outcome struct {
	Aux     map[string]any
	Destroy bool
}

// Tick runs the behaviors in sequence, threading the position through each,
// and merges their aux data with later entries overriding earlier ones. After
// the behaviors run, the position is checked against the symmetric world
// bound; a violation marks the entity for removal.
func (e *Entity) Tick(dt float64, bound float64) Outcome {
	aux := make(map[string]any)
	for _, b := range e.Behaviors {
		update := b.Tick(e.Position, dt)
		if update.Position != nil {
			e.Position = *update.Position
		}
		for k, v := range update.Aux {
			aux[k] = v
		}
	}

	out := Outcome{Aux: aux}
	if math.Abs(e.Position.X) > bound || math.Abs(e.Position.Y) > bound {
		out.Destroy = true
	}
	return out
}
