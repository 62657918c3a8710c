package world

import (
	"github.com/mkovar/fieldsim/internal/entity"
	"github.com/mkovar/fieldsim/internal/geom"
)

// DefaultBound is the symmetric world extent in length units. Entities whose
// position leaves ±bound on either axis are removed at the end of the tick in
// which the violation is detected.
const DefaultBound = 10000.0

// Snapshot is what the presentation layer receives per entity: the final
// position and the aux data its behaviors produced. For static entities the
// aux data is the one computed at insertion.
type Snapshot struct {
	Position geom.Point
	Aux      map[string]any
	Dynamic  bool
}

type record struct {
	ent *entity.Entity
	aux map[string]any
}

// World owns the entity population and advances the dynamic subset each step.
// It is single-threaded: Step is a synchronous, blocking pass over the
// current entity set, and the field-source list is read-only for its
// duration.
type World struct {
	bound      float64
	records    []record
	cacheDirty bool
	steps      int
}

// New builds an empty world with the given extent; a non-positive bound
// falls back to DefaultBound.
func New(bound float64) *World {
	if bound <= 0 {
		bound = DefaultBound
	}
	return &World{bound: bound}
}

func (w *World) Bound() float64 { return w.bound }

// Steps reports how many Step passes have run.
func (w *World) Steps() int { return w.steps }

// AddObject appends an entity in insertion order. A static entity is
// evaluated exactly once, here, and its aux data cached for its lifetime;
// the static render cache is marked dirty so the consumer rebuilds its
// layer. Dynamic entities are evaluated on every subsequent Step.
func (w *World) AddObject(e *entity.Entity) {
	rec := record{ent: e}
	if !e.Dynamic {
		out := e.Tick(0, w.bound)
		rec.aux = out.Aux
		w.cacheDirty = true
	}
	w.records = append(w.records, rec)
}

// Step advances every dynamic entity by dt in insertion order. Entities whose
// tick reports destroy are collected during the pass and removed only after
// it completes, so removal never disturbs iteration over entities not yet
// processed.
func (w *World) Step(dt float64) {
	destroyed := make(map[*entity.Entity]bool)

	for i := range w.records {
		rec := &w.records[i]
		if !rec.ent.Dynamic {
			continue
		}
		out := rec.ent.Tick(dt, w.bound)
		rec.aux = out.Aux
		if out.Destroy {
			destroyed[rec.ent] = true
		}
	}

	if len(destroyed) > 0 {
		w.removeWhere(func(r record) bool { return destroyed[r.ent] })
	}
	w.steps++
}

// ClearDynamic removes every dynamic entity immediately, independent of
// Step. Static entities and their cached layer are untouched.
func (w *World) ClearDynamic() {
	w.removeWhere(func(r record) bool { return r.ent.Dynamic })
}

// Reset removes all entities and forces a static-layer rebuild.
func (w *World) Reset() {
	w.records = nil
	w.cacheDirty = true
	w.steps = 0
}

// StaticDirty reports whether the static presentation cache must be rebuilt.
func (w *World) StaticDirty() bool { return w.cacheDirty }

// MarkStaticClean is called by the consumer once it has rebuilt its static
// layer.
func (w *World) MarkStaticClean() { w.cacheDirty = false }

// Snapshots returns the presentation hand-off for every entity, in insertion
// order.
func (w *World) Snapshots() []Snapshot {
	snaps := make([]Snapshot, 0, len(w.records))
	for _, rec := range w.records {
		snaps = append(snaps, Snapshot{
			Position: rec.ent.Position,
			Aux:      rec.aux,
			Dynamic:  rec.ent.Dynamic,
		})
	}
	return snaps
}

// DynamicCount returns the size of the dynamic subset.
func (w *World) DynamicCount() int {
	n := 0
	for _, rec := range w.records {
		if rec.ent.Dynamic {
			n++
		}
	}
	return n
}

// StaticCount returns the size of the static subset.
func (w *World) StaticCount() int {
	return len(w.records) - w.DynamicCount()
}

func (w *World) removeWhere(match func(record) bool) {
	kept := w.records[:0]
	for _, rec := range w.records {
		if !match(rec) {
			kept = append(kept, rec)
		}
	}
	// Zero the tail so removed entities are collectable.
	for i := len(kept); i < len(w.records); i++ {
		w.records[i] = record{}
	}
	w.records = kept
}
