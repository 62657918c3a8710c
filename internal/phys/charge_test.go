package phys

import (
	"errors"
	"math"
	"testing"

	"github.com/mkovar/fieldsim/internal/geom"
)

func TestInverseSquareFalloff(t *testing.T) {
	q := NewVacuumCharge(2.0e-5, geom.Point{})

	for _, r := range []float64{0.5, 1.0, 2.0, 10.0, 100.0} {
		field := q.FieldAt(geom.Point{X: r})
		expected := q.K() * 2.0e-5 / (r * r)

		if math.Abs(field.Norm()-expected)/expected > 1e-12 {
			t.Errorf("r=%g: expected |E|=%g, got %g", r, expected, field.Norm())
		}
		if field.X <= 0 || field.Y != 0 {
			t.Errorf("r=%g: positive charge field should point +x, got %v", r, field)
		}
	}

	// Spot check against the canonical Coulomb constant.
	field := q.FieldAt(geom.Point{X: 1})
	if math.Abs(field.Norm()-1.7975e5)/1.7975e5 > 1e-3 {
		t.Errorf("expected |E| ~ 1.7975e5 N/C at r=1, got %g", field.Norm())
	}
}

func TestNegativeChargeFieldDirection(t *testing.T) {
	q := NewVacuumCharge(-1.0e-5, geom.Point{})
	field := q.FieldAt(geom.Point{X: 3})

	if field.X >= 0 {
		t.Errorf("negative charge field should point toward the source, got %v", field)
	}
}

func TestSelfFieldIsZero(t *testing.T) {
	for _, value := range []float64{-2.0e-5, 0, 1.0e-5} {
		q := NewVacuumCharge(value, geom.Point{X: 42, Y: -7})
		field := q.FieldAt(q.Position)
		if !field.IsZero() {
			t.Errorf("value=%g: field at own position should be zero, got %v", value, field)
		}
	}
}

func TestSuperpositionCancellation(t *testing.T) {
	sources := []*Charge{
		NewVacuumCharge(1.0e-5, geom.Point{X: 0, Y: 0}),
		NewVacuumCharge(1.0e-5, geom.Point{X: 10, Y: 0}),
	}

	field := FieldSuperposition(sources, geom.Point{X: 5, Y: 0})
	if field.Norm() > 1e-9 {
		t.Errorf("same-sign symmetric charges should cancel at midpoint, got %v", field)
	}
}

func TestSuperpositionOrderIndependence(t *testing.T) {
	a := NewVacuumCharge(2.0e-5, geom.Point{X: 1, Y: 2})
	b := NewVacuumCharge(-1.0e-5, geom.Point{X: -3, Y: 4})
	c := NewVacuumCharge(5.0e-6, geom.Point{X: 0, Y: -6})
	p := geom.Point{X: 0.5, Y: 0.5}

	f1 := FieldSuperposition([]*Charge{a, b, c}, p)
	f2 := FieldSuperposition([]*Charge{c, a, b}, p)

	if f1.Sub(f2).Norm() > 1e-6*f1.Norm() {
		t.Errorf("summation order changed the field: %v vs %v", f1, f2)
	}
}

func TestNewChargeValidation(t *testing.T) {
	tests := []struct {
		name         string
		permittivity float64
	}{
		{"zero", 0},
		{"negative", -8.8542e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCharge(1.0e-5, geom.Point{}, tt.permittivity)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestCoulombConstant(t *testing.T) {
	q := NewVacuumCharge(1, geom.Point{})
	expected := 1 / (4 * math.Pi * VacuumPermittivity)

	if q.K() != expected {
		t.Errorf("expected k=%g, got %g", expected, q.K())
	}
	// ~8.9876e9 in vacuum
	if math.Abs(q.K()-8.9876e9)/8.9876e9 > 1e-3 {
		t.Errorf("vacuum k should be ~8.9876e9, got %g", q.K())
	}
}

func TestSampleGrid(t *testing.T) {
	sources := []*Charge{NewVacuumCharge(1.0e-5, geom.Point{X: 5, Y: 5})}
	r := Rect{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 10, Y: 10}}

	samples := SampleGrid(sources, r, 5)
	if len(samples) != 9 {
		t.Fatalf("expected 9 samples on a 3x3 grid, got %d", len(samples))
	}

	for _, s := range samples {
		want := sources[0].FieldAt(s.Position)
		if s.Field != want {
			t.Errorf("sample at %v: expected %v, got %v", s.Position, want, s.Field)
		}
	}

	if SampleGrid(sources, r, 0) != nil {
		t.Error("expected nil for non-positive spacing")
	}
}
