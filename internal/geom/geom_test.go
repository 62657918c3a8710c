package geom

import (
	"errors"
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -4}

	sum := a.Add(b)
	if sum != (Vec2{4, -2}) {
		t.Errorf("add: expected {4 -2}, got %v", sum)
	}

	diff := a.Sub(b)
	if diff != (Vec2{-2, 6}) {
		t.Errorf("sub: expected {-2 6}, got %v", diff)
	}

	scaled := b.Scale(0.5)
	if scaled != (Vec2{1.5, -2}) {
		t.Errorf("scale: expected {1.5 -2}, got %v", scaled)
	}

	if dot := a.Dot(b); dot != -5 {
		t.Errorf("dot: expected -5, got %f", dot)
	}
}

func TestVec2Div(t *testing.T) {
	v := Vec2{4, -8}

	result, err := v.Div(2)
	if err != nil {
		t.Fatalf("div failed: %v", err)
	}
	if result != (Vec2{2, -4}) {
		t.Errorf("expected {2 -4}, got %v", result)
	}

	_, err = v.Div(0)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec2{3, 4}
	unit := v.Normalize()

	if math.Abs(unit.Norm()-1.0) > 1e-12 {
		t.Errorf("expected unit magnitude, got %f", unit.Norm())
	}
	if math.Abs(unit.X-0.6) > 1e-12 || math.Abs(unit.Y-0.8) > 1e-12 {
		t.Errorf("expected {0.6 0.8}, got %v", unit)
	}
}

func TestNormalizeZero(t *testing.T) {
	unit := Vec2{}.Normalize()

	if !unit.IsZero() {
		t.Errorf("zero vector should normalize to zero, got %v", unit)
	}
	if math.IsNaN(unit.X) || math.IsNaN(unit.Y) {
		t.Error("normalize of zero produced NaN")
	}
}

func TestFromPoints(t *testing.T) {
	v := FromPoints(Point{1, 1}, Point{4, 5})
	if v != (Vec2{3, 4}) {
		t.Errorf("expected {3 4}, got %v", v)
	}
	if v.Norm() != 5 {
		t.Errorf("expected norm 5, got %f", v.Norm())
	}
}

func TestTranslate(t *testing.T) {
	p := Point{1, 2}.Translate(Vec2{-3, 0.5})
	if p != (Point{-2, 2.5}) {
		t.Errorf("expected {-2 2.5}, got %v", p)
	}
}
