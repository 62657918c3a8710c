package geom

import (
	"errors"
	"math"
)

// ErrDivisionByZero is returned by Vec2.Div for a zero divisor.
var ErrDivisionByZero = errors.New("geom: division by zero")

// Point is a location in 2D space.
type Point struct {
	X, Y float64
}

// Vec2 is a 2D displacement, velocity, force or field quantity.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Div divides the vector by a scalar. The zero divisor is an explicit error;
// callers on the simulation hot path guard against it at construction time.
func (v Vec2) Div(k float64) (Vec2, error) {
	if k == 0 {
		return Vec2{}, ErrDivisionByZero
	}
	return Vec2{v.X / k, v.Y / k}, nil
}

func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Norm2 is the squared magnitude.
func (v Vec2) Norm2() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the same direction. The zero vector
// normalizes to the zero vector; this never fails and never produces NaN.
func (v Vec2) Normalize() Vec2 {
	mag := v.Norm()
	if mag > 0 {
		return Vec2{v.X / mag, v.Y / mag}
	}
	return Vec2{}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// FromPoints builds the vector going from a to b.
func FromPoints(a, b Point) Vec2 {
	return Vec2{b.X - a.X, b.Y - a.Y}
}

// Translate moves the point by a displacement vector.
func (p Point) Translate(v Vec2) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}
