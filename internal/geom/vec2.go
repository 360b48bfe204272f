// Package geom holds the 2D vector value used for positions and
// displacements. Coordinates are screen space: X grows to the right and
// Y grows downward.
package geom

import (
	"fmt"
	"math"

	"github.com/kennoath/rustparty/internal/util"
)

// Vec2 is a point or displacement. It is compared with == and copied by value.
type Vec2 struct {
	X, Y float32
}

func New(x, y float32) Vec2 { return Vec2{X: x, Y: y} }
func Zero() Vec2            { return Vec2{} }

// Y-down: Up has a negative Y.
func Up() Vec2    { return Vec2{X: 0, Y: -1} }
func Down() Vec2  { return Vec2{X: 0, Y: 1} }
func Left() Vec2  { return Vec2{X: -1, Y: 0} }
func Right() Vec2 { return Vec2{X: 1, Y: 0} }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

func (a Vec2) MulScalar(s float32) Vec2 { return Vec2{a.X * s, a.Y * s} }

// DivScalar does not check s; dividing by zero yields Inf or NaN components.
func (a Vec2) DivScalar(s float32) Vec2 { return Vec2{a.X / s, a.Y / s} }

// The float32 conversions below force each product to round on its own.
// Without them the compiler may fuse multiply-add on some architectures.

func (a Vec2) Dot(b Vec2) float32 { return float32(a.X*b.X) + float32(a.Y*b.Y) }

func (a Vec2) MagnitudeSq() float32 { return float32(a.X*a.X) + float32(a.Y*a.Y) }

func (a Vec2) Magnitude() float32 {
	return float32(math.Sqrt(float64(a.MagnitudeSq())))
}

func (a Vec2) Distance(b Vec2) float32 { return a.Sub(b).Magnitude() }

// Normalize returns the unit vector in the direction of a.
// A zero-length vector is returned as is instead of becoming NaN.
func (a Vec2) Normalize() Vec2 {
	m := a.Magnitude()
	if m == 0 {
		return a
	}
	return a.DivScalar(m)
}

// Lerp interpolates towards b. t is not clamped, so values outside [0,1]
// extrapolate along the line.
func (a Vec2) Lerp(b Vec2, t float32) Vec2 {
	return Vec2{
		X: float32(a.X*(1-t)) + float32(b.X*t),
		Y: float32(a.Y*(1-t)) + float32(b.Y*t),
	}
}

// Rotate applies the rotation matrix [cos -sin; sin cos]. With Y pointing
// down, a positive angle turns the vector clockwise on screen.
func (a Vec2) Rotate(radians float32) Vec2 {
	sin, cos := math.Sincos(float64(radians))
	s, c := float32(sin), float32(cos)
	return Vec2{
		X: float32(a.X*c) - float32(a.Y*s),
		Y: float32(a.X*s) + float32(a.Y*c),
	}
}

// Clamp limits each component to [min, max]. The min check runs first: a
// component <= min gives min, otherwise one >= max gives max. With an
// inverted range (min > max) every value hits one of the two bounds.
func (a Vec2) Clamp(min, max Vec2) Vec2 {
	return Vec2{
		X: clampComponent(a.X, min.X, max.X),
		Y: clampComponent(a.Y, min.Y, max.Y),
	}
}

func clampComponent(v, lo, hi float32) float32 {
	switch {
	case v <= lo:
		return lo
	case v >= hi:
		return hi
	default:
		return v
	}
}

// Proj is the scalar projection of a onto b. Projecting onto the zero
// vector gives 0.
func (a Vec2) Proj(b Vec2) float32 { return a.Dot(b.Normalize()) }

// Angle is atan2(y, x): the heading of a measured clockwise from Right.
func (a Vec2) Angle() float32 {
	return float32(math.Atan2(float64(a.Y), float64(a.X)))
}

// Spread rotates a by a random angle in (-amount, amount) using the
// process-wide source.
func (a Vec2) Spread(amount float32) Vec2 {
	return a.SpreadWith(util.Default(), amount)
}

// SpreadWith is Spread with a caller-supplied source.
func (a Vec2) SpreadWith(src util.Source, amount float32) Vec2 {
	return a.Rotate(util.Symmetric(src, amount))
}

func (a Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", a.X, a.Y)
}
