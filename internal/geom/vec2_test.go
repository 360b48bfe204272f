package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kennoath/rustparty/internal/util"
)

const eps = 1e-5

var samples = []Vec2{
	New(0, 0),
	New(1, 0),
	New(3, 4),
	New(-2.5, 7.25),
	New(1e3, -1e-3),
	New(-0.1, -0.2),
}

func requireVecNear(t *testing.T, want, got Vec2, delta float64) {
	t.Helper()
	require.InDelta(t, want.X, got.X, delta, "x: want %v got %v", want, got)
	require.InDelta(t, want.Y, got.Y, delta, "y: want %v got %v", want, got)
}

func TestConstants(t *testing.T) {
	require.Equal(t, Vec2{0, 0}, Zero())
	require.Equal(t, Vec2{0, -1}, Up())
	require.Equal(t, Vec2{0, 1}, Down())
	require.Equal(t, Vec2{-1, 0}, Left())
	require.Equal(t, Vec2{1, 0}, Right())
	require.Equal(t, Vec2{2, -3}, New(2, -3))
}

func TestArithmeticIdentities(t *testing.T) {
	for _, v := range samples {
		require.Equal(t, v, v.Add(Zero()))
		require.Equal(t, Zero(), v.Sub(v))
		for _, s := range []float32{-3, 0.5, 2, 1e4} {
			requireVecNear(t, v, v.MulScalar(s).DivScalar(s), 1e-3)
		}
	}
	require.Equal(t, New(4, 6), New(1, 2).Add(New(3, 4)))
	require.Equal(t, New(1, 2).Add(New(3, 4)), New(3, 4).Add(New(1, 2)))
	require.Equal(t, New(-2, -2), New(1, 2).Sub(New(3, 4)))
}

func TestDivScalarByZero(t *testing.T) {
	v := New(1, -1).DivScalar(0)
	require.True(t, math.IsInf(float64(v.X), 1))
	require.True(t, math.IsInf(float64(v.Y), -1))

	z := Zero().DivScalar(0)
	require.True(t, math.IsNaN(float64(z.X)))
	require.True(t, math.IsNaN(float64(z.Y)))
}

func TestMagnitude(t *testing.T) {
	require.Equal(t, float32(5), New(3, 4).Magnitude())
	require.Equal(t, float32(25), New(3, 4).MagnitudeSq())
	require.Equal(t, float32(0), Zero().Magnitude())
	require.Equal(t, float32(5), New(1, 1).Distance(New(4, 5)))

	nan := float32(math.NaN())
	require.True(t, math.IsNaN(float64(New(nan, 1).Magnitude())))
}

func TestNormalize(t *testing.T) {
	require.Equal(t, Zero(), Zero().Normalize())
	for _, v := range samples[1:] {
		require.InDelta(t, 1.0, v.Normalize().Magnitude(), eps)
	}
	requireVecNear(t, New(0.6, 0.8), New(3, 4).Normalize(), eps)
}

func TestLerp(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			require.Equal(t, a, a.Lerp(b, 0))
			require.Equal(t, b, a.Lerp(b, 1))
		}
	}
	a, b := New(0, 0), New(10, -4)
	requireVecNear(t, New(5, -2), a.Lerp(b, 0.5), eps)
	// no clamping of t
	requireVecNear(t, New(20, -8), a.Lerp(b, 2), eps)
	requireVecNear(t, New(-10, 4), a.Lerp(b, -1), eps)
}

func TestRotate(t *testing.T) {
	for _, v := range samples {
		requireVecNear(t, v, v.Rotate(0), eps)
		for _, theta := range []float32{0.1, 1, -2.5, math.Pi, 7} {
			requireVecNear(t, v, v.Rotate(theta).Rotate(-theta), 1e-3)
		}
	}
	// right turns into down: clockwise on a Y-down screen
	requireVecNear(t, Down(), Right().Rotate(math.Pi/2), eps)
	requireVecNear(t, Right(), Up().Rotate(math.Pi/2), eps)
	requireVecNear(t, Up(), Right().Rotate(-math.Pi/2), eps)
}

func TestClamp(t *testing.T) {
	cases := []struct {
		name        string
		v, min, max Vec2
		want        Vec2
	}{
		{"both out", New(-5, 15), New(0, 0), New(10, 10), New(0, 10)},
		{"inside", New(3, 7), New(0, 0), New(10, 10), New(3, 7)},
		{"on min", New(0, 0), New(0, 0), New(10, 10), New(0, 0)},
		{"on max", New(10, 10), New(0, 0), New(10, 10), New(10, 10)},
		{"inverted range between bounds", New(5, 5), New(8, 8), New(2, 2), New(2, 2)},
		{"inverted range on min", New(8, 8), New(8, 8), New(2, 2), New(8, 8)},
		{"inverted range above both", New(9, 9), New(8, 8), New(2, 2), New(2, 2)},
		{"inverted range below both", New(1, 1), New(8, 8), New(2, 2), New(8, 8)},
		{"inverted range mixed", New(9, 1), New(8, 8), New(2, 2), New(2, 8)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.v.Clamp(tc.min, tc.max))
		})
	}
}

func TestDotAndProj(t *testing.T) {
	require.Equal(t, float32(0), Right().Dot(Up()))
	require.Equal(t, float32(11), New(1, 2).Dot(New(3, 4)))

	for _, v := range samples {
		require.Equal(t, float32(0), v.Proj(Zero()))
	}
	require.InDelta(t, 3.0, New(3, 4).Proj(New(10, 0)), eps)
	require.InDelta(t, -4.0, New(3, 4).Proj(Up()), eps)
}

func TestProductsRoundSeparately(t *testing.T) {
	// x*x is exactly 1 + 2^-11 + 2^-24, which rounds to 1 + 2^-11 in float32.
	// A fused multiply-add would keep the 2^-24 term.
	x := float32(1 + 1.0/(1<<12))
	r := float32(1 + 1.0/(1<<11))
	require.Equal(t, float32(0), New(x, 1).Dot(New(x, -r)))
	// 2^-30 is below half an ulp of r, but pushes the unrounded x*x past it
	tiny := float32(1.0 / (1 << 15))
	require.Equal(t, r, New(x, tiny).MagnitudeSq())
	require.Equal(t, New(r, 0), New(x, 0).Lerp(New(-1.0/(1<<18), 0), 1-x))
}

func TestAngle(t *testing.T) {
	require.InDelta(t, 0, Right().Angle(), eps)
	require.InDelta(t, math.Pi/2, Down().Angle(), eps)
	require.InDelta(t, -math.Pi/2, Up().Angle(), eps)
}

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

type panicSource struct{}

func (panicSource) Float64() float64 { panic("source consulted") }

func TestSpreadZeroAmount(t *testing.T) {
	for _, v := range samples {
		require.Equal(t, v.Rotate(0), v.SpreadWith(panicSource{}, 0))
		require.Equal(t, v.Rotate(0), v.Spread(0))
	}
}

func TestSpreadWithSource(t *testing.T) {
	// 0.75 maps to half of the positive bound
	got := Right().SpreadWith(constSource(0.75), 1)
	requireVecNear(t, Right().Rotate(0.5), got, eps)

	got = Right().SpreadWith(constSource(0.25), 1)
	requireVecNear(t, Right().Rotate(-0.5), got, eps)
}

func TestSpreadWithinCone(t *testing.T) {
	const amount = 0.2
	r := util.New(99)
	v := New(0, -5)
	for i := 0; i < 2000; i++ {
		s := v.SpreadWith(r, amount)
		require.InDelta(t, 5.0, s.Magnitude(), 1e-4)
		dev := math.Abs(float64(s.Angle() - v.Angle()))
		require.Less(t, dev, float64(amount)+eps)
	}
}

func TestSpreadSeededReproducible(t *testing.T) {
	a, b := util.New(5), util.New(5)
	for i := 0; i < 16; i++ {
		require.Equal(t, Up().SpreadWith(a, 1), Up().SpreadWith(b, 1))
	}
}

func TestSpreadDefaultSource(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := Right().Spread(0.1)
		require.InDelta(t, 1.0, s.Magnitude(), eps)
		require.Less(t, math.Abs(float64(s.Angle())), 0.1+eps)
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "(3, -4.5)", New(3, -4.5).String())
}
