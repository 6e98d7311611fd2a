package frac

import (
	"fmt"
	"math"
)

// FromFloat32 approximates f as a Frac with three decimal digits of
// precision. See FromFloat64. The scaling is done in float32 arithmetic, so
// FromFloat32(2.0005) is 2001/1000 even though float64(float32(2.0005)) * 1000
// is just below 2000.5.
func FromFloat32(f float32) (Frac, error) {
	if f != f {
		return Frac{}, fmt.Errorf("%w: NaN", ErrInvalidArgument)
	}
	scaled := float32(f * quantum)
	return fromScaled(math.Round(float64(scaled)), float64(f))
}

// FromFloat64 approximates f as round(f * 1000) / 1000, reduced to lowest
// terms. Rounding is half away from zero.
//
// This is lossy: FromFloat64(0.1234) is 123/1000 and FromFloat64(0.0004) is 0.
// No error is reported for the lost digits.
//
// NaN returns ErrInvalidArgument. Values whose scaled form doesn't fit in an
// int32 (including the infinities) return ErrOverflow.
func FromFloat64(f float64) (Frac, error) {
	if f != f { // f != f == isnan
		return Frac{}, fmt.Errorf("%w: NaN", ErrInvalidArgument)
	}
	return fromScaled(math.Round(f*quantum), f)
}

func fromScaled(scaled, f float64) (Frac, error) {
	if scaled > maxInt32Float || scaled < minInt32Float {
		return Frac{}, fmt.Errorf("%w: float %g out of range", ErrOverflow, f)
	}
	return normalize(int32(scaled), quantum)
}

// Float32 returns num/den computed in float32 arithmetic.
func (f Frac) Float32() float32 {
	return float32(f.num) / float32(f.den)
}

// Float64 returns num/den computed in float64 arithmetic.
func (f Frac) Float64() float64 {
	return float64(f.num) / float64(f.den)
}
