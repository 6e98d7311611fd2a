package frac

import (
	"errors"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestRandFrac(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 10000; i++ {
		f := RandFrac(globalRNG)
		tt.MustAssert(f.IsValid(), "%d/%d", f.num, f.den)
	}
}

func TestDifference(t *testing.T) {
	tt := assert.WrapTB(t)

	d, err := Difference(fr(1, 2), fr(1, 3))
	tt.MustOK(err)
	tt.MustEqual(fr(1, 6), d)

	d, err = Difference(fr(1, 3), fr(1, 2))
	tt.MustOK(err)
	tt.MustEqual(fr(1, 6), d)

	d, err = Difference(fr(-1, 2), fr(-1, 2))
	tt.MustOK(err)
	tt.MustEqual(Zero(), d)

	_, err = Difference(MinFrac, MaxFrac)
	tt.MustAssert(errors.Is(err, ErrOverflow))
}

func TestLargerSmaller(t *testing.T) {
	tt := assert.WrapTB(t)
	a, b := fr(-1, 2), fr(1, 3)
	tt.MustEqual(b, Larger(a, b))
	tt.MustEqual(b, Larger(b, a))
	tt.MustEqual(a, Smaller(a, b))
	tt.MustEqual(a, Smaller(b, a))
	tt.MustEqual(a, Larger(a, a))
}
