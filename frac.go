package frac

import "fmt"

// Frac is a rational number held as an int32 numerator and denominator.
//
// A valid Frac is always in lowest terms with a positive denominator, and 0 is
// always 0/1, so two valid values can be compared with ==. The zero value of
// Frac is 0/0, which is not valid; use Zero().
type Frac struct {
	num int32
	den int32
}

// Zero returns 0/1.
func Zero() Frac { return zeroFrac }

// One returns 1/1.
func One() Frac { return oneFrac }

// FromInt returns v/1.
func FromInt(v int32) Frac { return Frac{num: v, den: 1} }

// New creates a Frac from num/den, reduced to lowest terms with the sign moved
// into the numerator. It returns ErrInvalidArgument if den is 0, and
// ErrOverflow for MinInt32/-1, which can't be represented once the sign is
// moved.
func New(num, den int32) (Frac, error) {
	return normalize(num, den)
}

// MustNew is like New but panics if the Frac can't be created.
func MustNew(num, den int32) Frac {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

// normalize reduces num/den to lowest terms with a positive denominator. The
// work is done in int64 so that |MinInt32| and gcd(MinInt32, MinInt32) can be
// held; ErrOverflow is returned if the reduced pair does not fit back into
// int32.
func normalize(num, den int32) (Frac, error) {
	if den == 0 {
		return Frac{}, fmt.Errorf("%w: zero denominator in %d/0", ErrInvalidArgument, num)
	}
	n, d := int64(num), int64(den)
	if d < 0 {
		n, d = -n, -d
	}
	if g := gcd(abs64(n), d); g != 1 {
		n, d = n/g, d/g
	}
	if n > maxInt32 || n < minInt32 || d > maxInt32 {
		return Frac{}, fmt.Errorf("%w: %d/%d has no int32 representation", ErrOverflow, num, den)
	}
	return Frac{num: int32(n), den: int32(d)}, nil
}

// gcd expects non-negative operands. gcd(0, n) == gcd(n, 0) == n.
func gcd(a, b int64) int64 {
	if a == 0 {
		return b
	}
	return gcd(b%a, a)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Raw returns the numerator and denominator as stored. For a value built with
// SetNum or SetDen these may not be normalized.
func (f Frac) Raw() (num, den int32) { return f.num, f.den }

func (f Frac) Num() int32 { return f.num }
func (f Frac) Den() int32 { return f.den }

// SetNum overwrites the numerator without normalizing. Call Normalize before
// using the value with any other method.
func (f *Frac) SetNum(num int32) { f.num = num }

// SetDen overwrites the denominator without normalizing or validating; a zero
// denominator is accepted here and rejected by Normalize.
func (f *Frac) SetDen(den int32) { f.den = den }

// Normalize validates and reduces f in place. It is the second half of the
// SetNum/SetDen builder: it returns ErrInvalidArgument if the denominator is
// zero and ErrOverflow if the value can't be represented. f is unchanged if an
// error is returned.
func (f *Frac) Normalize() error {
	n, err := normalize(f.num, f.den)
	if err != nil {
		return err
	}
	*f = n
	return nil
}

// IsValid reports whether f is in normalized form.
func (f Frac) IsValid() bool {
	if f.den <= 0 {
		return false
	}
	if f.num == 0 {
		return f.den == 1
	}
	return gcd(abs64(int64(f.num)), int64(f.den)) == 1
}

func (f Frac) IsZero() bool { return f.num == 0 }

// IsInt reports whether f has a denominator of 1.
func (f Frac) IsInt() bool { return f.den == 1 }

func (f Frac) Sign() int {
	if f.num == 0 {
		return 0
	} else if f.num < 0 {
		return -1
	}
	return 1
}

// Neg returns -f. MinInt32/1 has no negation and returns ErrOverflow.
func (f Frac) Neg() (Frac, error) {
	n, err := CheckedSub(0, f.num)
	if err != nil {
		return Frac{}, err
	}
	return Frac{num: n, den: f.den}, nil
}

// Abs returns |f|. MinInt32/1 has no absolute value and returns ErrOverflow.
func (f Frac) Abs() (Frac, error) {
	if f.num >= 0 {
		return f, nil
	}
	return f.Neg()
}

// Inv returns 1/f. It returns ErrDivideByZero if f is zero.
func (f Frac) Inv() (Frac, error) {
	if f.num == 0 {
		return Frac{}, fmt.Errorf("%w: 1 / %s", ErrDivideByZero, f)
	}
	return normalize(f.den, f.num)
}
