package frac

import "fmt"

// cross returns p*s, r*q and q*s for f = p/q and g = r/s, the three terms
// shared by Add and Sub.
func cross(f, g Frac) (ps, rq, qs int32, err error) {
	if ps, err = CheckedMul(f.num, g.den); err != nil {
		return 0, 0, 0, err
	}
	if rq, err = CheckedMul(g.num, f.den); err != nil {
		return 0, 0, 0, err
	}
	if qs, err = CheckedMul(f.den, g.den); err != nil {
		return 0, 0, 0, err
	}
	return ps, rq, qs, nil
}

// Add returns f + g. Intermediate products are overflow-checked before the
// result is reduced, so Add may return ErrOverflow even when the reduced sum
// would fit.
func (f Frac) Add(g Frac) (Frac, error) {
	ps, rq, qs, err := cross(f, g)
	if err != nil {
		return Frac{}, err
	}
	n, err := CheckedAdd(ps, rq)
	if err != nil {
		return Frac{}, err
	}
	return normalize(n, qs)
}

// Sub returns f - g. See Add for overflow behaviour.
func (f Frac) Sub(g Frac) (Frac, error) {
	ps, rq, qs, err := cross(f, g)
	if err != nil {
		return Frac{}, err
	}
	n, err := CheckedSub(ps, rq)
	if err != nil {
		return Frac{}, err
	}
	return normalize(n, qs)
}

// Mul returns f * g.
func (f Frac) Mul(g Frac) (Frac, error) {
	n, err := CheckedMul(f.num, g.num)
	if err != nil {
		return Frac{}, err
	}
	d, err := CheckedMul(f.den, g.den)
	if err != nil {
		return Frac{}, err
	}
	return normalize(n, d)
}

// Quo returns f / g. It returns ErrDivideByZero if g is zero.
func (f Frac) Quo(g Frac) (Frac, error) {
	if g.num == 0 {
		return Frac{}, fmt.Errorf("%w: %s / %s", ErrDivideByZero, f, g)
	}
	n, err := CheckedMul(f.num, g.den)
	if err != nil {
		return Frac{}, err
	}
	d, err := CheckedMul(f.den, g.num)
	if err != nil {
		return Frac{}, err
	}
	return normalize(n, d)
}

// AddFloat returns f + v, where v is first quantized by FromFloat32.
func (f Frac) AddFloat(v float32) (Frac, error) {
	g, err := FromFloat32(v)
	if err != nil {
		return Frac{}, err
	}
	return f.Add(g)
}

// SubFloat returns f - v, where v is first quantized by FromFloat32.
func (f Frac) SubFloat(v float32) (Frac, error) {
	g, err := FromFloat32(v)
	if err != nil {
		return Frac{}, err
	}
	return f.Sub(g)
}

// MulFloat returns f * v, where v is first quantized by FromFloat32.
func (f Frac) MulFloat(v float32) (Frac, error) {
	g, err := FromFloat32(v)
	if err != nil {
		return Frac{}, err
	}
	return f.Mul(g)
}

// QuoFloat returns f / v, where v is first quantized by FromFloat32. A v that
// is zero, or that quantizes to zero, returns ErrDivideByZero.
func (f Frac) QuoFloat(v float32) (Frac, error) {
	if v == 0 {
		return Frac{}, fmt.Errorf("%w: %s / 0", ErrDivideByZero, f)
	}
	g, err := FromFloat32(v)
	if err != nil {
		return Frac{}, err
	}
	return f.Quo(g)
}

// FloatAdd returns v + f. It is the mirror of Frac.AddFloat.
func FloatAdd(v float32, f Frac) (Frac, error) { return f.AddFloat(v) }

// FloatMul returns v * f. It is the mirror of Frac.MulFloat.
func FloatMul(v float32, f Frac) (Frac, error) { return f.MulFloat(v) }

// FloatSub returns v - f, where v is first quantized by FromFloat32.
func FloatSub(v float32, f Frac) (Frac, error) {
	g, err := FromFloat32(v)
	if err != nil {
		return Frac{}, err
	}
	return g.Sub(f)
}

// FloatQuo returns v / f, where v is first quantized by FromFloat32. It
// returns ErrDivideByZero if f is zero.
func FloatQuo(v float32, f Frac) (Frac, error) {
	if f.num == 0 {
		return Frac{}, fmt.Errorf("%w: %g / %s", ErrDivideByZero, v, f)
	}
	g, err := FromFloat32(v)
	if err != nil {
		return Frac{}, err
	}
	return g.Quo(f)
}

// Inc adds 1 to f in place and returns the new value (pre-increment).
func (f *Frac) Inc() (Frac, error) {
	return f.step(CheckedAdd)
}

// PostInc adds 1 to f in place and returns the value f held before. The
// receiver is normalized exactly as it is by Inc.
func (f *Frac) PostInc() (Frac, error) {
	old := *f
	if _, err := f.step(CheckedAdd); err != nil {
		return Frac{}, err
	}
	return old, nil
}

// Dec subtracts 1 from f in place and returns the new value (pre-decrement).
func (f *Frac) Dec() (Frac, error) {
	return f.step(CheckedSub)
}

// PostDec subtracts 1 from f in place and returns the value f held before.
func (f *Frac) PostDec() (Frac, error) {
	old := *f
	if _, err := f.step(CheckedSub); err != nil {
		return Frac{}, err
	}
	return old, nil
}

func (f *Frac) step(op func(a, b int32) (int32, error)) (Frac, error) {
	n, err := op(f.num, f.den)
	if err != nil {
		return Frac{}, err
	}
	r, err := normalize(n, f.den)
	if err != nil {
		return Frac{}, err
	}
	*f = r
	return r, nil
}

// AddAssign sets f to f + g. f is unchanged if an error is returned.
func (f *Frac) AddAssign(g Frac) error { return f.assign(f.Add, g) }

// AddAssignFloat sets f to f + v, where v is first quantized by FromFloat32.
func (f *Frac) AddAssignFloat(v float32) error {
	g, err := FromFloat32(v)
	if err != nil {
		return err
	}
	return f.AddAssign(g)
}

// SubAssign sets f to f - g. f is unchanged if an error is returned.
func (f *Frac) SubAssign(g Frac) error { return f.assign(f.Sub, g) }

// MulAssign sets f to f * g. f is unchanged if an error is returned.
func (f *Frac) MulAssign(g Frac) error { return f.assign(f.Mul, g) }

// QuoAssign sets f to f / g. f is unchanged if an error is returned.
func (f *Frac) QuoAssign(g Frac) error { return f.assign(f.Quo, g) }

func (f *Frac) assign(op func(Frac) (Frac, error), g Frac) error {
	r, err := op(g)
	if err != nil {
		return err
	}
	*f = r
	return nil
}
