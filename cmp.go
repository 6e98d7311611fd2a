package frac

// Cmp compares f to g and returns:
//
//	-1 if f <  g
//	 0 if f == g
//	+1 if f >  g
//
// Both values are cross-multiplied in int64, where the product of two int32s
// always fits, so Cmp never overflows.
func (f Frac) Cmp(g Frac) int {
	l, r := int64(f.num)*int64(g.den), int64(g.num)*int64(f.den)
	if l < r {
		return -1
	} else if l > r {
		return 1
	}
	return 0
}

// Equal reports whether f and g hold the same numerator and denominator. For
// normalized values this is the same as f == g.
func (f Frac) Equal(g Frac) bool {
	return f.num == g.num && f.den == g.den
}

func (f Frac) LessThan(g Frac) bool         { return f.Cmp(g) < 0 }
func (f Frac) GreaterThan(g Frac) bool      { return f.Cmp(g) > 0 }
func (f Frac) LessOrEqualTo(g Frac) bool    { return f.LessThan(g) || f.Equal(g) }
func (f Frac) GreaterOrEqualTo(g Frac) bool { return f.GreaterThan(g) || f.Equal(g) }

// CmpFloat compares f to v by converting f to a float32. Unlike the *Float
// arithmetic methods, v is not quantized. NaN compares as neither less nor
// greater, so CmpFloat returns 0 for it; use EqualFloat to tell the
// difference.
func (f Frac) CmpFloat(v float32) int {
	fv := f.Float32()
	if fv < v {
		return -1
	} else if fv > v {
		return 1
	}
	return 0
}

// EqualFloat reports whether float32(f) == v.
func (f Frac) EqualFloat(v float32) bool { return f.Float32() == v }

func (f Frac) LessThanFloat(v float32) bool         { return f.Float32() < v }
func (f Frac) GreaterThanFloat(v float32) bool      { return f.Float32() > v }
func (f Frac) LessOrEqualToFloat(v float32) bool    { return f.Float32() <= v }
func (f Frac) GreaterOrEqualToFloat(v float32) bool { return f.Float32() >= v }

// FloatLessThan reports whether v < float32(f).
func FloatLessThan(v float32, f Frac) bool { return f.GreaterThanFloat(v) }

// FloatGreaterThan reports whether v > float32(f).
func FloatGreaterThan(v float32, f Frac) bool { return f.LessThanFloat(v) }

// FloatLessOrEqualTo reports whether v <= float32(f).
func FloatLessOrEqualTo(v float32, f Frac) bool { return f.GreaterOrEqualToFloat(v) }

// FloatGreaterOrEqualTo reports whether v >= float32(f).
func FloatGreaterOrEqualTo(v float32, f Frac) bool { return f.LessOrEqualToFloat(v) }
