package frac

type RandSource interface {
	Uint64() uint64
}

// RandFrac generates a normalized random Frac from an external source. The
// numerator covers the whole int32 range; the denominator is positive.
func RandFrac(source RandSource) Frac {
	for {
		v := source.Uint64()
		num := int32(uint32(v))
		den := int32(uint32(v>>32) & maxInt32)
		if den == 0 {
			continue
		}
		if f, err := normalize(num, den); err == nil {
			return f
		}
	}
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Frac) (Frac, error) {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func Larger(a, b Frac) Frac {
	if a.LessThan(b) {
		return b
	}
	return a
}

func Smaller(a, b Frac) Frac {
	if b.LessThan(a) {
		return b
	}
	return a
}
