package frac

const (
	maxInt32 = 1<<31 - 1
	minInt32 = -1 << 31

	maxInt32Float = float64(maxInt32)
	minInt32Float = float64(minInt32)

	// quantum is the fixed denominator used when approximating a float;
	// it gives three decimal digits after the point.
	quantum = 1000
)

var (
	zeroFrac = Frac{num: 0, den: 1}
	oneFrac  = Frac{num: 1, den: 1}

	MaxFrac = Frac{num: maxInt32, den: 1}
	MinFrac = Frac{num: minInt32, den: 1}

	// SmallestFrac is the smallest positive value a Frac can hold.
	SmallestFrac = Frac{num: 1, den: maxInt32}
)
