package frac

import "fmt"

// CheckedAdd returns a + b, or ErrOverflow if the sum does not fit in an int32.
func CheckedAdd(a, b int32) (int32, error) {
	if (a > 0 && b > maxInt32-a) || (a < 0 && b < minInt32-a) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

// CheckedSub returns a - b, or ErrOverflow if the difference does not fit in
// an int32.
func CheckedSub(a, b int32) (int32, error) {
	if (b < 0 && a > maxInt32+b) || (b > 0 && a < minInt32+b) {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return a - b, nil
}

// CheckedMul returns a * b, or ErrOverflow if the product does not fit in an
// int32. The bounds are checked by division for each sign combination before
// anything is multiplied.
func CheckedMul(a, b int32) (int32, error) {
	var over bool
	switch {
	case a > 0 && b > 0:
		over = a > maxInt32/b
	case a > 0 && b < 0:
		over = b < minInt32/a
	case a < 0 && b > 0:
		over = a < minInt32/b
	case a < 0 && b < 0:
		over = a < maxInt32/b
	}
	if over {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return a * b, nil
}

// CheckedQuo returns the truncated quotient a / b. It returns ErrDivideByZero
// if b == 0, and ErrOverflow for MinInt32 / -1, the one quotient that can't be
// represented.
func CheckedQuo(a, b int32) (int32, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %d / 0", ErrDivideByZero, a)
	}
	if a == minInt32 && b == -1 {
		return 0, fmt.Errorf("%w: %d / %d", ErrOverflow, a, b)
	}
	return a / b, nil
}
