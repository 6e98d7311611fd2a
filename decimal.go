package frac

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

var bigTen = big.NewInt(10)

// FromDecimal converts d to a Frac exactly. Unlike FromFloat64 there is no
// quantization: 0.0625 becomes 1/16. ErrOverflow is returned if the reduced
// value does not fit in an int32 numerator and denominator.
func FromDecimal(d decimal.Decimal) (Frac, error) {
	num := d.Coefficient()
	if num.Sign() == 0 {
		return Zero(), nil
	}

	exp := d.Exponent()
	if exp > maxDecimalExp {
		// A non-zero coefficient is at least 1, so 10^exp alone is too big.
		return Frac{}, fmt.Errorf("%w: decimal exponent %d", ErrOverflow, exp)
	}
	if exp < 0 && -int64(exp) > maxDecimalScale(num) {
		return Frac{}, fmt.Errorf("%w: decimal exponent %d", ErrOverflow, exp)
	}

	den := big.NewInt(1)
	if exp > 0 {
		num.Mul(num, new(big.Int).Exp(bigTen, big.NewInt(int64(exp)), nil))
	} else if exp < 0 {
		den.Exp(bigTen, big.NewInt(-int64(exp)), nil)
	}

	r := new(big.Rat).SetFrac(num, den)
	n, q := r.Num(), r.Denom()
	if !n.IsInt64() || !q.IsInt64() {
		return Frac{}, fmt.Errorf("%w: decimal exponent %d", ErrOverflow, exp)
	}
	ni, qi := n.Int64(), q.Int64()
	if ni > maxInt32 || ni < minInt32 || qi > maxInt32 {
		return Frac{}, fmt.Errorf("%w: decimal exponent %d", ErrOverflow, exp)
	}
	return Frac{num: int32(ni), den: int32(qi)}, nil
}

// maxDecimalExp is the largest exponent a non-zero decimal can carry and still
// fit in an int32 (10^9 < MaxInt32 < 10^10).
const maxDecimalExp = 9

// maxDecimalScale returns the largest negated exponent that could still reduce
// to an int32 denominator for coefficient num. Once trailing zeros are
// stripped from num, 10^n/gcd(num, 10^n) is at least 2^n, so n may not exceed
// 31; num can hold at most one trailing zero per decimal digit, and it has no
// more than BitLen/3+1 digits.
func maxDecimalScale(num *big.Int) int64 {
	return 31 + int64(num.BitLen())/3 + 1
}

// Decimal returns num/den as a decimal rounded to places digits after the
// point, half away from zero.
func (f Frac) Decimal(places int32) decimal.Decimal {
	return decimal.New(int64(f.num), 0).DivRound(decimal.New(int64(f.den), 0), places)
}

// StringFixed returns f as a decimal string with exactly places digits after
// the point, e.g. MustNew(2, 3).StringFixed(3) == "0.667".
func (f Frac) StringFixed(places int32) string {
	return f.Decimal(places).StringFixed(places)
}
