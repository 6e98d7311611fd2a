/*
Package frac provides an exact rational number type (Frac) with a 32-bit
numerator and denominator, and overflow-checked arithmetic.

Frac is a value type; arithmetic returns new values. Every operation that
combines two stored integers goes through the checked primitives in this
package (CheckedAdd, CheckedSub, CheckedMul, CheckedQuo), so nothing can
silently wrap: an operation either returns a normalized Frac, or it returns
ErrOverflow, ErrDivideByZero or ErrInvalidArgument and leaves its operands
untouched.

Simple example:

	a := frac.MustNew(1, 2)
	b := frac.MustNew(1, 3)
	sum, err := a.Add(b)
	if err != nil {
		return err
	}
	fmt.Println(sum)
	// Output: 5/6

A Frac can be created from a variety of sources:

	Zero() Frac
	FromInt(v int32) Frac
	New(num, den int32) (Frac, error)
	MustNew(num, den int32) Frac
	FromFloat32(v float32) (Frac, error)
	FromFloat64(v float64) (Frac, error)
	FromDecimal(d decimal.Decimal) (Frac, error)
	Parse(s string) (Frac, error)
	Fscan(r io.Reader) (Frac, error)

Floats are NOT converted exactly. FromFloat32 and FromFloat64 quantize to
three decimal digits (the value is scaled by 1000, rounded and reduced), so
FromFloat32(0.1234) is 123/1000 and anything beyond the third fractional digit
is lost without an error. All the *Float arithmetic and Float* functions
quantize their float operand this way before doing exact rational arithmetic.
Comparisons with floats go the other way: the Frac is converted to a float32
and compared numerically.

The zero value of Frac is not valid (its denominator is 0). Use Zero() or
New(0, 1).

Frac supports the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - fmt.Scanner
  - io.WriterTo
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
  - msgpack.CustomEncoder
  - msgpack.CustomDecoder

Frac values carry no internal synchronisation. Share them between goroutines
the same way you would share an int.
*/
package frac
