package frac

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v4"
)

var (
	_ msgpack.CustomEncoder = Frac{}
	_ msgpack.CustomDecoder = (*Frac)(nil)
)

// EncodeMsgpack writes f as the two element array [num, den].
func (f Frac) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(f.num)); err != nil {
		return err
	}
	return enc.EncodeInt(int64(f.den))
}

// DecodeMsgpack reads a [num, den] array written by EncodeMsgpack. The pair is
// normalized, so a zero denominator returns ErrInvalidArgument.
func (f *Frac) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("%w: msgpack array of length %d", ErrFormat, n)
	}
	num, err := dec.DecodeInt32()
	if err != nil {
		return err
	}
	den, err := dec.DecodeInt32()
	if err != nil {
		return err
	}
	v, err := normalize(num, den)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
