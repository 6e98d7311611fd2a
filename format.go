package frac

import (
	"fmt"
	"io"
	"strconv"
)

// String returns f as "num/den".
func (f Frac) String() string {
	buf := make([]byte, 0, 24)
	return string(f.appendText(buf))
}

func (f Frac) appendText(buf []byte) []byte {
	buf = strconv.AppendInt(buf, int64(f.num), 10)
	buf = append(buf, '/')
	return strconv.AppendInt(buf, int64(f.den), 10)
}

// Format implements fmt.Formatter. %v, %s and %d print "num/den", %q prints
// it quoted, and %e, %f and %g print Float64(). Width and flags are honoured.
func (f Frac) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's', 'd':
		fmt.Fprintf(s, directive(s, 's'), f.String())
	case 'q':
		fmt.Fprintf(s, directive(s, 'q'), f.String())
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(s, directive(s, c), f.Float64())
	default:
		fmt.Fprintf(s, "%%!%c(frac.Frac=%s)", c, f.String())
	}
}

// directive rebuilds the formatting directive held in s so it can be applied
// to a different operand.
func directive(s fmt.State, verb rune) string {
	buf := []byte{'%'}
	for _, flag := range "-+# 0" {
		if s.Flag(int(flag)) {
			buf = append(buf, byte(flag))
		}
	}
	if w, ok := s.Width(); ok {
		buf = strconv.AppendInt(buf, int64(w), 10)
	}
	if p, ok := s.Precision(); ok {
		buf = append(buf, '.')
		buf = strconv.AppendInt(buf, int64(p), 10)
	}
	return string(append(buf, string(verb)...))
}

// WriteTo writes "num/den" to w.
func (f Frac) WriteTo(w io.Writer) (n int64, err error) {
	buf := make([]byte, 0, 24)
	c, err := w.Write(f.appendText(buf))
	return int64(c), err
}

func (f Frac) MarshalText() ([]byte, error) {
	return f.appendText(nil), nil
}

func (f *Frac) UnmarshalText(bts []byte) (err error) {
	v, err := Parse(string(bts))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Frac) MarshalJSON() ([]byte, error) {
	buf := []byte{'"'}
	buf = f.appendText(buf)
	return append(buf, '"'), nil
}

func (f *Frac) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("%w: frac JSON %q", ErrFormat, string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := Parse(string(bts))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
