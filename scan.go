package frac

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scan implements fmt.Scanner. It reads two whitespace-separated base 10
// integers, the numerator then the denominator, and normalizes them; the verb
// is ignored.
//
// Tokens that are missing or are not int32 integers return ErrFormat. A zero
// denominator returns ErrInvalidArgument. f is only modified on success.
func (f *Frac) Scan(state fmt.ScanState, verb rune) error {
	num, err := scanInt32(state)
	if err != nil {
		return err
	}
	den, err := scanInt32(state)
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

func scanInt32(state fmt.ScanState) (int32, error) {
	tok, err := state.Token(true, isIntRune)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(tok) == 0 {
		return 0, fmt.Errorf("%w: expected integer", ErrFormat)
	}
	return parseInt32(string(tok))
}

func isIntRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '+'
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an int32", ErrFormat, s)
	}
	return int32(v), nil
}

// Fscan reads a Frac from r using the same rules as Frac.Scan. If r does not
// implement io.RuneScanner, one rune past the denominator may be consumed;
// wrap r in a bufio.Reader when reading several values from one stream.
func Fscan(r io.Reader) (Frac, error) {
	var f Frac
	if _, err := fmt.Fscan(r, &f); err != nil {
		if errors.Is(err, ErrFormat) || errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrOverflow) {
			return Frac{}, err
		}
		return Frac{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return f, nil
}

// Parse parses "num/den", "num den" or a lone integer "num". Surrounding
// space is ignored, as is space around the '/'.
func Parse(s string) (Frac, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return parsePair(strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]))
	}

	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		n, err := parseInt32(fields[0])
		if err != nil {
			return Frac{}, err
		}
		return FromInt(n), nil
	case 2:
		return parsePair(fields[0], fields[1])
	default:
		return Frac{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
}

func parsePair(ns, ds string) (Frac, error) {
	num, err := parseInt32(ns)
	if err != nil {
		return Frac{}, err
	}
	den, err := parseInt32(ds)
	if err != nil {
		return Frac{}, err
	}
	return normalize(num, den)
}
