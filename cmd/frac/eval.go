package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	frac "github.com/shabbyrobe/go-frac"
	"github.com/shabbyrobe/go-frac/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v4"
)

var errNoLast = errors.New("frac: no previous result for '_'")

// value is the result of an expression: a fraction, or a bool for
// comparisons.
type value struct {
	frac   frac.Frac
	truth  bool
	isBool bool
}

func fracValue(f frac.Frac) value { return value{frac: f} }
func boolValue(b bool) value      { return value{truth: b, isBool: true} }

func (v value) String() string {
	if v.isBool {
		return strconv.FormatBool(v.truth)
	}
	return v.frac.String()
}

type evaluator struct {
	quantize bool
	last     frac.Frac
	hasLast  bool
}

// operand reads "N/D", "N", a decimal literal, or "_" for the last result.
func (e *evaluator) operand(s string) (frac.Frac, error) {
	if s == "_" {
		if !e.hasLast {
			return frac.Frac{}, errNoLast
		}
		return e.last, nil
	}

	if strings.ContainsAny(s, "/") {
		return frac.Parse(s)
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return frac.Parse(s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return frac.Frac{}, fmt.Errorf("%w: operand %q", frac.ErrFormat, s)
	}
	if e.quantize {
		v, _ := d.Float64()
		f, err := frac.FromFloat64(v)
		if err == nil {
			logger.Verbosef("quantized %s to %s", s, f)
		}
		return f, err
	}
	return frac.FromDecimal(d)
}

// pair reads a fraction given either as one "N/D" arg or as "N" "D".
func (e *evaluator) pair(args []string) (frac.Frac, error) {
	return frac.Parse(strings.Join(args, " "))
}

func (e *evaluator) unary(op, x string) (value, error) {
	a, err := e.operand(x)
	if err != nil {
		return value{}, err
	}

	var r frac.Frac
	switch op {
	case "neg":
		r, err = a.Neg()
	case "abs":
		r, err = a.Abs()
	case "inv":
		r, err = a.Inv()
	case "inc":
		r, err = a.Inc()
	case "dec":
		r, err = a.Dec()
	default:
		return value{}, fmt.Errorf("frac: unknown function %q", op)
	}
	if err != nil {
		return value{}, err
	}
	return fracValue(r), nil
}

func (e *evaluator) binary(x, op, y string) (value, error) {
	a, err := e.operand(x)
	if err != nil {
		return value{}, err
	}
	b, err := e.operand(y)
	if err != nil {
		return value{}, err
	}
	logger.Debugf("eval %s %s %s", a, op, b)

	var r frac.Frac
	switch op {
	case "+":
		r, err = a.Add(b)
	case "-":
		r, err = a.Sub(b)
	case "*", "x":
		r, err = a.Mul(b)
	case "/", "÷":
		r, err = a.Quo(b)
	case "==":
		return boolValue(a.Equal(b)), nil
	case "!=":
		return boolValue(!a.Equal(b)), nil
	case "<":
		return boolValue(a.LessThan(b)), nil
	case ">":
		return boolValue(a.GreaterThan(b)), nil
	case "<=":
		return boolValue(a.LessOrEqualTo(b)), nil
	case ">=":
		return boolValue(a.GreaterOrEqualTo(b)), nil
	default:
		return value{}, fmt.Errorf("frac: unknown operator %q", op)
	}
	if err != nil {
		return value{}, err
	}
	return fracValue(r), nil
}

// line evaluates one REPL line. Fraction results become the new '_'.
func (e *evaluator) line(s string) (value, error) {
	fields := strings.Fields(s)

	var v value
	var err error
	switch len(fields) {
	case 1:
		var f frac.Frac
		f, err = e.operand(fields[0])
		v = fracValue(f)
	case 2:
		v, err = e.unary(fields[0], fields[1])
	case 3:
		v, err = e.binary(fields[0], fields[1], fields[2])
	default:
		err = fmt.Errorf("frac: expected 'A', 'FN A' or 'A OP B', found %q", s)
	}
	if err != nil {
		return value{}, err
	}

	if !v.isBool {
		e.last, e.hasLast = v.frac, true
	}
	return v, nil
}

func approximate(s string) (frac.Frac, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return frac.Frac{}, fmt.Errorf("%w: float %q", frac.ErrFormat, s)
	}
	f, err := frac.FromFloat64(v)
	if err != nil {
		return frac.Frac{}, err
	}
	if f.Float64() != v {
		logger.Printf("%s is not exact, %g was quantized to three digits", f, v)
	}
	return f, nil
}

type output struct {
	json    bool
	float   bool
	msgpack bool
}

type jsonResult struct {
	Frac  *frac.Frac `json:"frac,omitempty"`
	Float *float64   `json:"float,omitempty"`
	Bool  *bool      `json:"bool,omitempty"`
}

func (o output) write(w io.Writer, v value) error {
	switch {
	case o.json:
		var res jsonResult
		if v.isBool {
			res.Bool = &v.truth
		} else {
			f := v.frac.Float64()
			res.Frac, res.Float = &v.frac, &f
		}
		bts, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", bts)
		return err

	case o.msgpack && !v.isBool:
		bts, err := msgpack.Marshal(v.frac)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(bts))
		return err

	case o.float && !v.isBool:
		_, err := fmt.Fprintf(w, "%g\n", v.frac.Float64())
		return err

	default:
		_, err := fmt.Fprintln(w, v.String())
		return err
	}
}
