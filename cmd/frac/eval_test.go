package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	frac "github.com/shabbyrobe/go-frac"
	"github.com/shabbyrobe/golib/assert"
)

func TestEvaluatorBinary(t *testing.T) {
	for idx, tc := range []struct {
		a, op, b string
		out      string
	}{
		{"1/2", "+", "1/3", "5/6"},
		{"1/2", "-", "1/3", "1/6"},
		{"2/3", "*", "3/4", "1/2"},
		{"1/2", "/", "1/4", "2/1"},
		{"1/2", "+", "0.25", "3/4"},
		{"0.0625", "*", "2", "1/8"},
		{"3", "-", "5", "-2/1"},
		{"1/2", "==", "2/4", "true"},
		{"1/2", "!=", "2/4", "false"},
		{"1/3", "<", "1/2", "true"},
		{"1/3", ">", "1/2", "false"},
		{"1/2", "<=", "1/2", "true"},
		{"-1/2", ">=", "1/2", "false"},
	} {
		t.Run(fmt.Sprintf("%d/%s%s%s", idx, tc.a, tc.op, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			e := &evaluator{}
			v, err := e.binary(tc.a, tc.op, tc.b)
			tt.MustOK(err)
			tt.MustEqual(tc.out, v.String())
		})
	}
}

func TestEvaluatorErrors(t *testing.T) {
	for idx, tc := range []struct {
		a, op, b string
		err      error
	}{
		{"1/2", "/", "0", frac.ErrDivideByZero},
		{"1/0", "+", "1", frac.ErrInvalidArgument},
		{"2147483647", "+", "1", frac.ErrOverflow},
		{"pants", "+", "1", frac.ErrFormat},
		{"_", "+", "1", errNoLast},
	} {
		t.Run(fmt.Sprintf("%d/%s%s%s", idx, tc.a, tc.op, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			e := &evaluator{}
			_, err := e.binary(tc.a, tc.op, tc.b)
			tt.MustAssert(errors.Is(err, tc.err), "%v", err)
		})
	}

	tt := assert.WrapTB(t)
	_, err := (&evaluator{}).binary("1", "%", "2")
	tt.MustAssert(err != nil)
}

func TestEvaluatorQuantize(t *testing.T) {
	tt := assert.WrapTB(t)

	exact := &evaluator{}
	v, err := exact.binary("0.0625", "+", "0")
	tt.MustOK(err)
	tt.MustEqual("1/16", v.String())

	quant := &evaluator{quantize: true}
	v, err = quant.binary("0.0625", "+", "0")
	tt.MustOK(err)
	tt.MustEqual("63/1000", v.String())
}

func TestEvaluatorLine(t *testing.T) {
	tt := assert.WrapTB(t)
	e := &evaluator{}

	v, err := e.line("1/2 + 1/3")
	tt.MustOK(err)
	tt.MustEqual("5/6", v.String())

	v, err = e.line("_ * 6")
	tt.MustOK(err)
	tt.MustEqual("5/1", v.String())

	// Comparisons don't replace the last result.
	v, err = e.line("_ > 4")
	tt.MustOK(err)
	tt.MustEqual("true", v.String())

	v, err = e.line("inv _")
	tt.MustOK(err)
	tt.MustEqual("1/5", v.String())

	v, err = e.line("neg 6/8")
	tt.MustOK(err)
	tt.MustEqual("-3/4", v.String())

	v, err = e.line("inc _")
	tt.MustOK(err)
	tt.MustEqual("1/4", v.String())

	v, err = e.line("4/6")
	tt.MustOK(err)
	tt.MustEqual("2/3", v.String())

	_, err = e.line("1 + 2 + 3")
	tt.MustAssert(err != nil)

	_, err = e.line("sqrt 4")
	tt.MustAssert(err != nil)
}

func TestEvaluatorPair(t *testing.T) {
	tt := assert.WrapTB(t)
	e := &evaluator{}

	f, err := e.pair([]string{"6", "-8"})
	tt.MustOK(err)
	tt.MustEqual(frac.MustNew(-3, 4), f)

	f, err = e.pair([]string{"10/4"})
	tt.MustOK(err)
	tt.MustEqual(frac.MustNew(5, 2), f)

	_, err = e.pair([]string{"1", "0"})
	tt.MustAssert(errors.Is(err, frac.ErrInvalidArgument))
}

func TestApproximate(t *testing.T) {
	tt := assert.WrapTB(t)

	f, err := approximate("0.1234")
	tt.MustOK(err)
	tt.MustEqual(frac.MustNew(123, 1000), f)

	f, err = approximate("-2.5")
	tt.MustOK(err)
	tt.MustEqual(frac.MustNew(-5, 2), f)

	_, err = approximate("1e10")
	tt.MustAssert(errors.Is(err, frac.ErrOverflow))

	_, err = approximate("half")
	tt.MustAssert(errors.Is(err, frac.ErrFormat))
}

func TestOutput(t *testing.T) {
	for idx, tc := range []struct {
		out output
		v   value
		exp string
	}{
		{output{}, fracValue(frac.MustNew(1, 2)), "1/2\n"},
		{output{}, boolValue(true), "true\n"},
		{output{float: true}, fracValue(frac.MustNew(1, 4)), "0.25\n"},
		{output{float: true}, boolValue(false), "false\n"},
		{output{json: true}, fracValue(frac.MustNew(1, 4)), `{"frac":"1/4","float":0.25}` + "\n"},
		{output{json: true}, boolValue(true), `{"bool":true}` + "\n"},
		{output{msgpack: true}, fracValue(frac.MustNew(1, 4)), "920104\n"},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var buf bytes.Buffer
			tt.MustOK(tc.out.write(&buf, tc.v))
			tt.MustEqual(tc.exp, buf.String())
		})
	}
}

func TestScript(t *testing.T) {
	tt := assert.WrapTB(t)

	in := strings.Join([]string{
		"# comment",
		"1/2 + 1/4",
		"",
		"_ / 0",
		"_ * 4",
		"quit",
		"1 + 1",
	}, "\n")

	var buf bytes.Buffer
	tt.MustOK(script(&evaluator{}, output{}, strings.NewReader(in), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	tt.MustEqual(3, len(lines))
	tt.MustEqual("3/4", lines[0])
	tt.MustAssert(strings.HasPrefix(lines[1], "error: "), lines[1])
	tt.MustEqual("3/1", lines[2])
}
