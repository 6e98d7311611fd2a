package frac

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestFracString(t *testing.T) {
	for idx, tc := range []struct {
		f   Frac
		out string
	}{
		{Zero(), "0/1"},
		{fr(1, 2), "1/2"},
		{fr(-1, -2), "1/2"},
		{fr(3, -9), "-1/3"},
		{MaxFrac, "2147483647/1"},
		{MinFrac, "-2147483648/1"},
		{fr(minInt32, maxInt32), "-2147483648/2147483647"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.f.String())

			var buf bytes.Buffer
			n, err := tc.f.WriteTo(&buf)
			tt.MustOK(err)
			tt.MustEqual(int64(len(tc.out)), n)
			tt.MustEqual(tc.out, buf.String())
		})
	}
}

func TestFracFormat(t *testing.T) {
	for idx, tc := range []struct {
		format string
		f      Frac
		out    string
	}{
		{"%v", fr(1, 2), "1/2"},
		{"%s", fr(-1, 2), "-1/2"},
		{"%d", fr(5, 6), "5/6"},
		{"%q", fr(5, 6), `"5/6"`},
		{"%6v", fr(1, 2), "   1/2"},
		{"%-6v|", fr(1, 2), "1/2   |"},
		{"%.3f", fr(1, 3), "0.333"},
		{"%.2f", fr(-2, 3), "-0.67"},
		{"%g", fr(1, 4), "0.25"},
		{"%x", fr(1, 4), "%!x(frac.Frac=1/4)"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.format), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, fmt.Sprintf(tc.format, tc.f))
		})
	}
}

func TestFracMarshalText(t *testing.T) {
	tt := assert.WrapTB(t)

	bts, err := fr(-3, 4).MarshalText()
	tt.MustOK(err)
	tt.MustEqual("-3/4", string(bts))

	var f Frac
	tt.MustOK(f.UnmarshalText([]byte("6/-8")))
	tt.MustEqual(fr(-3, 4), f)

	err = f.UnmarshalText([]byte("1/0"))
	tt.MustAssert(errors.Is(err, ErrInvalidArgument))
	tt.MustEqual(fr(-3, 4), f)

	err = f.UnmarshalText([]byte("one/two"))
	tt.MustAssert(errors.Is(err, ErrFormat))
}

func TestFracJSON(t *testing.T) {
	tt := assert.WrapTB(t)

	type payload struct {
		Ratio Frac   `json:"ratio"`
		List  []Frac `json:"list"`
	}

	in := payload{Ratio: fr(2, 3), List: []Frac{Zero(), fr(-7, 2)}}
	bts, err := json.Marshal(in)
	tt.MustOK(err)
	tt.MustEqual(`{"ratio":"2/3","list":["0/1","-7/2"]}`, string(bts))

	var out payload
	tt.MustOK(json.Unmarshal(bts, &out))
	tt.MustEqual(in, out)

	var f Frac
	tt.MustOK(json.Unmarshal([]byte(`"4/6"`), &f))
	tt.MustEqual(fr(2, 3), f)

	tt.MustOK(f.UnmarshalJSON([]byte(`5`)))
	tt.MustEqual(FromInt(5), f)

	err = f.UnmarshalJSON([]byte(`"1/2`))
	tt.MustAssert(errors.Is(err, ErrFormat), "%v", err)

	err = json.Unmarshal([]byte(`"1/0"`), &f)
	tt.MustAssert(errors.Is(err, ErrInvalidArgument), "%v", err)
}
