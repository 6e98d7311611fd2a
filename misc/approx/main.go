package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	frac "github.com/shabbyrobe/go-frac"
)

// This is a cheap-and-nasty experiment comparing the three-digit
// quantization used by frac.FromFloat64 with the best rational approximation
// found by walking the Farey sequence (Stern-Brocot mediants) up to a
// denominator bound. Quantization is fast and predictable but drops
// everything past the third fractional digit, so 1/3 becomes 333/1000. The
// Farey walk finds 1/3 exactly but costs O(maxDen) steps in the worst case.
//
// It is kept with the repository in case the constructor ever grows a
// "best approximation" mode. Don't use it for anything serious.

const usage = `Approximation explorer

Usage: <maxden> <float>...`

type row struct {
	Input     float64
	Quantized frac.Frac
	QuantErr  float64
	Farey     frac.Frac
	FareyErr  float64
	Steps     int
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 3 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	maxDen, err := strconv.ParseInt(os.Args[1], 10, 32)
	if err != nil {
		return err
	} else if maxDen < 1 {
		return fmt.Errorf("maxden must be positive")
	}

	var rows []row
	for _, arg := range os.Args[2:] {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return err
		}

		q, err := frac.FromFloat64(x)
		if err != nil {
			return fmt.Errorf("quantize %s: %w", arg, err)
		}

		f, steps, err := fareyApproximation(x, int32(maxDen))
		if err != nil {
			return fmt.Errorf("farey %s: %w", arg, err)
		}

		rows = append(rows, row{
			Input:     x,
			Quantized: q,
			QuantErr:  math.Abs(q.Float64() - x),
			Farey:     f,
			FareyErr:  math.Abs(f.Float64() - x),
			Steps:     steps,
		})
	}

	spew.Dump(rows)

	for _, r := range rows {
		better := "quantized"
		if r.FareyErr < r.QuantErr {
			better = "farey"
		} else if r.FareyErr == r.QuantErr {
			better = "tie"
		}
		fmt.Printf("%g: quantized=%s (err %.3g) farey=%s (err %.3g, %d steps) -> %s\n",
			r.Input, r.Quantized, r.QuantErr, r.Farey, r.FareyErr, r.Steps, better)
	}

	return nil
}

// fareyApproximation finds the closest fraction to x with a denominator no
// larger than maxDen. The integer part is split off first so the mediant walk
// only ever runs between 0/1 and 1/1.
func fareyApproximation(x float64, maxDen int32) (f frac.Frac, steps int, err error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return f, 0, frac.ErrInvalidArgument
	}

	neg := x < 0
	x = math.Abs(x)
	whole := math.Floor(x)
	if whole > math.MaxInt32 {
		return f, 0, frac.ErrOverflow
	}
	x -= whole

	a, b, c, d := int64(0), int64(1), int64(1), int64(1)
	for b <= int64(maxDen) && d <= int64(maxDen) {
		steps++
		mediant := float64(a+c) / float64(b+d)
		if x == mediant {
			if b+d <= int64(maxDen) {
				a, b = a+c, b+d
			} else if d > b {
				a, b = c, d
			}
			c, d = a, b
			break
		} else if x > mediant {
			a, b = a+c, b+d
		} else {
			c, d = a+c, b+d
		}
	}

	// Pick whichever bound is in range and closer.
	num, den := a, b
	if b > int64(maxDen) || (d <= int64(maxDen) && math.Abs(float64(c)/float64(d)-x) < math.Abs(float64(a)/float64(b)-x)) {
		num, den = c, d
	}

	n := int64(whole)*den + num
	if n > math.MaxInt32 {
		return f, steps, frac.ErrOverflow
	}
	if neg {
		n = -n
	}
	f, err = frac.New(int32(n), int32(den))
	return f, steps, err
}
