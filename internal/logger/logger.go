// Package logger is the level-gated log used by the frac command. The
// library itself never logs.
package logger

import (
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/cornelk/hashmap"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

var (
	level   int = ERROR
	limiter int
	filter  *regexp.Regexp
	counter *hashmap.HashMap
)

func init() {
	counter = &hashmap.HashMap{}
}

func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func SetLevel(l int) {
	level = l
}

// ParseLevel accepts a level name ("error", "info", "verbose", "debug") or
// its number.
func ParseLevel(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error", "1":
		return ERROR, nil
	case "info", "2":
		return INFO, nil
	case "verbose", "3":
		return VERBOSE, nil
	case "debug", "7":
		return DEBUG, nil
	}
	return 0, fmt.Errorf("logger: unknown level %q", s)
}

// SetLimiter caps how many times an identical verbose or debug line is
// printed. Zero disables the cap.
func SetLimiter(l int) {
	limiter = l
}

func SetFilter(pattern string) error {
	if pattern == "" {
		filter = nil
		return nil
	}
	// https://github.com/google/re2/wiki/Syntax
	reg, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	filter = reg
	return nil
}

func Errorf(format string, v ...interface{}) {
	if level >= ERROR {
		log.Printf(format, v...)
	}
}

func Println(v ...interface{}) {
	if level >= INFO {
		log.Println(v...)
	}
}

func Printf(format string, v ...interface{}) {
	if level >= INFO {
		log.Printf(format, v...)
	}
}

func Verbosef(format string, v ...interface{}) {
	printfAtLevel(VERBOSE, format, v...)
}

func Debugf(format string, v ...interface{}) {
	printfAtLevel(DEBUG, format, v...)
}

func printfAtLevel(l int, format string, v ...interface{}) {
	if level < l {
		return
	}
	out := filterOutput(format, v...)
	if out == "" {
		return
	}
	if !limiterAvailable(out) {
		return
	}
	log.Print(out)
}

func limiterAvailable(out string) bool {
	if limiter == 0 {
		return true
	}
	var i int64
	val, _ := counter.GetOrInsert(out, &i)
	actual := val.(*int64)
	count := atomic.AddInt64(actual, 1)
	return count <= int64(limiter)
}

func filterOutput(format string, v ...interface{}) string {
	out := fmt.Sprintf(format, v...)
	if filter == nil || filter.MatchString(out) {
		return out
	}
	return ""
}
