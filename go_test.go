package frac_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// The root package may only import the standard library and the codecs it
// adapts to. Everything else belongs under cmd/ or misc/.
var allowedImports = map[string]bool{
	"github.com/shopspring/decimal":     true,
	"github.com/vmihailenco/msgpack/v4": true,
}

func TestNoDeps(t *testing.T) {
	if os.Getenv("FRAC_SKIP_MOD") != "" {
		// Use this to avoid this check if you need to use spew.Dump in the package:
		t.Skip()
	}

	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}

	fset := token.NewFileSet()
	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatal(err)
		}
		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			if err != nil {
				t.Fatal(err)
			}
			first := strings.SplitN(path, "/", 2)[0]
			if !strings.Contains(first, ".") {
				continue // standard library
			}
			if !allowedImports[path] {
				t.Errorf("%s imports unexpected package %q", file, path)
			}
		}
	}
}
