package codeclean

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
)

// Render prints the tree back to source text and normalizes it with gofmt.
// A failure here means the tree itself is malformed, which trees produced by
// this package's own rewrites should never be.
func Render(fset *token.FileSet, file *ast.File) (string, error) {
	var buf bytes.Buffer

	err := printer.Fprint(&buf, fset, file)
	if err != nil {
		return "", &RenderError{Err: err}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return "", &RenderError{Err: err}
	}

	return string(src), nil
}
