package codeclean

import (
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/spf13/afero"
)

var fs = afero.NewOsFs()
var afs = &afero.Afero{Fs: fs}

// ParseFile parses the content of the given file and returns the corresponding ast.File node and its file set for positional information.
// If a fatal error is encountered the error return argument is not nil.
func ParseFile(file string) (*ast.File, *token.FileSet, error) {
	data, err := afs.ReadFile(file)
	if err != nil {
		return nil, nil, err
	}

	return ParseSource(data)
}

// LoadFile reads the given file through the package file system.
func LoadFile(file string) ([]byte, error) {
	return afs.ReadFile(file)
}

// ParseSource parses the given source and returns the corresponding ast.File node and its file set for positional information.
// Comments are kept in the tree so that a later render pass can reproduce them.
func ParseSource(data interface{}) (*ast.File, *token.FileSet, error) {
	fset := token.NewFileSet()

	src, err := parser.ParseFile(fset, "", data, parser.ParseComments|parser.AllErrors)
	if err != nil {
		return nil, nil, &ParseError{Err: err}
	}

	return src, fset, nil
}
