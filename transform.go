package codeclean

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"

	astutil "golang.org/x/tools/go/ast/astutil"

	"github.com/runvnc/codeclean/rewrite"
	"github.com/runvnc/codeclean/strip"
)

// Options configures a single Transform run.
type Options struct {
	// Targets holds the call paths whose statement-level calls are removed.
	// An empty set disables call removal.
	Targets rewrite.TargetSet

	// EmptyBlocks selects how blocks emptied by removal are resolved.
	EmptyBlocks rewrite.Policy

	// RemoveComments strips comment text from the result.
	RemoveComments bool

	// StripDocComments also removes doc comments and machine directives
	// when RemoveComments is set. Off by default because directives and doc
	// comments carry build and API semantics.
	StripDocComments bool
}

// Result describes what a Transform run did.
type Result struct {
	Output          string
	CallsRemoved    int
	CommentsRemoved bool
}

// Transform runs the full cleanup pipeline over one file's source text:
// parse, remove matching call statements, resolve emptied blocks, prune
// imports left unused by the removals, render, and optionally strip
// comments. When nothing matched, Output is the input text verbatim.
func Transform(source []byte, opts Options) (*Result, error) {
	if !opts.EmptyBlocks.Valid() {
		return nil, &ConfigError{Reason: fmt.Sprintf("unknown empty-block policy %d", opts.EmptyBlocks)}
	}

	file, fset, err := ParseSource(source)
	if err != nil {
		return nil, err
	}

	rewriter := &rewrite.Rewriter{Targets: opts.Targets, Policy: opts.EmptyBlocks}
	removed := rewriter.Apply(file)

	text := string(source)
	if removed > 0 {
		pruneUnusedImports(fset, file)

		text, err = Render(fset, file)
		if err != nil {
			return nil, err
		}
	}

	result := &Result{Output: text, CallsRemoved: removed}

	if opts.RemoveComments {
		stripped := strip.Strip(text, strip.Options{
			KeepDocComments: !opts.StripDocComments,
			KeepDirectives:  !opts.StripDocComments,
		})
		result.CommentsRemoved = stripped != text
		result.Output = stripped
	}

	return result, nil
}

// pruneUnusedImports drops imports that no surviving code references.
// Removing the last fmt.Println leaves an unused fmt import behind, which is
// a compile error in Go. Blank and dot imports are never touched.
func pruneUnusedImports(fset *token.FileSet, file *ast.File) {
	specs := make([]*ast.ImportSpec, len(file.Imports))
	copy(specs, file.Imports)

	for _, spec := range specs {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		name := ""
		if spec.Name != nil {
			name = spec.Name.Name
		}
		if name == "_" || name == "." {
			continue
		}

		if !astutil.UsesImport(file, path) {
			if name != "" {
				astutil.DeleteNamedImport(fset, file, name, path)
			} else {
				astutil.DeleteImport(fset, file, path)
			}
		}
	}
}
