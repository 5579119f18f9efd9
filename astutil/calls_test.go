package astutil

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pathOf(t *testing.T, expr string) ([]string, bool) {
	node, err := parser.ParseExpr(expr)
	assert.Nil(t, err)

	call, ok := node.(*ast.CallExpr)
	assert.True(t, ok)

	return CallPath(call.Fun)
}

func TestCallPath(t *testing.T) {
	path, ok := pathOf(t, "print(x)")
	assert.True(t, ok)
	assert.Equal(t, []string{"print"}, path)

	path, ok = pathOf(t, "logging.Print(x)")
	assert.True(t, ok)
	assert.Equal(t, []string{"logging", "Print"}, path)

	path, ok = pathOf(t, "a.b.c(1, 2)")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, path)
}

func TestCallPathRejectsComplexCallees(t *testing.T) {
	_, ok := pathOf(t, "fns[0](x)")
	assert.False(t, ok)

	_, ok = pathOf(t, "f()(x)")
	assert.False(t, ok)

	_, ok = pathOf(t, "(print)(x)")
	assert.False(t, ok)

	_, ok = pathOf(t, "m[k].Print(x)")
	assert.False(t, ok)
}

func TestCreateNoop(t *testing.T) {
	noop := CreateNoop()

	var buf bytes.Buffer
	err := printer.Fprint(&buf, token.NewFileSet(), noop)
	assert.Nil(t, err)
	assert.Equal(t, "_ = 0", buf.String())

	assert.True(t, IsNoop(noop))
}

func TestIsNoopRejectsOtherStatements(t *testing.T) {
	file, err := parser.ParseFile(token.NewFileSet(), "", "package p\nfunc f() {\n\tx := 0\n\t_ = x\n}\n", 0)
	assert.Nil(t, err)

	body := file.Decls[0].(*ast.FuncDecl).Body
	for _, stmt := range body.List {
		assert.False(t, IsNoop(stmt))
	}
}
