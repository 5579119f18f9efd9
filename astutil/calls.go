package astutil

import (
	"go/ast"
	"go/token"
)

// CallPath unwinds a callee expression into its dotted identifier path,
// left to right, so that a.b.c(...) yields ["a" "b" "c"]. Callee forms that
// are not a plain identifier or a chain of selectors on identifiers
// (indexing, call results, parenthesized expressions) have no path.
func CallPath(fun ast.Expr) ([]string, bool) {
	switch fn := fun.(type) {
	case *ast.Ident:
		return []string{fn.Name}, true
	case *ast.SelectorExpr:
		base, ok := CallPath(fn.X)
		if !ok {
			return nil, false
		}
		return append(base, fn.Sel.Name), true
	}

	return nil, false
}

// CreateNoop builds a placeholder statement for a block that must not stay
// empty. Go has no pass statement, so a blank assignment stands in.
func CreateNoop() ast.Stmt {
	return &ast.AssignStmt{
		Lhs: []ast.Expr{ast.NewIdent("_")},
		Tok: token.ASSIGN,
		Rhs: []ast.Expr{&ast.BasicLit{Kind: token.INT, Value: "0"}},
	}
}

// IsNoop reports whether stmt is a placeholder produced by CreateNoop.
func IsNoop(stmt ast.Stmt) bool {
	assign, ok := stmt.(*ast.AssignStmt)
	if !ok || assign.Tok != token.ASSIGN {
		return false
	}
	if len(assign.Lhs) != 1 || len(assign.Rhs) != 1 {
		return false
	}

	ident, ok := assign.Lhs[0].(*ast.Ident)
	if !ok || ident.Name != "_" {
		return false
	}

	lit, ok := assign.Rhs[0].(*ast.BasicLit)
	return ok && lit.Kind == token.INT && lit.Value == "0"
}
