package rewrite

import (
	"go/ast"
)

// Rewriter removes statement-level calls to the configured targets from
// every block of a file and resolves the blocks the removals empty.
type Rewriter struct {
	Targets TargetSet
	Policy  Policy

	removed int
}

// Apply rewrites the file in place and returns the number of call
// statements removed. Traversal is depth-first: every owned block is
// visited, including the bodies of function literals nested inside
// surviving statements and declarations.
func (r *Rewriter) Apply(file *ast.File) int {
	r.removed = 0

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Body != nil {
				r.rewriteFuncBody(d.Body)
			}
		default:
			// Function literals can hide in var initializers.
			r.rewriteNestedFuncs(decl)
		}
	}

	return r.removed
}

// rewriteStmts produces the surviving statement list for one block. Matched
// call statements are dropped; every other statement is rewritten in place
// and may itself be dropped by the empty-block policy. Order is preserved.
func (r *Rewriter) rewriteStmts(list []ast.Stmt) []ast.Stmt {
	kept := make([]ast.Stmt, 0, len(list))

	for _, stmt := range list {
		if expr, ok := stmt.(*ast.ExprStmt); ok && r.Targets.Matches(expr.X) {
			r.removed++
			continue
		}

		if r.rewriteStmt(stmt) {
			kept = append(kept, stmt)
		}
	}

	return kept
}

// rewriteStmt descends into the blocks a statement owns. It reports whether
// the statement survives; false means the empty-block policy removed the
// whole construct.
func (r *Rewriter) rewriteStmt(stmt ast.Stmt) bool {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		return r.rewriteBlock(s)

	case *ast.IfStmt:
		return r.rewriteIf(s)

	case *ast.ForStmt:
		r.rewriteNestedFuncs(s.Init, s.Cond, s.Post)
		return r.rewriteBlock(s.Body)

	case *ast.RangeStmt:
		r.rewriteNestedFuncs(s.X)
		return r.rewriteBlock(s.Body)

	case *ast.SwitchStmt:
		r.rewriteNestedFuncs(s.Init, s.Tag)
		return r.rewriteClauses(s.Body)

	case *ast.TypeSwitchStmt:
		r.rewriteNestedFuncs(s.Init, s.Assign)
		return r.rewriteClauses(s.Body)

	case *ast.SelectStmt:
		return r.rewriteClauses(s.Body)

	case *ast.LabeledStmt:
		return r.rewriteStmt(s.Stmt)

	default:
		r.rewriteNestedFuncs(stmt)
		return true
	}
}

// rewriteNestedFuncs finds function literals anywhere inside the given
// nodes and rewrites their bodies. Descent stops at each literal; deeper
// literals are reached through the recursive body rewrite.
func (r *Rewriter) rewriteNestedFuncs(nodes ...ast.Node) {
	for _, node := range nodes {
		if node == nil {
			continue
		}

		ast.Inspect(node, func(n ast.Node) bool {
			if lit, ok := n.(*ast.FuncLit); ok {
				r.rewriteFuncBody(lit.Body)
				return false
			}
			return true
		})
	}
}
