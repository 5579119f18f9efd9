package rewrite

import (
	"go/ast"

	"github.com/runvnc/codeclean/astutil"
)

// Empty-block resolution. A block is only resolved when removal is what
// emptied it; blocks that were empty in the input are left alone. Removing
// a construct can empty the enclosing block in turn, so resolution cascades
// upward through rewriteStmts until a non-empty block or the file's
// declaration list is reached.

// rewriteBlock rewrites the block's statements and resolves it if removal
// left it empty. Reports whether the owning construct survives.
func (r *Rewriter) rewriteBlock(body *ast.BlockStmt) bool {
	had := len(body.List) > 0
	body.List = r.rewriteStmts(body.List)

	if !had || len(body.List) > 0 {
		return true
	}

	switch r.Policy {
	case InsertPlaceholder:
		body.List = []ast.Stmt{astutil.CreateNoop()}
	case RemoveConstruct:
		return false
	}

	return true
}

// rewriteFuncBody rewrites a function or method body. Declarations are
// cascade boundaries: the declaration is never removed, so an emptied body
// either gets the placeholder or stays empty, which Go permits.
func (r *Rewriter) rewriteFuncBody(body *ast.BlockStmt) {
	had := len(body.List) > 0
	body.List = r.rewriteStmts(body.List)

	if had && len(body.List) == 0 && r.Policy == InsertPlaceholder {
		body.List = []ast.Stmt{astutil.CreateNoop()}
	}
}

// rewriteIf resolves an if chain branch by branch. The construct is dropped
// only when the body and the entire else chain have all been emptied; an
// emptied body with a surviving else stays as an empty block, since
// removing just the then branch would mean rewriting the condition.
func (r *Rewriter) rewriteIf(s *ast.IfStmt) bool {
	r.rewriteNestedFuncs(s.Init, s.Cond)

	hadBody := len(s.Body.List) > 0
	s.Body.List = r.rewriteStmts(s.Body.List)
	bodyEmptied := hadBody && len(s.Body.List) == 0

	hasElse := s.Else != nil
	switch e := s.Else.(type) {
	case *ast.BlockStmt:
		had := len(e.List) > 0
		e.List = r.rewriteStmts(e.List)
		if had && len(e.List) == 0 {
			switch r.Policy {
			case InsertPlaceholder:
				e.List = []ast.Stmt{astutil.CreateNoop()}
			case RemoveConstruct:
				s.Else = nil
				hasElse = false
			}
		}

	case *ast.IfStmt:
		if !r.rewriteIf(e) {
			s.Else = nil
			hasElse = false
		}
	}

	if bodyEmptied {
		switch r.Policy {
		case InsertPlaceholder:
			s.Body.List = []ast.Stmt{astutil.CreateNoop()}
		case RemoveConstruct:
			if !hasElse {
				return false
			}
		}
	}

	return true
}

// rewriteClauses resolves the case or comm clauses of a switch, type switch
// or select. Each emptied clause is resolved on its own; the construct is
// dropped only when every clause is gone.
func (r *Rewriter) rewriteClauses(body *ast.BlockStmt) bool {
	kept := make([]ast.Stmt, 0, len(body.List))

	for _, clause := range body.List {
		switch c := clause.(type) {
		case *ast.CaseClause:
			for _, e := range c.List {
				r.rewriteNestedFuncs(e)
			}
			if !r.rewriteClauseBody(&c.Body) {
				continue
			}

		case *ast.CommClause:
			r.rewriteNestedFuncs(c.Comm)
			if !r.rewriteClauseBody(&c.Body) {
				continue
			}
		}

		kept = append(kept, clause)
	}

	dropped := len(kept) < len(body.List)
	body.List = kept

	if dropped && len(kept) == 0 && r.Policy == RemoveConstruct {
		return false
	}

	return true
}

func (r *Rewriter) rewriteClauseBody(list *[]ast.Stmt) bool {
	had := len(*list) > 0
	*list = r.rewriteStmts(*list)

	if !had || len(*list) > 0 {
		return true
	}

	switch r.Policy {
	case InsertPlaceholder:
		*list = []ast.Stmt{astutil.CreateNoop()}
	case RemoveConstruct:
		return false
	}

	return true
}
