package rewrite

import (
	"go/ast"
	"sort"
	"strings"

	"github.com/runvnc/codeclean/astutil"
)

// TargetSet holds the call paths whose statement-level calls should be
// removed. Keys are dotted paths such as "println" or "fmt.Println".
// Matching is exact and case-sensitive.
type TargetSet map[string]struct{}

// NewTargetSet builds a set from dotted call paths. Blank names are dropped.
func NewTargetSet(names ...string) TargetSet {
	set := make(TargetSet, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			set[name] = struct{}{}
		}
	}

	return set
}

// ParseTargets splits a comma-separated list of call paths, the format the
// --functions flag uses.
func ParseTargets(spec string) TargetSet {
	return NewTargetSet(strings.Split(spec, ",")...)
}

// Matches reports whether expr is a call whose callee path is a member of
// the set. Non-call expressions and callee forms without a plain dotted
// path never match.
func (ts TargetSet) Matches(expr ast.Expr) bool {
	if len(ts) == 0 {
		return false
	}

	call, ok := expr.(*ast.CallExpr)
	if !ok {
		return false
	}

	path, ok := astutil.CallPath(call.Fun)
	if !ok {
		return false
	}

	_, ok = ts[strings.Join(path, ".")]
	return ok
}

// Names returns the configured paths in sorted order, for logging.
func (ts TargetSet) Names() []string {
	names := make([]string, 0, len(ts))
	for name := range ts {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
