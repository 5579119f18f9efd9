package rewrite

import "fmt"

// Policy selects what happens to a block that call removal has emptied.
type Policy int

const (
	// InsertPlaceholder fills the emptied block with a single no-op
	// statement and keeps the enclosing construct.
	InsertPlaceholder Policy = iota

	// RemoveConstruct drops the construct owning the emptied block from its
	// parent block. Emptiness cascades: if that removal empties the parent
	// block, the parent's own construct is dropped in turn, up to the
	// file's declaration list.
	RemoveConstruct

	// KeepEmpty leaves the block empty. Always valid in Go, unlike in
	// languages whose grammar demands a statement.
	KeepEmpty
)

// ParsePolicy maps the command-line spelling of a policy to its value.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "pass":
		return InsertPlaceholder, nil
	case "remove":
		return RemoveConstruct, nil
	case "keep":
		return KeepEmpty, nil
	}

	return 0, fmt.Errorf("unknown empty-block policy %q", name)
}

func (p Policy) String() string {
	switch p {
	case InsertPlaceholder:
		return "pass"
	case RemoveConstruct:
		return "remove"
	case KeepEmpty:
		return "keep"
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// Valid reports whether p is one of the three named policies.
func (p Policy) Valid() bool {
	return p >= InsertPlaceholder && p <= KeepEmpty
}
