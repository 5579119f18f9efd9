// Package strip removes comments from Go source text. It works on the text
// alone with a single lexical scan; it never parses, so it stays independent
// of the tree-based rewrite stages.
package strip

import "strings"

// Kind distinguishes the two Go comment forms.
type Kind int

const (
	Line  Kind = iota // //...
	Block             // /*...*/
)

// Span is a comment region [Start,End) in the scanned text. Spans are
// disjoint and never overlap a string, raw string or rune literal.
type Span struct {
	Start, End int
	Kind       Kind
}

// Options controls which comments survive a Strip.
type Options struct {
	// KeepDocComments preserves runs of whole-line comments that sit
	// directly above a package, import, const, var, type or func line.
	KeepDocComments bool

	// KeepDirectives preserves machine-readable comments such as //go:build
	// and //line, which change build behavior if dropped.
	KeepDirectives bool
}

// Scan finds every comment span in src. Comment introducers inside
// interpreted strings, raw strings and rune literals are skipped, including
// across the lines of a multi-line raw string.
func Scan(src string) []Span {
	var spans []Span

	n := len(src)
	for i := 0; i < n; {
		switch src[i] {
		case '"':
			i = skipInterpreted(src, i+1, '"')
		case '\'':
			i = skipInterpreted(src, i+1, '\'')
		case '`':
			i = skipRaw(src, i+1)
		case '/':
			if i+1 < n && src[i+1] == '/' {
				end := lineEnd(src, i)
				spans = append(spans, Span{Start: i, End: end, Kind: Line})
				i = end
			} else if i+1 < n && src[i+1] == '*' {
				end := n
				if j := strings.Index(src[i+2:], "*/"); j >= 0 {
					end = i + 2 + j + 2
				}
				spans = append(spans, Span{Start: i, End: end, Kind: Block})
				i = end
			} else {
				i++
			}
		default:
			i++
		}
	}

	return spans
}

// Strip returns src with comment spans deleted. Comment-only lines go away
// together with their terminator; a trailing comment is cut back to the end
// of the code; a block comment wedged between tokens leaves a single space
// so the tokens cannot fuse.
func Strip(src string, opts Options) string {
	spans := Scan(src)
	if len(spans) == 0 {
		return src
	}

	// Blank the spans in a shadow copy so line-shape checks see a line that
	// holds nothing but comments as blank even when several spans share it.
	masked := []byte(src)
	for _, sp := range spans {
		for i := sp.Start; i < sp.End; i++ {
			if masked[i] != '\n' {
				masked[i] = ' '
			}
		}
	}

	keep := classify(src, string(masked), spans, opts)

	var out strings.Builder
	out.Grow(len(src))

	cursor := 0
	for i, sp := range spans {
		if keep[i] {
			continue
		}

		start, end, pad := cut(src, string(masked), sp)
		if start < cursor {
			start = cursor
		}
		if end < cursor {
			continue
		}

		out.WriteString(src[cursor:start])
		if pad {
			out.WriteByte(' ')
		}
		cursor = end
	}
	out.WriteString(src[cursor:])

	return out.String()
}

// classify marks the spans that survive: directives, and whole-line comment
// runs immediately above a declaration.
func classify(src, masked string, spans []Span, opts Options) []bool {
	keep := make([]bool, len(spans))

	if opts.KeepDirectives {
		for i, sp := range spans {
			if sp.Kind == Line && isDirective(src[sp.Start:sp.End]) {
				keep[i] = true
			}
		}
	}

	if !opts.KeepDocComments {
		return keep
	}

	for i := 0; i < len(spans); i++ {
		if !wholeLine(masked, spans[i]) {
			continue
		}

		j := i
		for j+1 < len(spans) && wholeLine(masked, spans[j+1]) && adjacent(masked, spans[j], spans[j+1]) {
			j++
		}

		if declFollows(masked, spans[j]) {
			for k := i; k <= j; k++ {
				keep[k] = true
			}
		}

		i = j
	}

	return keep
}

// cut decides the byte range to delete for one span, and whether a single
// space must replace it.
func cut(src, masked string, sp Span) (start, end int, pad bool) {
	start, end = sp.Start, sp.End

	ls := lineStart(src, start)
	le := lineEnd(src, end)
	leadBlank := isBlank(masked[ls:start])
	tailBlank := isBlank(masked[end:le])

	switch {
	case leadBlank && tailBlank:
		// The comment owns its line(s): remove them, terminator included.
		start = ls
		end = le
		if end < len(src) {
			end++
		}

	case tailBlank:
		// Trailing comment after code: drop it and the gap before it, keep
		// the code and its terminator.
		for start > 0 && (src[start-1] == ' ' || src[start-1] == '\t') {
			start--
		}

	default:
		// Comment ahead of or between code on the same line.
		for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
			end++
		}
		if !leadBlank {
			pad = src[start-1] != ' ' && src[start-1] != '\t'
		}
	}

	return start, end, pad
}

func isDirective(text string) bool {
	return strings.HasPrefix(text, "//go:") ||
		strings.HasPrefix(text, "//line ") ||
		strings.HasPrefix(text, "//export ")
}

// wholeLine reports whether the span is the only content of its line(s).
func wholeLine(masked string, sp Span) bool {
	return isBlank(masked[lineStart(masked, sp.Start):sp.Start]) &&
		isBlank(masked[sp.End:lineEnd(masked, sp.End)])
}

// adjacent reports whether b starts on the line directly below a's last
// line, with no blank line between them.
func adjacent(masked string, a, b Span) bool {
	return lineEnd(masked, a.End)+1 == lineStart(masked, b.Start)
}

// declFollows reports whether the line below the span opens a declaration,
// which makes the span (and its comment group) a doc comment.
func declFollows(masked string, sp Span) bool {
	next := lineEnd(masked, sp.End) + 1
	if next >= len(masked) {
		return false
	}

	line := strings.TrimLeft(masked[next:lineEnd(masked, next)], " \t")
	for _, kw := range []string{"package ", "import ", "import(", "const ", "const(", "var ", "var(", "type ", "type(", "func ", "func("} {
		if strings.HasPrefix(line, kw) {
			return true
		}
	}

	return false
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r':
		default:
			return false
		}
	}

	return true
}

func lineStart(src string, i int) int {
	return strings.LastIndexByte(src[:i], '\n') + 1
}

func lineEnd(src string, i int) int {
	if j := strings.IndexByte(src[i:], '\n'); j >= 0 {
		return i + j
	}

	return len(src)
}

// skipInterpreted advances past an interpreted string or rune literal,
// honoring backslash escapes. An unterminated literal (impossible in valid
// Go) ends at the line break.
func skipInterpreted(src string, i int, quote byte) int {
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
		case quote:
			return i + 1
		case '\n':
			return i
		default:
			i++
		}
	}

	return i
}

// skipRaw advances past a raw string literal, which may span lines and has
// no escapes.
func skipRaw(src string, i int) int {
	if j := strings.IndexByte(src[i:], '`'); j >= 0 {
		return i + j + 1
	}

	return len(src)
}
