package strip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var keepAll = Options{KeepDocComments: true, KeepDirectives: true}

func TestScanFindsComments(t *testing.T) {
	src := "x := 1 // line\n/* block */\n"

	spans := Scan(src)
	assert.Len(t, spans, 2)
	assert.Equal(t, Line, spans[0].Kind)
	assert.Equal(t, "// line", src[spans[0].Start:spans[0].End])
	assert.Equal(t, Block, spans[1].Kind)
	assert.Equal(t, "/* block */", src[spans[1].Start:spans[1].End])
}

func TestScanIgnoresCommentIntroducersInLiterals(t *testing.T) {
	src := "a := \"// not a comment\"\n" +
		"b := '\\''\n" +
		"c := `\n// still a string\n/* and this */\n`\n" +
		"d := \"/* nope */\"\n"

	assert.Empty(t, Scan(src))
}

func TestScanHandlesEscapedQuotes(t *testing.T) {
	src := "a := \"quote \\\" here\" // real\n"

	spans := Scan(src)
	assert.Len(t, spans, 1)
	assert.Equal(t, "// real", src[spans[0].Start:spans[0].End])
}

func TestCommentOnlyLineRemovedWithTerminator(t *testing.T) {
	src := "func f() {\n\t// gone\n\tx := 1\n\t_ = x\n}\n"

	out := Strip(src, keepAll)
	assert.Equal(t, "func f() {\n\tx := 1\n\t_ = x\n}\n", out)
}

func TestTrailingCommentTrimmedCodeKept(t *testing.T) {
	src := "x := 1 // trailing\ny := 2\n"

	out := Strip(src, keepAll)
	assert.Equal(t, "x := 1\ny := 2\n", out)
}

func TestInlineBlockCommentLeavesNoFusedTokens(t *testing.T) {
	out := Strip("a := 1 /* note */ + 2\n", keepAll)
	assert.Equal(t, "a := 1 + 2\n", out)

	out = Strip("a := b/*c*/ + d\n", keepAll)
	assert.Equal(t, "a := b + d\n", out)
}

func TestMultiLineBlockCommentRemoved(t *testing.T) {
	src := "x := 1\n/*\nall\ngone\n*/\ny := 2\n"

	out := Strip(src, keepAll)
	assert.Equal(t, "x := 1\ny := 2\n", out)
}

func TestDocCommentsPreserved(t *testing.T) {
	src := `// Package demo does demo things.
package demo

// Answer is the answer.
const Answer = 42

// helper explains itself.
// It really does.
func helper() {
	// internal note
	x := 1
	_ = x // inline note
}
`

	out := Strip(src, keepAll)
	assert.Contains(t, out, "// Package demo does demo things.")
	assert.Contains(t, out, "// Answer is the answer.")
	assert.Contains(t, out, "// helper explains itself.")
	assert.Contains(t, out, "// It really does.")
	assert.NotContains(t, out, "internal note")
	assert.NotContains(t, out, "inline note")
}

func TestDocCommentsStrippedOnRequest(t *testing.T) {
	src := "// Package demo does demo things.\npackage demo\n\n// helper helps.\nfunc helper() {}\n"

	out := Strip(src, Options{})
	assert.Equal(t, "package demo\n\nfunc helper() {}\n", out)
}

func TestDirectivesPreserved(t *testing.T) {
	src := "//go:build linux\n\npackage demo\n\n//go:generate stringer -type=Kind\nvar x = 1\n"

	out := Strip(src, Options{KeepDirectives: true})
	assert.Contains(t, out, "//go:build linux")
	assert.Contains(t, out, "//go:generate stringer -type=Kind")
}

func TestStringLiteralsSurviveVerbatim(t *testing.T) {
	src := "s := \"keep // this\" // drop this\nr := `raw\n// inside raw\n` // drop too\n"

	out := Strip(src, keepAll)
	assert.Contains(t, out, `"keep // this"`)
	assert.Contains(t, out, "// inside raw")
	assert.NotContains(t, out, "drop this")
	assert.NotContains(t, out, "drop too")
}

func TestCommentAtEndOfFileWithoutNewline(t *testing.T) {
	out := Strip("x := 1\n// tail", keepAll)
	assert.Equal(t, "x := 1\n", out)
}

func TestNoCommentsIsIdentity(t *testing.T) {
	src := "package demo\n\nvar x = 1\n"
	assert.Equal(t, src, Strip(src, keepAll))
}

func TestStripIsIdempotent(t *testing.T) {
	src := "// Package demo.\npackage demo\n\nfunc f() {\n\tx := 1 // note\n\t_ = x\n}\n"

	once := Strip(src, keepAll)
	assert.Equal(t, once, Strip(once, keepAll))
}
