package srcfiles

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	f := NewFile("a.zig", []byte("fn a() {\n  return;\n}\n"))
	assert.Equal(t, []int{0, 9, 19}, f.LineOffsets())
	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, f.Position(0))
	assert.Equal(t, Position{Offset: 11, Line: 2, Column: 3}, f.Position(11))
	assert.Equal(t, Position{Offset: 19, Line: 3, Column: 1}, f.Position(19))
	assert.False(t, f.Position(-1).IsValid())
	assert.Equal(t, "  return;", f.Line(2))
	assert.Equal(t, "}", f.LineOfPos(19))
	assert.Equal(t, "", f.Line(4))
}

func TestErrorFormat(t *testing.T) {
	kind := errors.New("kind")
	f := NewFile("src/main.zig", []byte("use \"x\"\nfn\n"))
	err := f.NewError(kind, "invalid token: 'fn'", 8, 9)
	assert.Equal(t, "src/main.zig:2:1: error: invalid token: 'fn'", err.Error())
	assert.True(t, errors.Is(err, kind))
	assert.Same(t, f, err.File())
}

func TestRender(t *testing.T) {
	f := NewFile("t.zig", []byte("fn main() {\n\treturn 1 +;\n}\n"))
	err := f.NewError(errors.New("x"), "invalid token: ';'", 23, -1)
	err.Hint = "remove it"
	var b strings.Builder
	require.NoError(t, err.Render(&b, false))
	expected := "t.zig:2:12: error: invalid token: ';'\n" +
		"\treturn 1 +;\n" +
		"\t          ^\n" +
		"hint: remove it\n"
	assert.Equal(t, expected, b.String())
}

func TestRenderSpan(t *testing.T) {
	f := NewFile("t.zig", []byte("fun main() {}"))
	err := f.NewError(errors.New("x"), "invalid token: 'fun'", 0, 2)
	var b strings.Builder
	require.NoError(t, err.Render(&b, false))
	assert.Equal(t, "t.zig:1:1: error: invalid token: 'fun'\nfun main() {}\n^~~\n", b.String())
}

func TestColorMode(t *testing.T) {
	var c ColorMode
	require.NoError(t, c.Set("always"))
	assert.Equal(t, ColorAlways, c)
	assert.True(t, c.Enabled(&strings.Builder{}))
	require.NoError(t, c.Set("never"))
	assert.False(t, c.Enabled(&strings.Builder{}))
	require.NoError(t, c.Set("auto"))
	assert.False(t, c.Enabled(&strings.Builder{}))
	assert.Error(t, c.Set("sometimes"))
}
