package outputflags

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/brimdata/zfront/compiler"
	"github.com/brimdata/zfront/compiler/srcfiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return &f
}

func TestFormat(t *testing.T) {
	t.Setenv(EnvColor, "")
	f := newFlags(t)
	require.NoError(t, f.Init())
	assert.Equal(t, "dump", f.Format)
	assert.Equal(t, srcfiles.ColorAuto, f.Color)

	f = newFlags(t, "-f", "json", "-color", "never", "-o", "-")
	require.NoError(t, f.Init())
	assert.Equal(t, "json", f.Format)
	assert.Equal(t, srcfiles.ColorNever, f.Color)
	assert.Equal(t, "", f.FileName())

	f = newFlags(t, "-f", "yaml")
	assert.Error(t, f.Init())
}

func TestEnvColor(t *testing.T) {
	t.Setenv(EnvColor, "always")
	f := newFlags(t)
	assert.Equal(t, srcfiles.ColorAlways, f.Color)
	f = newFlags(t, "-color", "off")
	assert.Equal(t, srcfiles.ColorNever, f.Color)
}

func TestWriteError(t *testing.T) {
	t.Setenv(EnvColor, "")
	f := newFlags(t, "-color", "never")
	_, err := compiler.ParseSource("t.zig", []byte("use x;"))
	require.Error(t, err)
	var b bytes.Buffer
	require.NoError(t, f.WriteError(&b, err))
	assert.Equal(t, "t.zig:1:5: error: invalid token: 'x'\nuse x;\n    ^\n", b.String())

	b.Reset()
	require.NoError(t, f.WriteError(&b, errors.New("boom")))
	assert.Equal(t, "boom\n", b.String())
}

func TestWriteTree(t *testing.T) {
	f := newFlags(t)
	require.NoError(t, f.Init())
	root, err := compiler.ParseSource("t.zig", []byte(`use "a";`))
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, f.WriteTree(&b, root))
	assert.Equal(t, "Root\n  Use 'a'\n", b.String())
}

func TestColorFlagsOnly(t *testing.T) {
	t.Setenv(EnvColor, "never")
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetColorFlags(fs)
	assert.Equal(t, srcfiles.ColorNever, f.Color)
	assert.Nil(t, fs.Lookup("f"))
	assert.Nil(t, fs.Lookup("o"))
	require.NoError(t, fs.Parse([]string{"-color", "always"}))
	assert.Equal(t, srcfiles.ColorAlways, f.Color)
}
