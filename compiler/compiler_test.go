package compiler_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/brimdata/zfront/compiler"
	"github.com/brimdata/zfront/compiler/ast"
	"github.com/brimdata/zfront/compiler/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0644))
	}
	return dir
}

func TestParseSource(t *testing.T) {
	root, err := compiler.ParseSource("main.zig", []byte("fn main() {}"))
	require.NoError(t, err)
	require.Len(t, root.Decls, 1)
	assert.Equal(t, "main.zig", root.Pos().Owner.Name)

	_, err = compiler.ParseSource("bad.zig", []byte("fn main() {"))
	assert.EqualError(t, err, "bad.zig:1:12: error: invalid token: ''")
}

func TestParseFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.zig": `use "b.zig";`})
	root, err := compiler.ParseFile(filepath.Join(dir, "a.zig"))
	require.NoError(t, err)
	assert.Equal(t, "b.zig", root.Decls[0].(*ast.UseDecl).Path)

	_, err = compiler.ParseFile(filepath.Join(dir, "missing.zig"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseFilesOrder(t *testing.T) {
	files := map[string]string{}
	var paths []string
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, name := range names {
		files[name+".zig"] = "fn " + name + "() {}"
	}
	dir := writeFiles(t, files)
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name+".zig"))
	}
	c := compiler.NewCompiler(nil, 3)
	roots, err := c.ParseFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, roots, len(names))
	for i, root := range roots {
		assert.Equal(t, names[i], root.Decls[0].(*ast.FnDef).Proto.Name)
	}
}

func TestParseFilesError(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.zig": "fn f() {}",
		"bad1.zig": "fn f() { return }",
		"bad2.zig": "#x(\"y\")",
	})
	paths := []string{
		filepath.Join(dir, "good.zig"),
		filepath.Join(dir, "bad1.zig"),
		filepath.Join(dir, "bad2.zig"),
	}
	c := compiler.NewCompiler(nil, 1)
	roots, err := c.ParseFiles(context.Background(), paths)
	assert.Nil(t, roots)
	assert.ErrorIs(t, err, parser.ErrUnexpectedToken)
}

func TestParseFilesCanceled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.zig": "fn f() {}"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := compiler.ParseFiles(ctx, []string{filepath.Join(dir, "a.zig")})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestParseLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := compiler.NewCompiler(zap.New(core), 0)
	_, err := c.ParseSource("t.zig", []byte(`use "a"; fn f() {}`))
	require.NoError(t, err)
	assert.Equal(t, 2, logs.FilterMessage("declaration").Len())
	assert.Equal(t, 1, logs.FilterMessage("parsed").Len())
	entries := logs.FilterMessage("parse").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "t.zig", entries[0].ContextMap()["file"])
	assert.Equal(t, true, entries[0].ContextMap()["ok"])
}

func TestParseCache(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := compiler.NewCompiler(zap.New(core), 1)
	require.NoError(t, c.EnableCache(4))
	first, err := c.ParseSource("t.zig", []byte("fn f() {}"))
	require.NoError(t, err)
	again, err := c.ParseSource("t.zig", []byte("fn f() {}"))
	require.NoError(t, err)
	assert.Same(t, first, again)
	other, err := c.ParseSource("u.zig", []byte("fn f() {}"))
	require.NoError(t, err)
	assert.NotSame(t, first, other)
	assert.Equal(t, 1, logs.FilterField(zap.Bool("cached", true)).Len())

	_, err = c.ParseSource("t.zig", []byte("fn f() {"))
	require.Error(t, err)
	_, err = c.ParseSource("t.zig", []byte("fn f() {"))
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterField(zap.Bool("cached", true)).Len())

	assert.Error(t, c.EnableCache(0))
}
