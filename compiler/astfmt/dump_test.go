package astfmt_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/brimdata/zfront/compiler/astfmt"
	"github.com/brimdata/zfront/compiler/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const program = `use "std.zig";
export executable "hello";
#link("c") extern {
	fn puts(s: *const u8) -> i32;
}
#cold("yes") export fn main(argc: i32) -> i32 {
	puts("hi");
	return -argc as i32 + 1;
}
`

const expected = `Root
  Use 'std.zig'
  RootExportDecl executable 'hello'
  ExternBlock
    Directive link 'c'
    FnDecl
      FnProto 'puts'
        ParamDecl 's'
          'const' PointerType
            Type 'u8'
        Type 'i32'
  FnDef
    FnProto 'main'
      Directive cold 'yes'
      ParamDecl 'argc'
        Type 'i32'
      Type 'i32'
    Block
      FnCallExpr
        PrimaryExpr Symbol puts
        PrimaryExpr String 'hi'
      ReturnExpr
        BinOpExpr +
          CastExpr
            PrefixOpExpr -
              PrimaryExpr Symbol argc
            Type 'i32'
          PrimaryExpr Number 1
`

func TestDump(t *testing.T) {
	root, err := parser.ParseText(program)
	require.NoError(t, err)
	assert.Equal(t, expected, astfmt.Dump(root))
	// The dump is stable across parses.
	again, err := parser.ParseText(program)
	require.NoError(t, err)
	assert.Equal(t, astfmt.Dump(root), astfmt.Dump(again))
}

func TestDumpEmptyReturn(t *testing.T) {
	root, err := parser.ParseText("fn f() -> unreachable { return; unreachable; }")
	require.NoError(t, err)
	expected := `Root
  FnDef
    FnProto 'f'
      Type 'unreachable'
    Block
      ReturnExpr
      PrimaryExpr Unreachable
`
	assert.Equal(t, expected, astfmt.Dump(root))
}

func TestWrite(t *testing.T) {
	root, err := parser.ParseText(`use "a.zig";`)
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, astfmt.Write(&b, "dump", root))
	assert.Equal(t, "Root\n  Use 'a.zig'\n", b.String())

	b.Reset()
	require.NoError(t, astfmt.Write(&b, "json", root))
	var v struct {
		Kind  string `json:"kind"`
		Decls []struct {
			Kind string `json:"kind"`
			Path string `json:"path"`
			Loc  struct {
				Line   int `json:"line"`
				Column int `json:"column"`
			} `json:"loc"`
		} `json:"decls"`
	}
	require.NoError(t, json.Unmarshal(b.Bytes(), &v))
	assert.Equal(t, "Root", v.Kind)
	require.Len(t, v.Decls, 1)
	assert.Equal(t, "UseDecl", v.Decls[0].Kind)
	assert.Equal(t, "a.zig", v.Decls[0].Path)
	assert.Equal(t, 1, v.Decls[0].Loc.Column)

	b.Reset()
	require.NoError(t, astfmt.Write(&b, "go", root))
	assert.Contains(t, b.String(), `Path:`)
	assert.Contains(t, b.String(), `"a.zig"`)

	assert.Error(t, astfmt.Write(&b, "xml", root))
	assert.True(t, astfmt.IsFormat("json"))
	assert.False(t, astfmt.IsFormat("xml"))
}
