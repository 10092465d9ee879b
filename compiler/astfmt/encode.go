package astfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/brimdata/zfront/compiler/ast"
	"github.com/kr/pretty"
)

// Formats lists the formats accepted by Write.
var Formats = []string{"dump", "json", "go"}

// Write writes the tree rooted at n to w in the named format: "dump" for
// the indented dump, "json" for the JSON encoding of the nodes, or "go"
// for Go syntax.
func Write(w io.Writer, format string, n ast.Node) error {
	switch format {
	case "dump", "":
		_, err := io.WriteString(w, Dump(n))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(n)
	case "go":
		_, err := pretty.Fprintf(w, "%# v\n", n)
		return err
	}
	return fmt.Errorf("unknown output format %q (must be one of %v)", format, Formats)
}

// IsFormat reports whether format is accepted by Write.
func IsFormat(format string) bool {
	return slices.Contains(Formats, format)
}
