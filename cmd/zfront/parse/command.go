package parse

import (
	"flag"
	"os"

	"github.com/brimdata/zfront/cli/outputflags"
	"github.com/brimdata/zfront/cmd/zfront/root"
	"github.com/brimdata/zfront/compiler"
	"github.com/brimdata/zfront/pkg/charm"
)

var spec = &charm.Spec{
	Name:  "parse",
	Usage: "parse [ options ] file ...",
	Short: "parse source files and print their syntax trees",
	Long: `
The parse command parses each file and writes its syntax tree to standard
output or to the file given by -o.  Files are parsed concurrently, up to
-P at a time, and trees are written in the order of the command line.

The -f flag selects the tree format: "dump" is an indented listing with
one node per line, "json" is a JSON object per file in which each node
carries its kind and source location, and "go" is Go syntax.

If any file fails to parse, nothing is written and the diagnostic for
the first failing file is printed to standard error.
`,
	New: New,
}

func init() {
	root.Zfront.Add(spec)
}

type Command struct {
	*root.Command
	outputFlags outputflags.Flags
	parallelism int
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	c.outputFlags.SetFlags(f)
	f.IntVar(&c.parallelism, "P", compiler.Parallelism, "number of files to parse concurrently")
	return c, nil
}

func (c *Command) Run(args []string) error {
	ctx, cleanup, err := c.Init(&c.outputFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	if len(args) == 0 {
		return charm.NeedHelp
	}
	comp := compiler.NewCompiler(c.Logger(), c.parallelism)
	roots, err := comp.ParseFiles(ctx, args)
	if err != nil {
		if werr := c.outputFlags.WriteError(os.Stderr, err); werr != nil {
			return werr
		}
		return root.ErrReported
	}
	w, err := c.outputFlags.Open()
	if err != nil {
		return err
	}
	for _, r := range roots {
		if err := c.outputFlags.WriteTree(w, r); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}
