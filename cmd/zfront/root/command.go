package root

import (
	"errors"
	"flag"

	"github.com/brimdata/zfront/cli"
	"github.com/brimdata/zfront/pkg/charm"
)

// ErrReported is returned by a command that has already written its
// diagnostics to standard error.
var ErrReported = errors.New("errors reported")

var Zfront = &charm.Spec{
	Name:        "zfront",
	Usage:       "zfront [options] <command> [arguments...]",
	Short:       "parse zig-like source files",
	HiddenFlags: "cpuprofile",
	Long: `
The "zfront" command runs the front end of a compiler for a small Zig-like
language.  Source files are tokenized and parsed into syntax trees, which
may be printed for inspection in several formats.

A program is a sequence of top-level declarations: function definitions,
extern blocks of function prototypes, "use" imports, and "export" root
declarations.  Any declaration may be preceded by directives of the form
#name("param").

Syntax errors are reported on standard error with the offending source
line and a caret under the token at fault, e.g.,

  main.zig:2:12: error: invalid token: '}'

Parsing stops at the first error in each file.
`,
	New: New,
}

type Command struct {
	cli.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{}
	c.SetFlags(f)
	return c, nil
}

func (c *Command) Run(args []string) error {
	_, cleanup, err := c.Init()
	if err != nil {
		return err
	}
	defer cleanup()
	return charm.NoRun(args)
}
