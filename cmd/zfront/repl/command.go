package repl

import (
	"errors"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/brimdata/zfront/cli/outputflags"
	"github.com/brimdata/zfront/cmd/zfront/root"
	"github.com/brimdata/zfront/compiler"
	"github.com/brimdata/zfront/pkg/charm"
	"github.com/peterh/liner"
	"go.uber.org/zap"
)

var spec = &charm.Spec{
	Name:  "repl",
	Usage: "repl [ options ]",
	Short: "parse declarations interactively",
	Long: `
The repl command reads source text a line at a time and prints the syntax
tree of each line, or the diagnostic if the line does not parse.  A line
ending in a backslash is continued on the next line.

Input history is saved to the file given by -history.  Type control-D to
exit.
`,
	New: New,
}

func init() {
	root.Zfront.Add(spec)
}

// SourceName is the file name given to each line in diagnostics.
const SourceName = "repl"

const cacheSize = 128

type Command struct {
	*root.Command
	outputFlags outputflags.Flags
	history     string
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	c.outputFlags.SetFlags(f)
	f.StringVar(&c.history, "history", "", "file in which to keep input history")
	return c, nil
}

func (c *Command) Run(args []string) error {
	_, cleanup, err := c.Init(&c.outputFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	if len(args) != 0 {
		return charm.NeedHelp
	}
	w, err := c.outputFlags.Open()
	if err != nil {
		return err
	}
	defer w.Close()
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	c.loadHistory(line)
	defer c.saveHistory(line)
	comp := compiler.NewCompiler(c.Logger(), 1)
	if err := comp.EnableCache(cacheSize); err != nil {
		return err
	}
	for {
		src, err := readSource(line)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		line.AppendHistory(src)
		tree, err := comp.ParseSource(SourceName, []byte(src))
		if err != nil {
			if err := c.outputFlags.WriteError(os.Stderr, err); err != nil {
				return err
			}
			continue
		}
		if err := c.outputFlags.WriteTree(w, tree); err != nil {
			return err
		}
	}
}

// readSource reads one entry, joining lines that end in a backslash.
func readSource(line *liner.State) (string, error) {
	var b strings.Builder
	prompt := "zfront> "
	for {
		s, err := line.Prompt(prompt)
		if err != nil {
			return "", err
		}
		if cont, ok := strings.CutSuffix(s, `\`); ok {
			b.WriteString(cont)
			b.WriteByte('\n')
			prompt = "... "
			continue
		}
		b.WriteString(s)
		return b.String(), nil
	}
}

func (c *Command) loadHistory(line *liner.State) {
	if c.history == "" {
		return
	}
	f, err := os.Open(c.history)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.Logger().Warn("reading history", zap.Error(err))
		}
		return
	}
	defer f.Close()
	if _, err := line.ReadHistory(f); err != nil {
		c.Logger().Warn("reading history", zap.Error(err))
	}
}

func (c *Command) saveHistory(line *liner.State) {
	if c.history == "" {
		return
	}
	f, err := os.Create(c.history)
	if err != nil {
		c.Logger().Warn("writing history", zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		c.Logger().Warn("writing history", zap.Error(err))
	}
}
