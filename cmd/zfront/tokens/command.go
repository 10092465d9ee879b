package tokens

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/brimdata/zfront/cli/outputflags"
	"github.com/brimdata/zfront/cmd/zfront/root"
	"github.com/brimdata/zfront/compiler/srcfiles"
	"github.com/brimdata/zfront/compiler/token"
	"github.com/brimdata/zfront/compiler/tokenizer"
	"github.com/brimdata/zfront/pkg/charm"
	"go.uber.org/zap"
)

var spec = &charm.Spec{
	Name:  "tokens",
	Usage: "tokens [ options ] file",
	Short: "print the tokens of a source file",
	Long: `
The tokens command tokenizes a file and prints one token per line with
its line, column, kind, and source text.  The final token is always EOF.
`,
	New: New,
}

func init() {
	root.Zfront.Add(spec)
}

type Command struct {
	*root.Command
	outputFlags outputflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	c.outputFlags.SetColorFlags(f)
	return c, nil
}

func (c *Command) Run(args []string) error {
	_, cleanup, err := c.Init()
	if err != nil {
		return err
	}
	defer cleanup()
	if len(args) != 1 {
		return charm.NeedHelp
	}
	file, err := srcfiles.Load(args[0])
	if err != nil {
		return err
	}
	toks, err := tokenizer.Tokenize(file)
	if err != nil {
		if werr := c.outputFlags.WriteError(os.Stderr, err); werr != nil {
			return werr
		}
		return root.ErrReported
	}
	c.Logger().Debug("tokenized", zap.String("file", file.Name), zap.Int("tokens", len(toks)))
	w := bufio.NewWriter(os.Stdout)
	for _, tok := range toks {
		writeToken(w, file, tok)
	}
	return w.Flush()
}

func writeToken(w *bufio.Writer, file *srcfiles.File, tok token.Token) {
	fmt.Fprintf(w, "%d:%d\t%s", tok.Line, tok.Column, tok.ID)
	if tok.ID != token.EOF {
		fmt.Fprintf(w, "\t%s", tok.Text(file.Text))
	}
	w.WriteByte('\n')
}
