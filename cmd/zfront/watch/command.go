package watch

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"

	"github.com/brimdata/zfront/cli/outputflags"
	"github.com/brimdata/zfront/cmd/zfront/root"
	"github.com/brimdata/zfront/compiler"
	"github.com/brimdata/zfront/pkg/charm"
	"github.com/fsnotify/fsnotify"
	"github.com/gosuri/uilive"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var spec = &charm.Spec{
	Name:  "watch",
	Usage: "watch [ options ] file",
	Short: "re-parse a source file whenever it changes",
	Long: `
The watch command parses a file, prints its syntax tree or diagnostic, and
then waits for the file to change, printing the result of each new parse.
The directory holding the file is watched so that editors which replace
a file on save are followed.  Type control-C to exit.

When standard output is a terminal and -o is not given, each result
replaces the previous one on the screen.  Use -append to keep them all.
`,
	New: New,
}

func init() {
	root.Zfront.Add(spec)
}

type Command struct {
	*root.Command
	outputFlags outputflags.Flags
	noRedraw    bool
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	c.outputFlags.SetFlags(f)
	f.BoolVar(&c.noRedraw, "append", false, "append each result instead of redrawing")
	return c, nil
}

func (c *Command) Run(args []string) error {
	ctx, cleanup, err := c.Init(&c.outputFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	if len(args) != 1 {
		return charm.NeedHelp
	}
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	w, err := c.outputFlags.Open()
	if err != nil {
		return err
	}
	defer w.Close()
	comp := compiler.NewCompiler(c.Logger(), 1)
	if err := comp.EnableCache(16); err != nil {
		return err
	}
	d := newDisplay(w, !c.noRedraw && c.outputFlags.FileName() == "" && term.IsTerminal(int(os.Stdout.Fd())))
	return c.loop(ctx, watcher, comp, path, d)
}

func (c *Command) loop(ctx context.Context, watcher *fsnotify.Watcher, comp *compiler.Compiler, path string, d *display) error {
	if err := c.reparse(comp, path, d); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isChange(event, path) {
				continue
			}
			c.Logger().Info("file changed", zap.String("file", event.Name), zap.Stringer("op", event.Op))
			if err := c.reparse(comp, path, d); err != nil {
				return err
			}
		}
	}
}

func isChange(event fsnotify.Event, path string) bool {
	return filepath.Clean(event.Name) == path && (event.Has(fsnotify.Write) || event.Has(fsnotify.Create))
}

func (c *Command) reparse(comp *compiler.Compiler, path string, d *display) error {
	var b bytes.Buffer
	tree, err := comp.ParseFile(path)
	switch {
	case os.IsNotExist(err):
		// The file may be between removal and rename by an editor.
		return nil
	case err != nil:
		if err := c.outputFlags.WriteError(&b, err); err != nil {
			return err
		}
	default:
		if err := c.outputFlags.WriteTree(&b, tree); err != nil {
			return err
		}
	}
	return d.show(b.Bytes())
}

// display writes each result either after the last or, when live,
// in place of it.
type display struct {
	w    io.Writer
	live *uilive.Writer
}

func newDisplay(w io.Writer, live bool) *display {
	d := &display{w: w}
	if live {
		d.live = uilive.New()
		d.live.Out = w
	}
	return d
}

func (d *display) show(b []byte) error {
	if d.live == nil {
		if _, err := d.w.Write(b); err != nil {
			return err
		}
		_, err := io.WriteString(d.w, "\n")
		return err
	}
	if _, err := d.live.Write(b); err != nil {
		return err
	}
	return d.live.Flush()
}
