package outputflags

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/brimdata/zfront/compiler/ast"
	"github.com/brimdata/zfront/compiler/astfmt"
	"github.com/brimdata/zfront/compiler/srcfiles"
)

// EnvColor names an environment variable that overrides the default of
// -color.
const EnvColor = "ZFRONT_COLOR"

type Flags struct {
	DefaultFormat string
	Format        string
	Color         srcfiles.ColorMode
	outputFile    string
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	f.SetFormatFlags(fs)
	f.SetColorFlags(fs)
	fs.StringVar(&f.outputFile, "o", "", "write output to file")
}

// SetColorFlags registers only -color for commands that write diagnostics
// but no trees.
func (f *Flags) SetColorFlags(fs *flag.FlagSet) {
	f.Color = srcfiles.ColorAuto
	if s := os.Getenv(EnvColor); s != "" {
		if err := f.Color.Set(s); err != nil {
			fmt.Fprintf(os.Stderr, "ignoring %s: %s\n", EnvColor, err)
		}
	}
	fs.Var(&f.Color, "color", "colorize diagnostics (auto, always, never)")
}

func (f *Flags) SetFormatFlags(fs *flag.FlagSet) {
	if f.DefaultFormat == "" {
		f.DefaultFormat = "dump"
	}
	fs.StringVar(&f.Format, "f", f.DefaultFormat, "format for syntax trees [dump,json,go]")
}

func (f *Flags) Init() error {
	if !astfmt.IsFormat(f.Format) {
		return fmt.Errorf("unknown output format %q", f.Format)
	}
	if f.outputFile == "-" {
		f.outputFile = ""
	}
	return nil
}

func (f *Flags) FileName() string {
	return f.outputFile
}

// Open returns the output destination, which is standard output unless -o
// was given.
func (f *Flags) Open() (io.WriteCloser, error) {
	if f.outputFile == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(f.outputFile)
}

// WriteTree writes root to w in the selected format.
func (f *Flags) WriteTree(w io.Writer, root *ast.Root) error {
	return astfmt.Write(w, f.Format, root)
}

// WriteError writes err to w.  Diagnostics are rendered with their source
// line and colorized according to -color.
func (f *Flags) WriteError(w io.Writer, err error) error {
	var serr *srcfiles.Error
	if errors.As(err, &serr) {
		return serr.Render(w, f.Color.Enabled(w))
	}
	_, werr := fmt.Fprintln(w, err)
	return werr
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
