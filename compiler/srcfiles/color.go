package srcfiles

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	bold  = "\x1b[1m"
	red   = "\x1b[31;1m"
	green = "\x1b[32;1m"
	reset = "\x1b[0m"
)

// ColorMode selects whether rendered diagnostics use ANSI color.  It
// implements flag.Value.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func (c ColorMode) String() string {
	switch c {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	}
	return "auto"
}

func (c *ColorMode) Set(s string) error {
	switch s {
	case "auto", "":
		*c = ColorAuto
	case "always", "on":
		*c = ColorAlways
	case "never", "off":
		*c = ColorNever
	default:
		return fmt.Errorf("unknown color mode %q (must be auto, always, or never)", s)
	}
	return nil
}

// Enabled reports whether output written to w should be colorized.
func (c ColorMode) Enabled(w io.Writer) bool {
	switch c {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
