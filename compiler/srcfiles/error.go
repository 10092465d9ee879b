package srcfiles

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/width"
)

// Error is a diagnostic positioned in a source file.  Kind is a sentinel
// error identifying the class of problem and is returned by Unwrap so
// callers can test it with errors.Is.
type Error struct {
	Kind error
	Msg  string
	// Hint is an optional suggestion shown below the source excerpt.
	Hint string
	Pos  Position
	// End is the position of the last byte of the offending text or
	// invalid if only a point is known.
	End  Position
	file *File
}

// NewError returns an Error at the given offsets of f.  end may be -1.
func (f *File) NewError(kind error, msg string, pos, end int) *Error {
	return &Error{
		Kind: kind,
		Msg:  msg,
		Pos:  f.Position(pos),
		End:  f.Position(end),
		file: f,
	}
}

func (e *Error) File() *File {
	return e.file
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func (e *Error) Error() string {
	var name string
	if e.file != nil {
		name = e.file.Name
	}
	return fmt.Sprintf("%s:%d:%d: error: %s", name, e.Pos.Line, e.Pos.Column, e.Msg)
}

// Render writes the diagnostic line followed by the offending source line
// and a marker under the error position.
func (e *Error) Render(w io.Writer, color bool) error {
	var b strings.Builder
	var name string
	if e.file != nil {
		name = e.file.Name
	}
	if color {
		fmt.Fprintf(&b, "%s%s:%d:%d: %serror:%s %s%s\n", bold, name, e.Pos.Line, e.Pos.Column, red, reset+bold, e.Msg, reset)
	} else {
		fmt.Fprintf(&b, "%s\n", e.Error())
	}
	if e.file != nil && e.Pos.IsValid() {
		line := e.file.Line(e.Pos.Line)
		b.WriteString(line)
		b.WriteByte('\n')
		if color {
			b.WriteString(green)
		}
		if e.End.IsValid() && e.End.Line == e.Pos.Line && e.End.Column > e.Pos.Column {
			formatSpanError(&b, line, e.Pos, e.End)
		} else {
			formatPointError(&b, line, e.Pos)
		}
		if color {
			b.WriteString(reset)
		}
		b.WriteByte('\n')
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, "hint: %s\n", e.Hint)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func formatSpanError(b *strings.Builder, line string, start, end Position) {
	indent(b, line, start.Column)
	b.WriteByte('^')
	b.WriteString(strings.Repeat("~", columns(line, start.Column, end.Column)-1))
}

func formatPointError(b *strings.Builder, line string, start Position) {
	indent(b, line, start.Column)
	b.WriteByte('^')
}

// indent writes whitespace that lines up with the byte column col of line.
// Tabs are copied so the marker aligns however the terminal expands them.
func indent(b *strings.Builder, line string, col int) {
	if col-1 > len(line) {
		col = len(line) + 1
	}
	for _, r := range line[:col-1] {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runeWidth(r)))
	}
}

// columns returns the display width of the bytes of line in the 1-based
// inclusive column range [from, to].
func columns(line string, from, to int) int {
	if to > len(line) {
		to = len(line)
	}
	if from > to {
		return 1
	}
	n := 0
	for _, r := range line[from-1 : to] {
		n += runeWidth(r)
	}
	return max(n, 1)
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
