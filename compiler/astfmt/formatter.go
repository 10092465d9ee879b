package astfmt

import (
	"fmt"
	"strings"
)

type formatter struct {
	strings.Builder
	indent int
	tab    int
}

func (f *formatter) write(args ...any) {
	if len(args) == 1 {
		f.WriteString(args[0].(string))
	} else {
		f.WriteString(fmt.Sprintf(args[0].(string), args[1:]...))
	}
}

// line writes a line of text at the current indentation.
func (f *formatter) line(args ...any) {
	f.WriteString(strings.Repeat(" ", f.indent))
	f.write(args...)
	f.WriteByte('\n')
}

func (f *formatter) open() {
	f.indent += f.tab
}

func (f *formatter) close() {
	f.indent -= f.tab
}
