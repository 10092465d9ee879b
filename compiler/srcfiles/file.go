// Package srcfiles tracks the identity and line structure of source files
// so that byte offsets can be mapped to line and column positions for
// error reporting.
package srcfiles

import (
	"fmt"
	"os"
	"sort"
)

// File holds the text of a source file along with the offset of the first
// byte of each line.
type File struct {
	Name  string
	Text  string
	lines []int
}

func NewFile(name string, src []byte) *File {
	lines := []int{0}
	for offset, b := range src {
		if b == '\n' && offset+1 < len(src) {
			lines = append(lines, offset+1)
		}
	}
	return &File{
		Name:  name,
		Text:  string(src),
		lines: lines,
	}
}

// Load reads the file at path.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewFile(path, b), nil
}

// LineOffsets returns the byte offset of the start of each line.
func (f *File) LineOffsets() []int {
	return f.lines
}

func (f *File) Position(pos int) Position {
	if pos < 0 {
		return Position{-1, -1, -1}
	}
	i := searchLine(f.lines, pos)
	return Position{
		Offset: pos,
		Line:   i + 1,
		Column: pos - f.lines[i] + 1,
	}
}

// Line returns the text of the 1-based line n without its newline.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lines) {
		return ""
	}
	start := f.lines[n-1]
	end := len(f.Text)
	if n < len(f.lines) {
		end = f.lines[n]
	}
	b := f.Text[start:end]
	if len(b) > 0 && b[len(b)-1] == '\n' {
		b = b[:len(b)-1]
	}
	if len(b) > 0 && b[len(b)-1] == '\r' {
		b = b[:len(b)-1]
	}
	return b
}

// GoString identifies f by name only.
func (f *File) GoString() string {
	return fmt.Sprintf("srcfiles.File(%q)", f.Name)
}

func (f *File) LineOfPos(pos int) string {
	return f.Line(searchLine(f.lines, pos) + 1)
}

func searchLine(lines []int, offset int) int {
	return sort.Search(len(lines), func(i int) bool { return lines[i] > offset }) - 1
}

type Position struct {
	Offset int `json:"offset"` // Byte offset in File.Text.
	Line   int `json:"line"`   // 1-based line number.
	Column int `json:"column"` // 1-based column number.
}

func (p Position) IsValid() bool { return p.Offset >= 0 }
