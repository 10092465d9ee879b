// Package charm is a minimalist CLI framework inspired by cobra and
// urfave/cli.  A tree of Specs describes the commands, and Exec parses
// the command line along that tree before running the command it selects.
package charm

import (
	"errors"
	"flag"
	"io"
	"os"
)

var (
	// NeedHelp may be returned by a command's Run to have Exec print help
	// for that command instead of an error.
	NeedHelp   = errors.New("help")
	ErrNoRun   = errors.New("no run method")
	ErrNotLeaf = errors.New("no internal leaf found")
)

// HelpOutput receives the help written by Exec.
var HelpOutput io.Writer = os.Stdout

// Constructor creates the command for a Spec.  parent is the command of
// the enclosing Spec, or nil at the root, and flags of the new command are
// registered on the given FlagSet.
type Constructor func(parent Command, f *flag.FlagSet) (Command, error)

type Command interface {
	Run([]string) error
}

// InternalLeaf is implemented by a command that runs on its own as well as
// having subcommands.  SetLeafFlags registers the flags it uses only when
// run on its own, which its subcommands do not accept.
type InternalLeaf interface {
	SetLeafFlags(*flag.FlagSet)
}

type Spec struct {
	Name  string
	Usage string
	Short string
	Long  string
	New   Constructor
	// Hidden omits the command from the COMMANDS list in help.
	Hidden bool
	// HiddenFlags is a comma-separated list of flags omitted from help.
	HiddenFlags string
	// RedactedFlags is a comma-separated list of flags whose defaults are
	// not shown in help.
	RedactedFlags string
	// InternalLeaf enables SetLeafFlags for this Spec.  Commands embed
	// their parents, so an InternalLeaf implementation may be promoted to
	// a child that must not use it.
	InternalLeaf bool
	children     []*Spec
	parent       *Spec
}

func (s *Spec) Add(child *Spec) {
	s.children = append(s.children, child)
	child.parent = s
}

func (s *Spec) lookupSub(name string) *Spec {
	for _, child := range s.children {
		if name == child.Name {
			return child
		}
	}
	return nil
}

// Exec parses args along the tree rooted at s and runs the selected
// command with the arguments that remain.  When help is asked for with -h
// or the command returns NeedHelp, help is written to HelpOutput and Exec
// returns nil.
func (s *Spec) Exec(args []string) error {
	p, rest, showHidden, err := s.parseArgs(args)
	if err == nil {
		err = p.run(rest)
	}
	if !errors.Is(err, NeedHelp) {
		return err
	}
	hp, err := parseHelp(s, args)
	if err != nil {
		return err
	}
	writeHelp(HelpOutput, hp, showHidden)
	return nil
}

// parseArgs first parses args with leaf flags enabled and, if they name a
// subcommand of an internal leaf, parses them again without.
func (s *Spec) parseArgs(args []string) (path, []string, bool, error) {
	p, rest, showHidden, err := parse(s, args, nil, true)
	if errors.Is(err, ErrNotLeaf) {
		return parse(s, args, nil, false)
	}
	return p, rest, showHidden, err
}

// NoRun is the Run of a command that only groups subcommands.
func NoRun(args []string) error {
	if len(args) == 0 {
		return NeedHelp
	}
	return ErrNoRun
}
