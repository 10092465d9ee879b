package charm

import (
	"errors"
	"flag"
	"io"
	"strings"
)

type instance struct {
	spec    *Spec
	command Command
	flags   *flag.FlagSet
}

type path []*instance

func (p path) run(args []string) error {
	if len(p) == 0 {
		return ErrNoRun
	}
	return p[len(p)-1].command.Run(args)
}

func newFlagSet(spec *Spec, showHidden *bool) *flag.FlagSet {
	fs := flag.NewFlagSet(spec.Name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.BoolVar(showHidden, "hidden", false, "show hidden commands and flags in help")
	return fs
}

// parse instantiates the command for spec and each subcommand named in
// args, parsing the flags of each along the way.  When leaf is true, the
// leaf flags of an internal leaf command are registered and naming a
// subcommand of that command returns ErrNotLeaf.
func parse(spec *Spec, args []string, parent Command, leaf bool) (path, []string, bool, error) {
	var showHidden bool
	fs := newFlagSet(spec, &showHidden)
	cmd, err := spec.New(parent, fs)
	if err != nil {
		return nil, nil, false, err
	}
	internalLeaf, isLeaf := cmd.(InternalLeaf)
	if leaf && spec.InternalLeaf && isLeaf {
		internalLeaf.SetLeafFlags(fs)
	}
	p := path{{spec: spec, command: cmd, flags: fs}}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return p, nil, showHidden, NeedHelp
		}
		return p, nil, showHidden, err
	}
	rest := fs.Args()
	if len(rest) > 0 {
		if child := spec.lookupSub(rest[0]); child != nil {
			if leaf && spec.InternalLeaf && isLeaf {
				return nil, nil, false, ErrNotLeaf
			}
			sub, rest, hidden, err := parse(child, rest[1:], cmd, leaf)
			return append(p, sub...), rest, showHidden || hidden, err
		}
	}
	return p, rest, showHidden, nil
}

// parseHelp instantiates the commands named in args for display of help.
// Flags in args are ignored.
func parseHelp(spec *Spec, args []string) (path, error) {
	var p path
	var parent Command
	for {
		var showHidden bool
		fs := newFlagSet(spec, &showHidden)
		cmd, err := spec.New(parent, fs)
		if err != nil {
			return nil, err
		}
		if l, ok := cmd.(InternalLeaf); ok && spec.InternalLeaf {
			l.SetLeafFlags(fs)
		}
		p = append(p, &instance{spec: spec, command: cmd, flags: fs})
		child, rest := nextSub(spec, args)
		if child == nil {
			return p, nil
		}
		spec, args, parent = child, rest, cmd
	}
}

func nextSub(spec *Spec, args []string) (*Spec, []string) {
	for k, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if child := spec.lookupSub(arg); child != nil {
			return child, args[k+1:]
		}
		return nil, nil
	}
	return nil, nil
}
