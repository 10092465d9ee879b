package charm

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/kr/text"
)

func writeHelp(w io.Writer, p path, showHidden bool) {
	inst := p[len(p)-1]
	spec := inst.spec
	var names []string
	for _, i := range p {
		names = append(names, i.spec.Name)
	}
	fmt.Fprintf(w, "NAME\n    %s - %s\n\n", strings.Join(names, " "), spec.Short)
	fmt.Fprintf(w, "USAGE\n    %s\n\n", spec.Usage)
	if opts := options(inst, showHidden); opts != "" {
		fmt.Fprintf(w, "OPTIONS\n%s\n", opts)
	}
	if cmds := commands(spec, showHidden); cmds != "" {
		fmt.Fprintf(w, "COMMANDS\n%s\n", cmds)
	}
	if long := strings.TrimSpace(spec.Long); long != "" {
		fmt.Fprintf(w, "DESCRIPTION\n%s\n", text.Indent(long, "    "))
	}
}

func options(inst *instance, showHidden bool) string {
	hidden := splitList(inst.spec.HiddenFlags)
	redacted := splitList(inst.spec.RedactedFlags)
	var b strings.Builder
	inst.flags.VisitAll(func(f *flag.Flag) {
		if f.Name == "hidden" || (!showHidden && slices.Contains(hidden, f.Name)) {
			return
		}
		name, usage := flag.UnquoteUsage(f)
		fmt.Fprintf(&b, "    -%s", f.Name)
		if name != "" {
			fmt.Fprintf(&b, " %s", name)
		}
		fmt.Fprintf(&b, "\n        %s", usage)
		if f.DefValue != "" && f.DefValue != "false" && !slices.Contains(redacted, f.Name) {
			fmt.Fprintf(&b, " (default %q)", f.DefValue)
		}
		b.WriteByte('\n')
	})
	return b.String()
}

func commands(spec *Spec, showHidden bool) string {
	var b strings.Builder
	for _, child := range spec.children {
		if child.Hidden && !showHidden {
			continue
		}
		fmt.Fprintf(&b, "    %-12s %s\n", child.Name, child.Short)
	}
	return b.String()
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
