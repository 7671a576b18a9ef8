package dispatchers

import (
	"fmt"
	"io"
	"strings"

	"github.com/strata-tools/cli/internal/ui/style"
)

// RenderGroupHelp writes the usage of a group: its synopsis, info line and
// the command list with summaries. With full set, nested groups are
// expanded recursively and every leaf's full usage is shown.
func RenderGroupHelp(w io.Writer, grp *Group, prog string, full bool) {
	if grp.Usage != "" {
		fmt.Fprintf(w, "usage: %s\n", style.Info(grp.Usage))
	} else {
		fmt.Fprintf(w, "usage: %s <command> [<args>]\n", style.Info(prog))
	}
	if grp.Info != "" {
		fmt.Fprintf(w, "\n%s\n", grp.Info)
	}
	fmt.Fprintln(w)

	if full {
		renderFullTree(w, grp, prog, 0)
		return
	}

	for _, cmd := range grp.Commands {
		fmt.Fprintf(w, "    %s  %s\n", style.Info(fmt.Sprintf("%-12s", cmd.Token)), cmd.Summary)
	}
	fmt.Fprintf(w, "\nSee '%s <group> --help' or '%s <command> --help' for more information.\n", prog, prog)
}

// renderFullTree expands every command recursively, printing leaf usage
// lines and descending into nested groups.
func renderFullTree(w io.Writer, grp *Group, prog string, depth int) {
	indent := strings.Repeat("    ", depth)
	for _, cmd := range grp.Commands {
		if cmd.IsGroup() {
			fmt.Fprintf(w, "%s%s\n", indent, style.Header(prog+" "+cmd.Token))
			if cmd.Summary != "" {
				fmt.Fprintf(w, "%s    %s\n", indent, cmd.Summary)
			}
			renderFullTree(w, cmd.Next, prog+" "+cmd.Token, depth+1)
			continue
		}

		if len(cmd.Usage) > 0 {
			fmt.Fprintf(w, "%s%s\n", indent, style.Info(cmd.Usage[0]))
			for _, line := range cmd.Usage[1:] {
				fmt.Fprintf(w, "%s    %s\n", indent, line)
			}
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, style.Info(prog+" "+cmd.Token))
		}
		fmt.Fprintln(w)
	}
}

// RenderGroupHelpShort writes the compact form used when the tool is
// invoked without any command: synopsis plus bare token list.
func RenderGroupHelpShort(w io.Writer, grp *Group, prog string) {
	if grp.Usage != "" {
		fmt.Fprintf(w, "usage: %s\n", grp.Usage)
	} else {
		fmt.Fprintf(w, "usage: %s <command> [<args>]\n", prog)
	}
	if grp.Info != "" {
		fmt.Fprintf(w, "\n%s\n", grp.Info)
	}
	fmt.Fprintf(w, "\nCommand groups and commands:\n")
	for _, cmd := range grp.Commands {
		fmt.Fprintf(w, "    %s\n", cmd.Token)
	}
}

// RenderCommandUsage writes a leaf command's usage: the synopsis followed
// by its description lines.
func RenderCommandUsage(w io.Writer, cmd *Command) {
	if len(cmd.Usage) == 0 {
		fmt.Fprintf(w, "usage: %s\n", cmd.Token)
		return
	}
	fmt.Fprintf(w, "usage: %s\n", style.Info(cmd.Usage[0]))
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n    %s\n", cmd.Summary)
	}
	for _, line := range cmd.Usage[1:] {
		fmt.Fprintf(w, "    %s\n", line)
	}
}

// PrintFormats writes the list of valid --format values.
func PrintFormats(w io.Writer) {
	names := FormatNames()
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	fmt.Fprintf(w, "Options for --format are: %s\n", strings.Join(quoted, ", "))
	fmt.Fprintln(w, "Extended output formats may not be available for all commands.")
}
