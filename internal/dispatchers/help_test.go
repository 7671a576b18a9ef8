package dispatchers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func helpTestTree() *Group {
	create := NewLeaf("create", "Register a new volume",
		[]string{"tool volume create <name>"}, FormatMaskAll, nil)
	volume := &Group{
		Usage:    "tool volume <command>",
		Commands: []*Command{create},
	}
	return &Group{
		Usage: "tool <group> <command> [<args>]",
		Info:  "Use --help for more information.",
		Commands: []*Command{
			NewGroupCommand("volume", "Manage volumes", volume),
			NewLeaf("version", "Display version",
				[]string{"tool version"}, FormatMaskAll, nil),
		},
	}
}

func TestRenderGroupHelp(t *testing.T) {
	var buf bytes.Buffer
	RenderGroupHelp(&buf, helpTestTree(), "tool", false)

	out := buf.String()
	require.Contains(t, out, "usage: tool <group> <command> [<args>]")
	require.Contains(t, out, "Use --help for more information.")
	require.Contains(t, out, "volume")
	require.Contains(t, out, "Manage volumes")
	require.Contains(t, out, "version")
	// Compact listing does not expand nested groups.
	require.NotContains(t, out, "tool volume create")
}

func TestRenderGroupHelpFull(t *testing.T) {
	var buf bytes.Buffer
	RenderGroupHelp(&buf, helpTestTree(), "tool", true)

	out := buf.String()
	require.Contains(t, out, "tool volume")
	require.Contains(t, out, "tool volume create <name>")
	require.Contains(t, out, "tool version")
}

func TestRenderGroupHelpShort(t *testing.T) {
	var buf bytes.Buffer
	RenderGroupHelpShort(&buf, helpTestTree(), "tool")

	out := buf.String()
	require.Contains(t, out, "usage: tool <group> <command> [<args>]")
	require.Contains(t, out, "volume")
	require.Contains(t, out, "version")
	require.NotContains(t, out, "Manage volumes")
}

func TestRenderCommandUsage(t *testing.T) {
	cmd := NewLeaf("create", "Register a new volume",
		[]string{
			"tool volume create <name> [<path>]",
			"<path> defaults to the volume name",
		}, FormatMaskAll, nil)

	var buf bytes.Buffer
	RenderCommandUsage(&buf, cmd)

	out := buf.String()
	require.Contains(t, out, "usage: tool volume create <name> [<path>]")
	require.Contains(t, out, "Register a new volume")
	require.Contains(t, out, "<path> defaults to the volume name")
}

func TestPrintFormats(t *testing.T) {
	var buf bytes.Buffer
	PrintFormats(&buf)

	require.Contains(t, buf.String(), `Options for --format are: "text", "json"`)
}
