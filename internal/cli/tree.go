// Package cli declares the static command table routed by the
// dispatchers package. Declaration order inside each group is
// significant: ambiguity diagnostics and help listings follow it.
package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/strata-tools/cli/internal/actions"
	"github.com/strata-tools/cli/internal/dispatchers"
	"github.com/strata-tools/cli/internal/ui"
)

const rootUsage = "strata [--help] [--version] [--format <format>] <group> [<group>...] <command> [<args>]"

const rootInfo = "Use --help as an argument for information on a specific group or command."

// BuildTree constructs the full command tree.
func BuildTree() *dispatchers.Group {
	root := &dispatchers.Group{
		Usage: rootUsage,
		Info:  rootInfo,
	}

	textJSON := dispatchers.MaskOf(dispatchers.FormatText, dispatchers.FormatJSON)
	textOnly := dispatchers.MaskOf(dispatchers.FormatText)

	volume := &dispatchers.Group{
		Usage: "strata volume <command> [<args>]",
		Commands: []*dispatchers.Command{
			dispatchers.NewLeaf("create", "Register a new volume",
				[]string{"strata volume create <name> [<path>]"},
				textOnly, actions.VolumeCreate),
			dispatchers.NewLeaf("delete", "Remove a volume without snapshots",
				[]string{"strata volume delete <name>"},
				textOnly, actions.VolumeDelete),
			dispatchers.NewLeaf("list", "List registered volumes",
				[]string{"strata volume list"},
				textJSON, actions.VolumeList),
			dispatchers.NewLeaf("show", "Show one volume with snapshots and properties",
				[]string{"strata volume show <name>"},
				textJSON, actions.VolumeShow),
		},
	}

	snapshot := &dispatchers.Group{
		Usage: "strata snapshot <command> [<args>]",
		Commands: []*dispatchers.Command{
			dispatchers.NewLeaf("create", "Record a snapshot of a volume",
				[]string{
					"strata snapshot create <volume> <name> [-r]",
					"-r    mark the snapshot read-only",
				},
				textOnly, actions.SnapshotCreate),
			dispatchers.NewLeaf("delete", "Remove a snapshot",
				[]string{"strata snapshot delete <name>"},
				textOnly, actions.SnapshotDelete),
			dispatchers.NewLeaf("list", "List snapshots",
				[]string{"strata snapshot list [<volume>]"},
				textJSON, actions.SnapshotList),
		},
	}

	quota := &dispatchers.Group{
		Usage: "strata quota <command>",
		Commands: []*dispatchers.Command{
			dispatchers.NewLeaf("enable", "Enable quota accounting",
				[]string{"strata quota enable"},
				textOnly, actions.QuotaEnable),
			dispatchers.NewLeaf("disable", "Disable quota accounting",
				[]string{"strata quota disable"},
				textOnly, actions.QuotaDisable),
			dispatchers.NewLeaf("status", "Show quota accounting state",
				[]string{"strata quota status"},
				textOnly, actions.QuotaStatus),
		},
	}

	qgroup := &dispatchers.Group{
		Usage: "strata qgroup <command> [<args>]",
		Commands: []*dispatchers.Command{
			dispatchers.NewLeaf("create", "Create a quota group",
				[]string{"strata qgroup create <name>"},
				textOnly, actions.QGroupCreate),
			dispatchers.NewLeaf("destroy", "Destroy a quota group",
				[]string{"strata qgroup destroy <name>"},
				textOnly, actions.QGroupDestroy),
			dispatchers.NewLeaf("show", "Show quota groups with limits and members",
				[]string{"strata qgroup show"},
				textJSON, actions.QGroupShow),
			dispatchers.NewLeaf("limit", "Set the referenced size limit of a quota group",
				[]string{"strata qgroup limit <size>|none <name>"},
				textOnly, actions.QGroupLimit),
			dispatchers.NewLeaf("assign", "Assign a volume to a quota group",
				[]string{"strata qgroup assign <qgroup> <volume>"},
				textOnly, actions.QGroupAssign),
		},
	}

	property := &dispatchers.Group{
		Usage: "strata property <command> [<args>]",
		Commands: []*dispatchers.Command{
			dispatchers.NewLeaf("get", "Read a property of a volume",
				[]string{"strata property get <volume> <key>"},
				textJSON, actions.PropertyGet),
			dispatchers.NewLeaf("set", "Write a property on a volume",
				[]string{"strata property set <volume> <key> <value>"},
				textOnly, actions.PropertySet),
			dispatchers.NewLeaf("list", "List all properties of a volume",
				[]string{"strata property list <volume>"},
				textJSON, actions.PropertyList),
		},
	}

	root.Commands = []*dispatchers.Command{
		dispatchers.NewGroupCommand("volume", "Manage volumes", volume),
		dispatchers.NewGroupCommand("snapshot", "Manage snapshots", snapshot),
		dispatchers.NewGroupCommand("quota", "Manage quota accounting", quota),
		dispatchers.NewGroupCommand("qgroup", "Manage quota groups", qgroup),
		dispatchers.NewGroupCommand("property", "Manage volume properties", property),
		dispatchers.NewLeaf("check", "Verify registry consistency",
			[]string{"strata check"},
			textOnly, actions.Check),
		dispatchers.NewLeaf("checksum", "Print a content hash of the registry",
			[]string{"strata checksum"},
			textJSON, actions.Checksum),
		dispatchers.NewLeaf("send", "Export a snapshot as a JSON stream",
			[]string{"strata send <snapshot>"},
			textJSON, actions.Send),
		dispatchers.NewLeaf("receive", "Import a snapshot stream from stdin",
			[]string{"strata receive"},
			textOnly, actions.Receive),
		dispatchers.NewLeaf("help", "Display help information",
			[]string{
				"strata help [--full]",
				"--full     display detailed help on every command",
			},
			textOnly, helpAction(root)),
		dispatchers.NewLeaf("version", "Display strata version",
			[]string{"strata version"},
			textJSON, actions.ShowVersion),
	}

	return root
}

// helpAction renders the root group help. The help leaf closes over the
// tree it is part of; the root pointer is stable by the time it runs.
func helpAction(root *dispatchers.Group) dispatchers.HandlerFunc {
	return func(args []string, cctx *dispatchers.Context) error {
		full := false
		for _, arg := range args {
			if arg == "--full" {
				full = true
			}
		}

		var buf bytes.Buffer
		dispatchers.RenderGroupHelp(&buf, root, "strata", full)

		// Long help goes through the pager on a real terminal; tests
		// redirect Stdout and get the plain text.
		if cctx.Stdout == io.Writer(os.Stdout) {
			ui.Page(buf.String())
			return nil
		}
		_, err := cctx.Stdout.Write(buf.Bytes())
		return err
	}
}
