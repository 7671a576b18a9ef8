package actions

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/strata-tools/cli/internal/dispatchers"
	"github.com/strata-tools/cli/internal/store"
)

// SnapshotCreate records a snapshot:
// strata snapshot create <volume> <name> [-r].
func SnapshotCreate(args []string, cctx *dispatchers.Context) error {
	return snapshotCreate(args, cctx, defaultDeps())
}

func snapshotCreate(args []string, cctx *dispatchers.Context, deps actionDeps) error {
	var positional []string
	readOnly := false
	for _, arg := range args {
		if arg == "-r" {
			readOnly = true
			continue
		}
		positional = append(positional, arg)
	}
	if len(positional) < 2 {
		return errors.New("snapshot create requires <volume> and <name> arguments")
	}

	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	v, err := s.GetVolume(positional[0])
	if err != nil {
		return err
	}

	snap := store.Snapshot{
		ID:        deps.newID(),
		VolumeID:  v.ID,
		Name:      positional[1],
		ReadOnly:  readOnly,
		CreatedAt: deps.now(),
	}
	if err := s.CreateSnapshot(snap); err != nil {
		return err
	}

	fmt.Fprintf(cctx.Stdout, "Created snapshot '%s' of volume '%s'\n", snap.Name, v.Name)
	return nil
}

// SnapshotDelete removes a snapshot by name.
func SnapshotDelete(args []string, cctx *dispatchers.Context) error {
	return snapshotDelete(args, cctx, defaultDeps())
}

func snapshotDelete(args []string, cctx *dispatchers.Context, deps actionDeps) error {
	if len(args) < 1 {
		return errors.New("snapshot delete requires a <name> argument")
	}

	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteSnapshot(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cctx.Stdout, "Deleted snapshot '%s'\n", args[0])
	return nil
}

// SnapshotList prints snapshots, optionally restricted to one volume,
// json-capable.
func SnapshotList(args []string, cctx *dispatchers.Context) error {
	return snapshotList(args, cctx, defaultDeps())
}

func snapshotList(args []string, cctx *dispatchers.Context, deps actionDeps) error {
	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	volumeID := ""
	if len(args) > 0 {
		v, err := s.GetVolume(args[0])
		if err != nil {
			return err
		}
		volumeID = v.ID
	}

	snapshots, err := s.ListSnapshots(volumeID)
	if err != nil {
		return err
	}

	if cctx.Format == dispatchers.FormatJSON {
		enc := json.NewEncoder(cctx.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshots)
	}

	for _, snap := range snapshots {
		flag := " "
		if snap.ReadOnly {
			flag = "r"
		}
		fmt.Fprintf(cctx.Stdout, "%s %-20s %s\n", flag, snap.Name, snap.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
