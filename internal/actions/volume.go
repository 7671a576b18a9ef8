package actions

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/strata-tools/cli/internal/dispatchers"
	"github.com/strata-tools/cli/internal/store"
)

// VolumeCreate registers a new volume: strata volume create <name> [<path>].
func VolumeCreate(args []string, cctx *dispatchers.Context) error {
	return volumeCreate(args, cctx, defaultDeps())
}

func volumeCreate(args []string, cctx *dispatchers.Context, deps actionDeps) error {
	if len(args) < 1 {
		return errors.New("volume create requires a <name> argument")
	}
	name := args[0]

	path := name
	if len(args) > 1 {
		path = args[1]
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	v := store.Volume{
		ID:        deps.newID(),
		Name:      name,
		Path:      abs,
		CreatedAt: deps.now(),
	}
	if err := s.CreateVolume(v); err != nil {
		return err
	}

	fmt.Fprintf(cctx.Stdout, "Created volume '%s' at %s\n", v.Name, v.Path)
	return nil
}

// VolumeDelete removes a volume without snapshots.
func VolumeDelete(args []string, cctx *dispatchers.Context) error {
	return volumeDelete(args, cctx, defaultDeps())
}

func volumeDelete(args []string, cctx *dispatchers.Context, deps actionDeps) error {
	if len(args) < 1 {
		return errors.New("volume delete requires a <name> argument")
	}

	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteVolume(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cctx.Stdout, "Deleted volume '%s'\n", args[0])
	return nil
}

// VolumeList prints all registered volumes, json-capable.
func VolumeList(args []string, cctx *dispatchers.Context) error {
	return volumeList(args, cctx, defaultDeps())
}

func volumeList(_ []string, cctx *dispatchers.Context, deps actionDeps) error {
	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	volumes, err := s.ListVolumes()
	if err != nil {
		return err
	}

	if cctx.Format == dispatchers.FormatJSON {
		enc := json.NewEncoder(cctx.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(volumes)
	}

	for _, v := range volumes {
		fmt.Fprintf(cctx.Stdout, "%-20s %s\n", v.Name, v.Path)
	}
	return nil
}

// VolumeShow prints one volume with its snapshots and properties,
// json-capable.
func VolumeShow(args []string, cctx *dispatchers.Context) error {
	return volumeShow(args, cctx, defaultDeps())
}

func volumeShow(args []string, cctx *dispatchers.Context, deps actionDeps) error {
	if len(args) < 1 {
		return errors.New("volume show requires a <name> argument")
	}

	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	v, err := s.GetVolume(args[0])
	if err != nil {
		return err
	}
	snapshots, err := s.ListSnapshots(v.ID)
	if err != nil {
		return err
	}
	properties, err := s.ListProperties(v.ID)
	if err != nil {
		return err
	}

	if cctx.Format == dispatchers.FormatJSON {
		enc := json.NewEncoder(cctx.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			store.Volume
			Snapshots  []store.Snapshot `json:"snapshots"`
			Properties []store.Property `json:"properties"`
		}{v, snapshots, properties})
	}

	fmt.Fprintf(cctx.Stdout, "%s\n", v.Name)
	fmt.Fprintf(cctx.Stdout, "\tUUID:      %s\n", v.ID)
	fmt.Fprintf(cctx.Stdout, "\tPath:      %s\n", v.Path)
	fmt.Fprintf(cctx.Stdout, "\tCreated:   %s\n", v.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(cctx.Stdout, "\tSnapshots: %d\n", len(snapshots))
	for _, snap := range snapshots {
		fmt.Fprintf(cctx.Stdout, "\t\t%s\n", snap.Name)
	}
	for _, p := range properties {
		fmt.Fprintf(cctx.Stdout, "\t%s=%s\n", p.Key, p.Value)
	}
	return nil
}
