package actions

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/strata-tools/cli/internal/dispatchers"
	"github.com/strata-tools/cli/internal/store"
)

// sendStream is the wire format of send/receive: a snapshot plus the
// volume it belongs to, enough to recreate both on the receiving side.
type sendStream struct {
	FormatVersion int            `json:"format_version"`
	Volume        store.Volume   `json:"volume"`
	Snapshot      store.Snapshot `json:"snapshot"`
}

const sendFormatVersion = 1

// Send exports a snapshot as a JSON stream on stdout:
// strata send <snapshot>.
func Send(args []string, cctx *dispatchers.Context) error {
	return send(args, cctx, defaultDeps())
}

func send(args []string, cctx *dispatchers.Context, deps actionDeps) error {
	if len(args) < 1 {
		return errors.New("send requires a <snapshot> argument")
	}

	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	snap, err := s.GetSnapshot(args[0])
	if err != nil {
		return err
	}

	volumes, err := s.ListVolumes()
	if err != nil {
		return err
	}
	var vol store.Volume
	found := false
	for _, v := range volumes {
		if v.ID == snap.VolumeID {
			vol = v
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("snapshot %q references a missing volume", snap.Name)
	}

	enc := json.NewEncoder(cctx.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sendStream{
		FormatVersion: sendFormatVersion,
		Volume:        vol,
		Snapshot:      snap,
	})
}

// Receive imports a snapshot stream from stdin, creating the volume when
// it is not registered yet.
func Receive(args []string, cctx *dispatchers.Context) error {
	return receive(args, cctx, defaultDeps())
}

func receive(_ []string, cctx *dispatchers.Context, deps actionDeps) error {
	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	var stream sendStream
	if err := json.NewDecoder(deps.stdin).Decode(&stream); err != nil {
		return fmt.Errorf("decode stream: %w", err)
	}
	if stream.FormatVersion != sendFormatVersion {
		return fmt.Errorf("unsupported stream format version %d", stream.FormatVersion)
	}

	vol, err := s.GetVolume(stream.Volume.Name)
	if errors.Is(err, store.ErrNotFound) {
		if err := s.CreateVolume(stream.Volume); err != nil {
			return err
		}
		vol = stream.Volume
	} else if err != nil {
		return err
	}

	// Rebind to the local volume identity: the receiving registry may
	// already know this volume under a different ID.
	stream.Snapshot.VolumeID = vol.ID
	if err := s.CreateSnapshot(stream.Snapshot); err != nil {
		return err
	}

	fmt.Fprintf(cctx.Stdout, "Received snapshot '%s' into volume '%s'\n",
		stream.Snapshot.Name, stream.Volume.Name)
	return nil
}
