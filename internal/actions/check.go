package actions

import (
	"encoding/json"
	"fmt"

	"github.com/strata-tools/cli/internal/dispatchers"
	"github.com/strata-tools/cli/internal/usage"
)

// Check verifies the referential integrity of the registry. A consistent
// registry exits 0; any problem found exits 1 after listing them all.
func Check(args []string, cctx *dispatchers.Context) error {
	return check(args, cctx, defaultDeps())
}

func check(_ []string, cctx *dispatchers.Context, deps actionDeps) error {
	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	problems, err := s.Fsck()
	if err != nil {
		return err
	}
	volumes, snapshots, err := s.Counts()
	if err != nil {
		return err
	}

	for _, p := range problems {
		fmt.Fprintf(cctx.Stderr, "error: %s\n", p)
	}

	fmt.Fprintf(cctx.Stdout, "Checked %d volume(s), %d snapshot(s): %d problem(s) found\n",
		volumes, snapshots, len(problems))

	if len(problems) > 0 {
		return &usage.Error{
			Message:  fmt.Sprintf("registry check found %d problem(s)", len(problems)),
			Quiet:    true,
			ExitCode: 1,
		}
	}
	return nil
}

// Checksum prints a stable content hash of the registry, json-capable.
func Checksum(args []string, cctx *dispatchers.Context) error {
	return checksum(args, cctx, defaultDeps())
}

func checksum(_ []string, cctx *dispatchers.Context, deps actionDeps) error {
	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	sum, err := s.Checksum()
	if err != nil {
		return err
	}

	if cctx.Format == dispatchers.FormatJSON {
		return json.NewEncoder(cctx.Stdout).Encode(map[string]string{"checksum": sum})
	}
	fmt.Fprintf(cctx.Stdout, "%s\n", sum)
	return nil
}
