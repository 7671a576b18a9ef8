package actions

import (
	"encoding/json"
	"fmt"

	"github.com/strata-tools/cli/internal/dispatchers"
)

// version is overridden at build time via
// -ldflags "-X github.com/strata-tools/cli/internal/actions.version=...".
var version = "0.4.0-dev"

// ShowVersion prints the tool version in the requested output format.
func ShowVersion(args []string, cctx *dispatchers.Context) error {
	return showVersion(args, cctx, defaultDeps())
}

func showVersion(_ []string, cctx *dispatchers.Context, deps actionDeps) error {
	if cctx.Format == dispatchers.FormatJSON {
		return json.NewEncoder(cctx.Stdout).Encode(map[string]string{
			"version": deps.version(),
		})
	}
	_, err := fmt.Fprintf(cctx.Stdout, "strata version %s\n", deps.version())
	return err
}
