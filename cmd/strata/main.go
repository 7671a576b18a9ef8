package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/strata-tools/cli/internal/actions"
	"github.com/strata-tools/cli/internal/cli"
	"github.com/strata-tools/cli/internal/config"
	"github.com/strata-tools/cli/internal/dispatchers"
	"github.com/strata-tools/cli/internal/log"
	"github.com/strata-tools/cli/internal/ui"
	"github.com/strata-tools/cli/internal/ui/style"
	"github.com/strata-tools/cli/internal/usage"
)

// legacyCheckAlias routes invocations of the old standalone binary name
// straight to the check command, bypassing global option parsing.
const legacyCheckAlias = "stratack"

func main() {
	os.Exit(run(os.Args))
}

// run is the only place a dispatch error becomes a process exit code.
func run(argv []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "strata: %v\n", err)
		return 1
	}

	if err := log.Init(cfg.Log.Path, log.ParseLevel(cfg.Log.Level)); err != nil {
		fmt.Fprintf(os.Stderr, "strata: init logging: %v\n", err)
	}
	defer func() { _ = log.Close() }()

	actions.SetDatabasePath(cfg.Database.Path)

	enableColor := cfg.UI.Color && term.IsTerminal(int(os.Stdout.Fd()))
	style.Init(enableColor)
	if cfg.UI.Pager != "" {
		ui.SetPager(cfg.UI.Pager)
	}

	cctx := dispatchers.NewContext()
	if f, ok := dispatchers.ParseFormat(cfg.Output.Format); ok {
		cctx.Format = f
	}

	root := cli.BuildTree()
	args := argv[1:]

	if filepath.Base(argv[0]) == legacyCheckAlias {
		args = append([]string{"check"}, args...)
	} else {
		shift, err := dispatchers.ParseGlobals(cctx, args)
		if err != nil {
			return exitCode(err, root)
		}
		if dispatchers.InterceptSpecialGlobals(root, cctx, shift, args) {
			return 0
		}
		args = args[shift:]
		if len(args) == 0 {
			dispatchers.RenderGroupHelpShort(os.Stderr, root, "strata")
			return 1
		}
	}

	log.Debug("dispatching: %v (format=%s)", args, cctx.Format)
	return exitCode(dispatchers.Dispatch(root, cctx, args), root)
}

func exitCode(err error, root *dispatchers.Group) int {
	if err == nil {
		return 0
	}

	var ue *usage.Error
	if errors.As(err, &ue) {
		if !ue.Quiet {
			fmt.Fprintln(os.Stderr, ue.Error())
		}
		if ue.Kind == usage.ErrInvalidFormatName {
			fmt.Fprintln(os.Stderr)
			dispatchers.RenderGroupHelp(os.Stderr, root, "strata", false)
			dispatchers.PrintFormats(os.Stderr)
		}
		log.Warn("dispatch failed: %v (exit %d)", ue.Message, ue.GetExitCode())
		return ue.GetExitCode()
	}

	fmt.Fprintf(os.Stderr, "strata: %v\n", err)
	log.Error("command failed: %v", err)
	return 1
}
