// Package dispatchers routes a token vector through a tree of named
// command groups: exact and unique-prefix matching per level, global
// option extraction ahead of routing, and output-format negotiation
// before a leaf executes.
//
// Fatal conditions are never resolved here; they travel up as
// *usage.Error values and the entry point translates them into the
// process exit code.
package dispatchers

import (
	"fmt"

	"github.com/strata-tools/cli/internal/usage"
)

const defaultSuggestions = 3

// Dispatch routes args through the group tree rooted at grp. args must
// already be stripped of the program name and of leading global options.
func Dispatch(grp *Group, cctx *Context, args []string) error {
	return dispatch(grp, cctx, "strata", args)
}

func dispatch(grp *Group, cctx *Context, prog string, args []string) error {
	if len(args) == 0 {
		// A group with no subcommand: show its usage and fail.
		RenderGroupHelp(cctx.Stderr, grp, prog, false)
		return &usage.Error{Kind: usage.ErrGroupUsage, Quiet: true, Message: "missing subcommand"}
	}

	cmd, err := resolveToken(grp, args[0])
	if err != nil {
		return err
	}

	if intercepted, err := interceptNextLevel(cmd, cctx, prog, args); intercepted {
		return err
	}

	rest := args[1:]
	prog = prog + " " + cmd.Token

	if cmd.IsGroup() {
		return dispatch(cmd.Next, cctx, prog, rest)
	}
	return cmd.Run(rest, cctx)
}

// resolveToken wraps the matcher's sentinel results into user-facing
// diagnostics carrying the group's valid tokens.
func resolveToken(grp *Group, token string) (*Command, error) {
	cmd, err := grp.Resolve(token)
	switch err {
	case nil:
		return cmd, nil
	case ErrAmbiguous:
		return nil, usage.AmbiguousToken(token, grp.Candidates(token))
	default:
		return nil, usage.UnknownToken(token, grp.Names(), SuggestTokens(token, grp, defaultSuggestions)...)
	}
}

// interceptNextLevel handles the help and format gates that apply before
// descending past cmd. With at least one trailing argument: a leaf that
// cannot produce the requested format is diagnosed and its usage shown
// (status 1); a literal --help as the next argument renders help for the
// nested group, or usage for the leaf, with status 0.
func interceptNextLevel(cmd *Command, cctx *Context, prog string, args []string) (bool, error) {
	if len(args) < 2 {
		return false, nil
	}

	var ferr *usage.Error
	if !cmd.IsGroup() && !cctx.Supports(cmd) {
		fmt.Fprintf(cctx.Stderr, "error: %s output is unsupported for this command.\n\n", cctx.Format)
		ferr = usage.UnsupportedFormat(cctx.Format.String())
		ferr.Quiet = true
	}

	if args[1] != "--help" && ferr == nil {
		return false, nil
	}

	out := cctx.Stdout
	if ferr != nil {
		out = cctx.Stderr
	}

	if cmd.IsGroup() {
		full := false
		for _, arg := range args[2:] {
			if arg == "--full" {
				full = true
			}
		}
		RenderGroupHelp(out, cmd.Next, prog+" "+cmd.Token, full)
	} else {
		RenderCommandUsage(out, cmd)
	}

	if ferr != nil {
		return true, ferr
	}
	return true, nil
}
