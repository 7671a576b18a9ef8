package dispatchers

import (
	"strings"

	"github.com/strata-tools/cli/internal/usage"
)

// ParseGlobals consumes the leading global options of argv, mutating the
// context as a side effect (--format). It returns the number of argv
// positions consumed; the caller shifts past them before routing.
//
// Only --help, --version, --full and --format <value> are recognized.
// Parsing stops at the first non-option token: once a bare token appears,
// everything after it belongs to the subcommand, even if it looks like an
// option. An unrecognized option is fatal with exit code 129.
//
// The parser keeps no state between calls, so repeated or nested
// invocations behave identically.
func ParseGlobals(cctx *Context, args []string) (int, error) {
	shift := 0
	for shift < len(args) {
		arg := args[shift]
		switch {
		case arg == "--":
			return shift + 1, nil
		case arg == "--help", arg == "--version", arg == "--full":
			shift++
		case arg == "--format":
			if shift+1 >= len(args) {
				return shift, usage.MissingOptionValue("--format")
			}
			if err := setFormat(cctx, args[shift+1]); err != nil {
				return shift, err
			}
			shift += 2
		case strings.HasPrefix(arg, "--format="):
			if err := setFormat(cctx, strings.TrimPrefix(arg, "--format=")); err != nil {
				return shift, err
			}
			shift++
		case len(arg) > 1 && arg[0] == '-':
			return shift, usage.UnrecognizedGlobalOption(arg)
		default:
			return shift, nil
		}
	}
	return shift, nil
}

// setFormat resolves a --format value case-insensitively. Repeated
// occurrences overwrite, so the last one wins. An invalid name resets the
// context to text before failing.
func setFormat(cctx *Context, name string) error {
	f, ok := ParseFormat(name)
	if !ok {
		cctx.Format = FormatText
		return usage.InvalidFormatName(name)
	}
	cctx.Format = f
	return nil
}

// InterceptSpecialGlobals acts on --help and --version when they appear
// among the first shift elements already identified as global options.
// --help is checked first and wins when both are present; with --full the
// complete command tree is rendered, otherwise the dedicated help leaf
// runs in its no-argument form. Either way the valid --format values are
// printed afterwards. Returns true when the invocation was fully handled
// and the process should exit 0.
func InterceptSpecialGlobals(root *Group, cctx *Context, shift int, args []string) bool {
	var hasHelp, hasFull, hasVersion bool
	for _, arg := range args[:shift] {
		switch arg {
		case "--help":
			hasHelp = true
		case "--full":
			hasFull = true
		case "--version":
			hasVersion = true
		}
	}

	if hasHelp {
		if helpCmd := root.Lookup("help"); helpCmd != nil && !hasFull {
			_ = helpCmd.Run(nil, cctx)
		} else {
			RenderGroupHelp(cctx.Stdout, root, "strata", hasFull)
		}
		PrintFormats(cctx.Stdout)
		return true
	}

	if hasVersion {
		if versionCmd := root.Lookup("version"); versionCmd != nil {
			_ = versionCmd.Run(nil, cctx)
		}
		return true
	}

	return false
}
