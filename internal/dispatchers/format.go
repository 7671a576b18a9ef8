package dispatchers

import "strings"

// OutputFormat is an enumerated rendering mode a leaf command may or may
// not support. FormatText is the default and is always supported.
type OutputFormat int

const (
	FormatText OutputFormat = iota
	FormatJSON

	formatMax
)

var formatNames = [formatMax]string{
	FormatText: "text",
	FormatJSON: "json",
}

func (f OutputFormat) String() string {
	if f < 0 || f >= formatMax {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(name string) (OutputFormat, bool) {
	for i, n := range formatNames {
		if strings.EqualFold(name, n) {
			return OutputFormat(i), true
		}
	}
	return FormatText, false
}

// FormatNames returns the valid --format values in declaration order.
func FormatNames() []string {
	return formatNames[:]
}

// FormatMask is a bitmask of the output formats a command can produce.
type FormatMask uint32

// FormatMaskAll marks a command as capable of every format. Group
// commands always carry it: the capability gate applies only to leaves.
const FormatMaskAll = FormatMask(1<<formatMax - 1)

// MaskOf builds a capability mask from individual formats.
func MaskOf(formats ...OutputFormat) FormatMask {
	var m FormatMask
	for _, f := range formats {
		m |= 1 << uint(f)
	}
	return m
}

// Has reports whether the mask includes the given format.
func (m FormatMask) Has(f OutputFormat) bool {
	return m&(1<<uint(f)) != 0
}

// Supports reports whether cmd can produce the format currently requested
// in the context. The default text mode is always supported, and internal
// group nodes pass unconditionally.
func (cctx *Context) Supports(cmd *Command) bool {
	if cctx.Format == FormatText {
		return true
	}
	if cmd.IsGroup() {
		return true
	}
	return cmd.Formats.Has(cctx.Format)
}
