package usage

import (
	"fmt"
	"strings"
)

// UnknownToken is returned when a token matches no command in a group.
func UnknownToken(token string, valid []string, suggestions ...string) *Error {
	var b strings.Builder
	fmt.Fprintf(&b, "strata: unknown command '%s'\n", token)
	if len(suggestions) > 0 {
		b.WriteString("\nDid you mean one of these?\n")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "\t%s\n", s)
		}
	}
	fmt.Fprintf(&b, "\nValid commands are: %s", strings.Join(valid, ", "))
	return &Error{Kind: ErrUnknownToken, Message: b.String()}
}

// AmbiguousToken is returned when a token is a prefix of two or more
// command names in the same group.
func AmbiguousToken(token string, candidates []string) *Error {
	var b strings.Builder
	fmt.Fprintf(&b, "strata: ambiguous command '%s'\n\nDid you mean one of these?\n", token)
	for _, c := range candidates {
		fmt.Fprintf(&b, "\t%s\n", c)
	}
	return &Error{Kind: ErrAmbiguousToken, Message: strings.TrimRight(b.String(), "\n")}
}

// UnrecognizedGlobalOption is returned for an unknown leading option.
func UnrecognizedGlobalOption(opt string) *Error {
	return &Error{
		Kind:    ErrUnrecognizedGlobalOption,
		Message: fmt.Sprintf("Unknown global option: %s", opt),
	}
}

// InvalidFormatName is returned when --format names no known output format.
func InvalidFormatName(name string) *Error {
	return &Error{
		Kind:    ErrInvalidFormatName,
		Message: fmt.Sprintf("error: invalid output format \"%s\"", name),
	}
}

// UnsupportedFormat is returned when a leaf command cannot produce the
// requested output format.
func UnsupportedFormat(format string) *Error {
	return &Error{
		Kind:    ErrUnsupportedFormat,
		Message: fmt.Sprintf("error: %s output is unsupported for this command.", format),
	}
}

// MissingOptionValue is returned when a global option requires a value
// and none was supplied.
func MissingOptionValue(opt string) *Error {
	return &Error{
		Kind:    ErrUnrecognizedGlobalOption,
		Message: fmt.Sprintf("Option %s requires an argument", opt),
	}
}
