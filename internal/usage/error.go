// Package usage defines user-facing dispatch errors and their exit codes.
//
// Every fatal condition detected during routing is expressed as an *Error
// returned up the call chain; the single translation to a process exit
// happens in main. Inner logic never terminates the process itself.
package usage

// ErrorKind represents the type of dispatch error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownToken
	ErrAmbiguousToken
	ErrUnrecognizedGlobalOption
	ErrInvalidFormatName
	ErrUnsupportedFormat
	ErrGroupUsage
)

// Exit codes:
//
//	Exit 1: usage errors
//	  - Unknown command token
//	  - Ambiguous command token
//	  - Invalid --format name
//	  - Format unsupported by the resolved command
//	  - Group invoked without a subcommand
//
//	Exit 129: unrecognized global option (getopt convention)
var exitCodes = map[ErrorKind]int{
	ErrUnknown:                  1,
	ErrUnknownToken:             1,
	ErrAmbiguousToken:           1,
	ErrUnrecognizedGlobalOption: 129,
	ErrInvalidFormatName:        1,
	ErrUnsupportedFormat:        1,
	ErrGroupUsage:               1,
}

// Error is a user-facing dispatch error with semantic kind information.
type Error struct {
	Kind    ErrorKind
	Message string
	// Quiet suppresses the message at the top level; set when the
	// diagnostic has already been rendered where it was detected.
	Quiet bool
	// ExitCode overrides the code derived from Kind when non-zero.
	ExitCode int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the process exit code for this error.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

var _ error = (*Error)(nil)
