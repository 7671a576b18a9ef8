package usage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"unknown token", UnknownToken("frob", []string{"volume"}), 1},
		{"ambiguous token", AmbiguousToken("q", []string{"qgroup", "quota"}), 1},
		{"unrecognized global option", UnrecognizedGlobalOption("--bogus"), 129},
		{"missing option value", MissingOptionValue("--format"), 129},
		{"invalid format name", InvalidFormatName("yaml"), 1},
		{"unsupported format", UnsupportedFormat("json"), 1},
		{"explicit code wins", &Error{Kind: ErrUnknownToken, ExitCode: 42}, 42},
		{"unknown kind defaults to 1", &Error{Kind: ErrorKind(99)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.GetExitCode())
		})
	}
}

func TestUnknownTokenMessage(t *testing.T) {
	err := UnknownToken("frob", []string{"volume", "check"}, "volume")

	require.Contains(t, err.Error(), "unknown command 'frob'")
	require.Contains(t, err.Error(), "Did you mean")
	require.Contains(t, err.Error(), "Valid commands are: volume, check")
}

func TestAmbiguousTokenMessage(t *testing.T) {
	err := AmbiguousToken("q", []string{"qgroup", "quota"})

	require.Contains(t, err.Error(), "ambiguous command 'q'")
	require.Contains(t, err.Error(), "qgroup")
	require.Contains(t, err.Error(), "quota")
}
