package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input  string
		want   OutputFormat
		wantOK bool
	}{
		{"text", FormatText, true},
		{"json", FormatJSON, true},
		{"JSON", FormatJSON, true},
		{"Text", FormatText, true},
		{"yaml", FormatText, false},
		{"", FormatText, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseFormat(tt.input)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSupports(t *testing.T) {
	textOnly := NewLeaf("text-only", "", nil, MaskOf(FormatText), nil)
	jsonCapable := NewLeaf("json-capable", "", nil, MaskOf(FormatText, FormatJSON), nil)
	group := NewGroupCommand("group", "", &Group{})

	tests := []struct {
		name   string
		cmd    *Command
		format OutputFormat
		want   bool
	}{
		{"default text always supported", textOnly, FormatText, true},
		{"json against text-only leaf", textOnly, FormatJSON, false},
		{"json against json-capable leaf", jsonCapable, FormatJSON, true},
		{"group passes any format", group, FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cctx := NewContext()
			cctx.Format = tt.format
			require.Equal(t, tt.want, cctx.Supports(tt.cmd))
		})
	}
}

func TestFormatMask(t *testing.T) {
	m := MaskOf(FormatJSON)
	require.True(t, m.Has(FormatJSON))
	require.False(t, m.Has(FormatText))

	require.True(t, FormatMaskAll.Has(FormatText))
	require.True(t, FormatMaskAll.Has(FormatJSON))
}

func TestFormatNamesOrder(t *testing.T) {
	require.Equal(t, []string{"text", "json"}, FormatNames())
}
