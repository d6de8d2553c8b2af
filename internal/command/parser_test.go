package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCommandLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "login bob pw", []string{"login", "bob", "pw"}},
		{"extra spaces", "  login   bob  ", []string{"login", "bob"}},
		{"double quotes", `course CS361 "Intro to Software Eng."`, []string{"course", "CS361", "Intro to Software Eng."}},
		{"single quotes", "notify 'Lab 801' 'Room changed'", []string{"notify", "Lab 801", "Room changed"}},
		{"nested quote styles", `notify "it's due" today`, []string{"notify", "it's due", "today"}},
		{"empty quoted token", "edit_account bob name ''", []string{"edit_account", "bob", "name", ""}},
		{"empty line", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitCommandLine(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSplitCommandLineUnterminatedQuote(t *testing.T) {
	_, err := splitCommandLine(`course CS361 "Intro`)
	require.ErrorIs(t, err, ErrParse)

	_, err = splitCommandLine("notify 'oops")
	require.ErrorIs(t, err, ErrParse)
}

func TestParseLineFlags(t *testing.T) {
	line, err := parseLine("notify subject content -u alice bob")
	require.NoError(t, err)
	require.Equal(t, "notify", line.Verb)
	require.Equal(t, []string{"subject", "content"}, line.Args)
	require.Equal(t, []string{"alice", "bob"}, line.Flags["-u"])
}

func TestParseLineFlagWithoutValues(t *testing.T) {
	line, err := parseLine("notify subject content -u")
	require.NoError(t, err)

	values, ok := line.Flags["-u"]
	require.True(t, ok)
	require.Empty(t, values)
}

func TestParseLineMultipleFlags(t *testing.T) {
	line, err := parseLine("assign_ta bob CS417 -s 801")
	require.NoError(t, err)
	require.Equal(t, []string{"bob", "CS417"}, line.Args)
	require.Equal(t, []string{"801"}, line.Flags["-s"])
}

func TestParseLineLoneDashIsPositional(t *testing.T) {
	line, err := parseLine("edit_account bob name -")
	require.NoError(t, err)
	require.Equal(t, []string{"bob", "name", "-"}, line.Args)
	require.Empty(t, line.Flags)
}
