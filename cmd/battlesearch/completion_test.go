package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteLogFormats(t *testing.T) {
	tests := []struct {
		name       string
		toComplete string
		want       []string
	}{
		{name: "empty input returns all formats", toComplete: "", want: []string{"console", "json"}},
		{name: "prefix c", toComplete: "c", want: []string{"console"}},
		{name: "prefix j", toComplete: "j", want: []string{"json"}},
		{name: "case insensitive matching", toComplete: "JS", want: []string{"json"}},
		{name: "trims whitespace", toComplete: "  con ", want: []string{"console"}},
		{name: "no match returns empty", toComplete: "xml", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, directive := completeLogFormats(&cobra.Command{}, nil, tt.toComplete)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
		})
	}
}

func TestRootPositionalCompletion(t *testing.T) {
	cmd := newRootCmd()

	_, directive := cmd.ValidArgsFunction(cmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive, "username is not completed")

	_, directive = cmd.ValidArgsFunction(cmd, []string{"annika"}, "")
	assert.Equal(t, cobra.ShellCompDirectiveFilterDirs, directive, "roots complete to directories")
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			cmd := newRootCmd()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs([]string{"completion", shell})

			require.NoError(t, cmd.Execute())
			assert.Contains(t, out.String(), "battlesearch")
		})
	}
}

func TestCompletionCommand_RejectsUnknownShell(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"completion", "tcsh"})

	assert.Error(t, cmd.Execute())
}
