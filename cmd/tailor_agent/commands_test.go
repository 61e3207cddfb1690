package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands_RequiredFlags(t *testing.T) {
	tests := []struct {
		command  string
		required []string
	}{
		{"sections", []string{"resume"}},
		{"score", []string{"resume"}},
		{"diff", []string{"original", "updated"}},
		{"select-certs", []string{"profile"}},
		{"parse-resume", []string{"resume"}},
		{"optimize", []string{"resume", "company", "title"}},
		{"generate", []string{"resume", "company", "title"}},
		{"tailor", []string{"resume", "company", "title"}},
		{"batch", []string{"resume", "manifest"}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{tt.command})
			require.NoError(t, err)
			require.Equal(t, tt.command, cmd.Name())

			for _, name := range tt.required {
				flag := cmd.Flags().Lookup(name)
				require.NotNil(t, flag, "--%s", name)
				assert.Equal(t, []string{"true"}, flag.Annotations[cobra.BashCompOneRequiredFlag], "--%s must be required", name)
			}
		})
	}
}
