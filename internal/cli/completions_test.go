package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCompletePrintTreeModes(t *testing.T) {
	tests := []struct {
		toComplete string
		expected   []string
	}{
		{"", []string{"none", "plain", "fancy"}},
		{"f", []string{"fancy"}},
		{"x", nil},
	}

	for _, tt := range tests {
		matches, directive := completePrintTreeModes(rootCmd, nil, tt.toComplete)
		assert.Equal(t, tt.expected, matches, "prefix %q", tt.toComplete)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	}
}

func TestCompleteRootPath(t *testing.T) {
	_, directive := completeRootPath(rootCmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveFilterDirs, directive)

	_, directive = completeRootPath(rootCmd, []string{"already"}, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}
