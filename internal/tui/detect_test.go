package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name           string
		nonInteractive string
		ci             string
		noColor        string
	}{
		{name: "forced non-interactive", nonInteractive: "1"},
		{name: "CI", ci: "true"},
		{name: "NO_COLOR", noColor: "1"},
		{name: "wrong override value falls through to terminal check", nonInteractive: "true"},
		// stdin and stdout are not terminals under go test
		{name: "no terminal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(NonInteractiveEnv, tt.nonInteractive)
			t.Setenv("CI", tt.ci)
			t.Setenv("NO_COLOR", tt.noColor)

			assert.Equal(t, ModeNonInteractive, DetectMode())
			assert.False(t, IsInteractive())
		})
	}
}
