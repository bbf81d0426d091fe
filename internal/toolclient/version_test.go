package toolclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected string
	}{
		{
			name:     "bare version",
			output:   "2.0.0",
			expected: "2.0.0",
		},
		{
			name:     "version with prefix text",
			output:   "claude-flow v2.0.0-alpha.90\n",
			expected: "2.0.0-alpha.90",
		},
		{
			name:     "version embedded in banner",
			output:   "Welcome!\nversion: 1.2.3 (build 456)\n",
			expected: "1.2.3",
		},
		{
			name:     "first match wins",
			output:   "cli 1.0.0 (engine 9.9.9)",
			expected: "1.0.0",
		},
		{
			name:     "prerelease with dotted identifier",
			output:   "3.1.4-beta.2",
			expected: "3.1.4-beta.2",
		},
		{
			name:     "no version present",
			output:   "command not found",
			expected: VersionUnknown,
		},
		{
			name:     "empty output",
			output:   "",
			expected: VersionUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseVersion(tt.output))
		})
	}
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel(VersionUnknown))
	assert.True(t, IsSentinel(VersionNotInstalled))
	assert.True(t, IsSentinel(""))
	assert.False(t, IsSentinel("2.0.0-alpha.90"))
}
