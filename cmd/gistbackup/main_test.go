//go:build unit

package main //nolint:testpackage // tests unexported functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "should rewrite -ab to --archive-bzip2",
			args:     []string{"-ab", "out.tar.bz2"},
			expected: []string{"--archive-bzip2", "out.tar.bz2"},
		},
		{
			name:     "should rewrite -ag to --archive-gzip",
			args:     []string{"-ag", "out.tar.gz"},
			expected: []string{"--archive-gzip", "out.tar.gz"},
		},
		{
			name:     "should rewrite the =-joined form",
			args:     []string{"-ab=out.tar.bz2"},
			expected: []string{"--archive-bzip2=out.tar.bz2"},
		},
		{
			name:     "should leave other flags untouched",
			args:     []string{"-t", "token", "--directory", "backup", "-v"},
			expected: []string{"-t", "token", "--directory", "backup", "-v"},
		},
		{
			name:     "should handle mixed flag orders",
			args:     []string{"-d", "backup", "-ag", "out.tar.gz", "-t", "token"},
			expected: []string{"-d", "backup", "--archive-gzip", "out.tar.gz", "-t", "token"},
		},
		{
			name:     "should pass empty arguments through",
			args:     []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result := normalizeArgs(tt.args)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}
