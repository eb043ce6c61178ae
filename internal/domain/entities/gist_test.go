//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gistbackup/internal/domain/entities"
)

func TestGistDirectoryName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pullURL   string
		expected  string
		expectErr bool
	}{
		{
			name:     "should strip the .git suffix from the last path segment",
			pullURL:  "https://gist.github.com/aa5a315d61ae9438b18d.git",
			expected: "aa5a315d61ae9438b18d",
		},
		{
			name:     "should take the last segment of an owner-qualified path",
			pullURL:  "https://gist.github.com/octocat/abc123.git",
			expected: "abc123",
		},
		{
			name:     "should accept a URL without the .git suffix",
			pullURL:  "https://gist.github.com/abc123",
			expected: "abc123",
		},
		{
			name:      "should reject a URL with an empty path",
			pullURL:   "https://gist.github.com",
			expectErr: true,
		},
		{
			name:      "should reject a URL with only a root path",
			pullURL:   "https://gist.github.com/",
			expectErr: true,
		},
		{
			name:      "should reject an unparsable URL",
			pullURL:   "://missing-scheme",
			expectErr: true,
		},
		{
			name:      "should reject an empty URL",
			pullURL:   "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			gist := entities.Gist{ID: "id", PullURL: tt.pullURL}

			// when
			name, err := gist.DirectoryName()

			// then
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, name)
		})
	}
}
