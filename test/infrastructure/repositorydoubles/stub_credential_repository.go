//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gistbackup/internal/domain/repositories"
)

// StubCredentialRepository implements repositories.CredentialRepository with
// a fixed answer.
type StubCredentialRepository struct {
	TokenValue string
	TokenErr   error
}

var _ repositories.CredentialRepository = (*StubCredentialRepository)(nil)

func (s *StubCredentialRepository) Token() (string, error) {
	return s.TokenValue, s.TokenErr
}
