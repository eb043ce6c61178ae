//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gistbackup/internal/domain/entities"
	"github.com/rios0rios0/gistbackup/internal/domain/repositories"
)

// SpyGistRepository implements repositories.GistRepository as a scripted spy:
// each ListPage call consumes the next entry of Responses; once the script is
// exhausted every further page is empty.
type SpyGistRepository struct {
	Responses [][]entities.Gist
	ListErr   error

	// --- recorded calls ---
	RequestedPages []int
}

var _ repositories.GistRepository = (*SpyGistRepository)(nil)

func (s *SpyGistRepository) ListPage(_ context.Context, page int) ([]entities.Gist, error) {
	call := len(s.RequestedPages)
	s.RequestedPages = append(s.RequestedPages, page)

	if s.ListErr != nil {
		return nil, s.ListErr
	}
	if call < len(s.Responses) {
		return s.Responses[call], nil
	}
	return nil, nil
}
