//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"

	"github.com/rios0rios0/gistbackup/internal/domain/repositories"
)

// CloneCall records one Clone invocation.
type CloneCall struct {
	URL       string
	Directory string
}

// SpySyncerRepository implements repositories.SyncerRepository as a
// configurable spy. With CreateDirs set, Clone creates the target directory
// so a later run takes the update path, mimicking a real clone.
type SpySyncerRepository struct {
	CloneErr   error
	UpdateErr  error
	CreateDirs bool

	// --- recorded calls ---
	CloneCalls  []CloneCall
	UpdateCalls []string
}

var _ repositories.SyncerRepository = (*SpySyncerRepository)(nil)

func (s *SpySyncerRepository) Clone(_ context.Context, url, directory string) error {
	s.CloneCalls = append(s.CloneCalls, CloneCall{URL: url, Directory: directory})
	if s.CloneErr != nil {
		return s.CloneErr
	}
	if s.CreateDirs {
		return os.MkdirAll(directory, 0o755)
	}
	return nil
}

func (s *SpySyncerRepository) Update(_ context.Context, directory string) error {
	s.UpdateCalls = append(s.UpdateCalls, directory)
	return s.UpdateErr
}
