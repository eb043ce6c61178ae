//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"

	"github.com/rios0rios0/gistbackup/internal/domain/entities"
	"github.com/rios0rios0/gistbackup/internal/domain/repositories"
)

// ArchiveCall records one Archive invocation.
type ArchiveCall struct {
	SourceDir string
	Request   entities.ArchiveRequest
}

// SpyArchiverRepository implements repositories.ArchiverRepository as a spy.
// SourceDirExisted captures whether the workspace was still on disk at
// archive time, since the command removes temporary workspaces afterwards.
type SpyArchiverRepository struct {
	ArchiveErr error

	// --- recorded calls ---
	Calls            []ArchiveCall
	SourceDirExisted []bool
}

var _ repositories.ArchiverRepository = (*SpyArchiverRepository)(nil)

func (s *SpyArchiverRepository) Archive(
	_ context.Context,
	sourceDir string,
	request entities.ArchiveRequest,
) error {
	s.Calls = append(s.Calls, ArchiveCall{SourceDir: sourceDir, Request: request})
	_, statErr := os.Stat(sourceDir)
	s.SourceDirExisted = append(s.SourceDirExisted, statErr == nil)
	return s.ArchiveErr
}
