package repositories

import (
	"context"

	"github.com/rios0rios0/gistbackup/internal/domain/entities"
)

// ArchiverRepository packages a directory tree into a single compressed file.
type ArchiverRepository interface {
	Archive(ctx context.Context, sourceDir string, request entities.ArchiveRequest) error
}
