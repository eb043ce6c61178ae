//go:build integration || unit || test

// Package commanddoubles provides test doubles for command interfaces.
package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gistbackup/internal/domain/commands"
	"github.com/rios0rios0/gistbackup/internal/domain/entities"
)

// SpyBackupCommand implements commands.Backup as a spy recording the
// settings it was executed with.
type SpyBackupCommand struct {
	ExecuteErr error

	// --- recorded calls ---
	ExecutedSettings []*entities.Settings
}

var _ commands.Backup = (*SpyBackupCommand)(nil)

func (s *SpyBackupCommand) Execute(_ context.Context, settings *entities.Settings) error {
	s.ExecutedSettings = append(s.ExecutedSettings, settings)
	return s.ExecuteErr
}
