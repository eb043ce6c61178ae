package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gistbackup/internal/domain/entities"
)

// ResolveSettings exports resolveSettings for testing.
func (it *BackupController) ResolveSettings(cmd *cobra.Command) (*entities.Settings, error) {
	return it.resolveSettings(cmd)
}
