package main

import (
	"github.com/rios0rios0/gistbackup/internal"
	"github.com/rios0rios0/gistbackup/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func injectBackupController() *controllers.BackupController {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get the controller
	var backupController *controllers.BackupController
	if err := container.Invoke(func(bc *controllers.BackupController) {
		backupController = bc
	}); err != nil {
		panic(err)
	}

	return backupController
}
