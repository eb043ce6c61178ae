package repositories

import (
	"go.uber.org/dig"

	archiveRepo "github.com/rios0rios0/gistbackup/internal/infrastructure/repositories/archive"
	gitcfgRepo "github.com/rios0rios0/gistbackup/internal/infrastructure/repositories/gitconfig"
	ghRepo "github.com/rios0rios0/gistbackup/internal/infrastructure/repositories/github"
	gogitRepo "github.com/rios0rios0/gistbackup/internal/infrastructure/repositories/gogit"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Token-bound repositories are registered as factories; the token is
	// only known once the controller has resolved the settings.
	if err := container.Provide(func() GistProviderFactory {
		return ghRepo.NewGistProviderRepository
	}); err != nil {
		return err
	}
	if err := container.Provide(func() SyncerFactory {
		return gogitRepo.NewSyncerRepository
	}); err != nil {
		return err
	}

	if err := container.Provide(archiveRepo.NewArchiverRepository); err != nil {
		return err
	}
	if err := container.Provide(gitcfgRepo.NewCredentialRepository); err != nil {
		return err
	}

	return nil
}
