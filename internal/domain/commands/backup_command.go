package commands

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gistbackup/internal/domain/entities"
	"github.com/rios0rios0/gistbackup/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gistbackup/internal/infrastructure/repositories"
)

// maxEmptyPageRetries is how many consecutive empty listing responses end
// the run. The listing endpoint has no end-of-results signal, so five empty
// answers for the same page number are read as "no more gists".
const maxEmptyPageRetries = 5

// Backup is the interface for the backup command.
type Backup interface {
	Execute(ctx context.Context, settings *entities.Settings) error
}

// BackupCommand runs the whole backup flow: acquire the workspace, walk the
// paginated gist listing, clone or update every gist, optionally archive the
// workspace, and release it according to the run outcome.
type BackupCommand struct {
	gistFactory   infraRepos.GistProviderFactory
	syncerFactory infraRepos.SyncerFactory
	archiver      repositories.ArchiverRepository
}

// NewBackupCommand creates a new BackupCommand with the given factories and archiver.
func NewBackupCommand(
	gistFactory infraRepos.GistProviderFactory,
	syncerFactory infraRepos.SyncerFactory,
	archiver repositories.ArchiverRepository,
) *BackupCommand {
	return &BackupCommand{
		gistFactory:   gistFactory,
		syncerFactory: syncerFactory,
		archiver:      archiver,
	}
}

// Execute runs a single backup using the resolved settings. Any failure,
// including an external interrupt surfacing as context cancellation, removes
// the workspace; a successful run keeps a user-supplied directory and
// removes a temporary one.
func (it *BackupCommand) Execute(ctx context.Context, settings *entities.Settings) (err error) {
	workspace, err := entities.NewWorkspace(settings.Directory)
	if err != nil {
		return err
	}
	logger.Debugf("Using workspace %s (temporary: %t)", workspace.Path, workspace.Temporary)

	defer func() {
		if releaseErr := workspace.Release(err != nil); releaseErr != nil && err == nil {
			err = releaseErr
		}
	}()

	total, err := it.syncAll(ctx, workspace, settings.Token)
	if err != nil {
		return err
	}
	logger.Infof("Backup complete: %d gists synchronized", total)

	if settings.Archive != nil {
		logger.Infof("Archiving workspace to %s (%s)", settings.Archive.OutputPath, settings.Archive.Format)
		if archiveErr := it.archiver.Archive(ctx, workspace.Path, *settings.Archive); archiveErr != nil {
			return fmt.Errorf("failed to archive workspace: %w", archiveErr)
		}
	}

	return nil
}

// syncAll drives the pagination loop. An empty page is retried at the SAME
// page number; only a page with at least one gist advances the cursor and
// resets the retry counter. This mirrors the listing endpoint's lack of a
// proper termination signal.
func (it *BackupCommand) syncAll(
	ctx context.Context,
	workspace *entities.Workspace,
	token string,
) (int, error) {
	gists := it.gistFactory(token)
	syncer := it.syncerFactory(token)

	page := 1
	retries := 0
	total := 0

	for retries < maxEmptyPageRetries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return total, ctxErr
		}

		listed, err := gists.ListPage(ctx, page)
		if err != nil {
			return total, fmt.Errorf("failed to list gists (page %d): %w", page, err)
		}

		if len(listed) == 0 {
			retries++
			continue
		}

		for _, gist := range listed {
			if syncErr := it.syncOne(ctx, syncer, workspace, gist); syncErr != nil {
				return total, syncErr
			}
			total++
		}

		retries = 0
		page++
	}

	return total, nil
}

// syncOne mirrors a single gist: update in place when its directory already
// exists in the workspace, clone otherwise. There is no per-item retry; a
// failure aborts the whole run.
func (it *BackupCommand) syncOne(
	ctx context.Context,
	syncer repositories.SyncerRepository,
	workspace *entities.Workspace,
	gist entities.Gist,
) error {
	name, err := gist.DirectoryName()
	if err != nil {
		return err
	}
	if gist.Description != "" {
		logger.Debugf("Gist %s: %s", name, gist.Description)
	}

	target := workspace.Join(name)
	if _, statErr := os.Stat(target); statErr == nil {
		logger.Infof("Updating gist %s", name)
		if updateErr := syncer.Update(ctx, target); updateErr != nil {
			return fmt.Errorf("failed to update gist %s: %w", name, updateErr)
		}
		return nil
	}

	logger.Infof("Cloning gist %s", name)
	if cloneErr := syncer.Clone(ctx, gist.PullURL, target); cloneErr != nil {
		return fmt.Errorf("failed to clone gist %s: %w", name, cloneErr)
	}
	return nil
}
