package gogit

import (
	"context"
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/rios0rios0/gistbackup/internal/domain/repositories"
)

// SyncerRepository implements repositories.SyncerRepository using go-git.
type SyncerRepository struct {
	auth transport.AuthMethod
}

// NewSyncerRepository creates a syncer. A non-empty token is used as HTTP
// basic auth so secret gists can be cloned; public gists work without it.
func NewSyncerRepository(token string) repositories.SyncerRepository {
	var auth transport.AuthMethod
	if token != "" {
		auth = &githttp.BasicAuth{
			Username: "x-access-token",
			Password: token,
		}
	}
	return &SyncerRepository{auth: auth}
}

// Clone creates a fresh working copy of the repository at url in directory.
func (r *SyncerRepository) Clone(ctx context.Context, url, directory string) error {
	_, err := git.PlainCloneContext(ctx, directory, false, &git.CloneOptions{
		URL:  url,
		Auth: r.auth,
	})
	if err != nil {
		return fmt.Errorf("failed to clone %q: %w", url, err)
	}
	return nil
}

// Update fast-forwards the working copy in directory to the latest remote
// state. An already up-to-date copy is not an error.
func (r *SyncerRepository) Update(ctx context.Context, directory string) error {
	repo, err := git.PlainOpen(directory)
	if err != nil {
		return fmt.Errorf("failed to open repository %q: %w", directory, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree of %q: %w", directory, err)
	}

	pullErr := worktree.PullContext(ctx, &git.PullOptions{
		RemoteName: git.DefaultRemoteName,
		Auth:       r.auth,
	})
	if errors.Is(pullErr, git.NoErrAlreadyUpToDate) {
		return nil
	}
	if pullErr != nil {
		return fmt.Errorf("failed to pull %q: %w", directory, pullErr)
	}
	return nil
}
