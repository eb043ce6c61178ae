package repositories

import "context"

// SyncerRepository abstracts the version-control client used to mirror a
// single gist into the workspace.
type SyncerRepository interface {
	// Clone creates a fresh working copy of the repository at url in directory.
	Clone(ctx context.Context, url, directory string) error

	// Update refreshes an existing working copy in directory to the latest
	// remote state. An already up-to-date copy is not an error.
	Update(ctx context.Context, directory string) error
}
