package entities

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workspace is the directory all gist copies are placed under for one run.
// A user-supplied directory is created (with parents) and kept on success;
// when none is given a uniquely-named temporary directory is allocated and
// removed again after a successful run. Any failed run removes the
// workspace regardless of origin.
type Workspace struct {
	Path      string
	Temporary bool
}

// NewWorkspace acquires the workspace for a run. An empty directory argument
// allocates a temporary workspace.
func NewWorkspace(directory string) (*Workspace, error) {
	if directory == "" {
		path, err := os.MkdirTemp("", "gistbackup-")
		if err != nil {
			return nil, fmt.Errorf("failed to create temporary workspace: %w", err)
		}
		return &Workspace{Path: path, Temporary: true}, nil
	}

	absolute, err := filepath.Abs(directory)
	if err != nil {
		return nil, fmt.Errorf("invalid workspace directory %q: %w", directory, err)
	}
	if mkdirErr := os.MkdirAll(absolute, 0o755); mkdirErr != nil {
		return nil, fmt.Errorf("failed to create workspace directory %q: %w", absolute, mkdirErr)
	}

	return &Workspace{Path: absolute, Temporary: false}, nil
}

// Join returns the path of a named entry inside the workspace.
func (w *Workspace) Join(name string) string {
	return filepath.Join(w.Path, name)
}

// Release removes the workspace tree according to the run outcome: a failed
// run always removes it, a successful run removes it only when temporary.
func (w *Workspace) Release(failed bool) error {
	if !failed && !w.Temporary {
		return nil
	}
	if err := os.RemoveAll(w.Path); err != nil {
		return fmt.Errorf("failed to remove workspace %q: %w", w.Path, err)
	}
	return nil
}
