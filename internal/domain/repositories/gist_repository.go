package repositories

import (
	"context"

	"github.com/rios0rios0/gistbackup/internal/domain/entities"
)

// GistRepository abstracts the paginated remote listing endpoint.
type GistRepository interface {
	// ListPage returns the gists on the given 1-based page, in the order
	// the endpoint reports them. An empty slice means the page had no items.
	ListPage(ctx context.Context, page int) ([]entities.Gist, error)
}
