package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v66/github"

	"github.com/rios0rios0/gistbackup/internal/domain/entities"
	"github.com/rios0rios0/gistbackup/internal/domain/repositories"
)

// GistProviderRepository implements repositories.GistRepository against the
// GitHub gists listing endpoint.
type GistProviderRepository struct {
	client *gh.Client
}

// NewGistProviderRepository creates a provider authenticated with the given token.
func NewGistProviderRepository(token string) repositories.GistRepository {
	return &GistProviderRepository{
		client: gh.NewClient(nil).WithAuthToken(token),
	}
}

// ListPage fetches one page of the authenticated user's gists. Only the page
// number is sent; the per-page size is left to the endpoint's default, so an
// empty response means the page genuinely had no items.
func (p *GistProviderRepository) ListPage(ctx context.Context, page int) ([]entities.Gist, error) {
	opts := &gh.GistListOptions{
		ListOptions: gh.ListOptions{Page: page},
	}

	gists, _, err := p.client.Gists.List(ctx, "", opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list gists: %w", err)
	}

	result := make([]entities.Gist, 0, len(gists))
	for _, g := range gists {
		result = append(result, entities.Gist{
			ID:          g.GetID(),
			Description: g.GetDescription(),
			PullURL:     g.GetGitPullURL(),
		})
	}

	return result, nil
}
