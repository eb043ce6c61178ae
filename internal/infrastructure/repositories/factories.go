package repositories

import (
	domainRepos "github.com/rios0rios0/gistbackup/internal/domain/repositories"
)

// GistProviderFactory is a constructor that creates a GistRepository given
// an auth token. The token is only known at runtime, after the resolver has
// consulted the flag, config file, and git config in order.
type GistProviderFactory func(token string) domainRepos.GistRepository

// SyncerFactory is a constructor that creates a SyncerRepository given an
// auth token. The token lets the syncer reach secret gists; public ones
// clone fine without it.
type SyncerFactory func(token string) domainRepos.SyncerRepository
