package gitconfig

import (
	"fmt"

	gitcfg "github.com/go-git/go-git/v5/config"

	"github.com/rios0rios0/gistbackup/internal/domain/repositories"
)

const (
	tokenSection = "github"
	tokenOption  = "token"
)

// CredentialRepository reads the fallback API token from the invoking
// user's global git configuration (the github.token key).
type CredentialRepository struct{}

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository() repositories.CredentialRepository {
	return &CredentialRepository{}
}

// Token returns the github.token value from the global git config, or an
// empty string when the key is not set.
func (r *CredentialRepository) Token() (string, error) {
	cfg, err := gitcfg.LoadConfig(gitcfg.GlobalScope)
	if err != nil {
		return "", fmt.Errorf("failed to load global git config: %w", err)
	}

	return cfg.Raw.Section(tokenSection).Option(tokenOption), nil
}
