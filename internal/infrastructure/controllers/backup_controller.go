package controllers

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gistbackup/config"
	"github.com/rios0rios0/gistbackup/internal/domain/commands"
	"github.com/rios0rios0/gistbackup/internal/domain/entities"
	"github.com/rios0rios0/gistbackup/internal/domain/repositories"
)

// BackupController binds the backup workflow to the CLI: it resolves the
// settings from flags, config file, and the git-config credential fallback,
// then hands off to the backup command.
type BackupController struct {
	command     commands.Backup
	credentials repositories.CredentialRepository
}

var _ entities.Controller = (*BackupController)(nil)

// NewBackupController creates a new BackupController.
func NewBackupController(
	command commands.Backup,
	credentials repositories.CredentialRepository,
) *BackupController {
	return &BackupController{
		command:     command,
		credentials: credentials,
	}
}

// GetBind returns the Cobra command metadata for the backup controller.
func (it *BackupController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "gistbackup",
		Short: "Back up your GitHub gists as local git clones",
		Long: `Back up all gists of the authenticated GitHub user.

Each gist is cloned into the backup directory on the first run and updated
in place on later runs. Optionally the whole directory is packaged into a
compressed tar archive (gzip or bzip2). When only an archive is requested,
the gists are cloned into a temporary workspace that is removed afterwards.

The API token is taken from --token, the config file, or the github.token
key of your global git config, in that order.`,
	}
}

// AddFlags adds the backup flags to the given Cobra command.
func (it *BackupController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("token", "t", "",
		"GitHub API token (default: config file, then git config github.token)")
	cmd.Flags().StringP("directory", "d", "",
		"Persistent backup destination directory")
	cmd.Flags().String("archive-bzip2", "",
		"Write a bzip2 compressed tar archive to the given path (alias: -ab)")
	cmd.Flags().String("archive-gzip", "",
		"Write a gzip compressed tar archive to the given path (alias: -ag)")
	cmd.Flags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.Flags().BoolP("verbose", "v", false,
		"Enable verbose output")
}

// Execute resolves the settings and runs the backup.
func (it *BackupController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := it.resolveSettings(cmd)
	if err != nil {
		return err
	}

	if settings.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	return it.command.Execute(cmd.Context(), settings)
}

// resolveSettings builds the run settings from flags, an optional config
// file, and the credential fallback. Both precondition failures (missing
// token, missing target) are detected here, before any network activity.
func (it *BackupController) resolveSettings(cmd *cobra.Command) (*entities.Settings, error) {
	token, _ := cmd.Flags().GetString("token")
	directory, _ := cmd.Flags().GetString("directory")
	archiveBzip2, _ := cmd.Flags().GetString("archive-bzip2")
	archiveGzip, _ := cmd.Flags().GetString("archive-gzip")
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := it.loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if token == "" {
		token = cfg.Token
	}
	if token == "" {
		fallback, tokenErr := it.credentials.Token()
		if tokenErr != nil {
			logger.Debugf("Credential fallback unavailable: %v", tokenErr)
		}
		token = fallback
	}
	if token == "" {
		return nil, entities.ErrMissingCredential
	}

	if directory == "" {
		directory = cfg.Directory
	}

	archive, err := resolveArchive(archiveBzip2, archiveGzip)
	if err != nil {
		return nil, err
	}

	if directory == "" && archive == nil {
		return nil, entities.ErrMissingTarget
	}

	return &entities.Settings{
		Token:     token,
		Directory: directory,
		Archive:   archive,
		Verbose:   verbose,
	}, nil
}

// loadConfig loads the explicit config file, or the first auto-detected one.
// Only an explicit path that fails to load is an error; a missing
// auto-detected file simply yields empty defaults.
func (it *BackupController) loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		return cfg, nil
	}

	detected, err := config.FindConfigFile()
	if err != nil {
		logger.Debugf("No config file found: %v", err)
		return &config.Config{}, nil
	}

	logger.Debugf("Using config file: %s", detected)
	cfg, loadErr := config.Load(detected)
	if loadErr != nil {
		return nil, fmt.Errorf("failed to load config file: %w", loadErr)
	}
	return cfg, nil
}

// resolveArchive validates the archive flags into at most one request.
func resolveArchive(bzip2Path, gzipPath string) (*entities.ArchiveRequest, error) {
	if bzip2Path != "" && gzipPath != "" {
		return nil, errors.New("only one archive format may be selected (--archive-bzip2 or --archive-gzip)")
	}
	if bzip2Path != "" {
		return &entities.ArchiveRequest{Format: entities.ArchiveBzip2, OutputPath: bzip2Path}, nil
	}
	if gzipPath != "" {
		return &entities.ArchiveRequest{Format: entities.ArchiveGzip, OutputPath: gzipPath}, nil
	}
	return nil, nil //nolint:nilnil // no archive requested is a valid outcome
}
