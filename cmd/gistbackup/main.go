package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gistbackup/internal/domain/entities"
	"github.com/rios0rios0/gistbackup/internal/infrastructure/controllers"
)

// legacyFlagAliases maps the historical two-letter archive flags onto the
// long flags; pflag only supports single-letter shorthands.
var legacyFlagAliases = map[string]string{
	"-ab": "--archive-bzip2",
	"-ag": "--archive-gzip",
}

func buildRootCommand(backupController *controllers.BackupController) *cobra.Command {
	bind := backupController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return backupController.Execute(command, arguments)
		},
	}

	backupController.AddFlags(cmd)
	return cmd
}

// normalizeArgs rewrites the legacy -ab/-ag spellings (bare or =-joined)
// into their long-flag equivalents before Cobra parses them.
func normalizeArgs(args []string) []string {
	normalized := make([]string, 0, len(args))
	for _, arg := range args {
		if long, ok := legacyFlagAliases[arg]; ok {
			normalized = append(normalized, long)
			continue
		}
		if flag, value, found := strings.Cut(arg, "="); found {
			if long, ok := legacyFlagAliases[flag]; ok {
				normalized = append(normalized, long+"="+value)
				continue
			}
		}
		normalized = append(normalized, arg)
	}
	return normalized
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Interrupt and termination signals cancel the context; the command's
	// deferred workspace release then runs as for any other failed run.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Inject the controller via DIG
	backupController := injectBackupController()
	cobraRoot := buildRootCommand(backupController)
	cobraRoot.SetArgs(normalizeArgs(os.Args[1:]))

	if err := cobraRoot.ExecuteContext(ctx); err != nil {
		if errors.Is(err, entities.ErrMissingCredential) || errors.Is(err, entities.ErrMissingTarget) {
			_ = cobraRoot.Usage()
		}
		logger.Fatalf("Error executing 'gistbackup': %s", err)
	}
}
