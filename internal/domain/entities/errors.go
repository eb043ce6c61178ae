package entities

import "errors"

// Precondition failures checked before any network activity. Both are
// reported to the user together with the usage block and exit code 1.
var (
	// ErrMissingCredential means no API token could be resolved from the
	// --token flag, the config file, or the global git config.
	ErrMissingCredential = errors.New(
		"no API token resolved: pass --token, set it in the config file, " +
			"or set github.token in your global git config",
	)

	// ErrMissingTarget means the run has nowhere to put its result: neither
	// --directory nor an archive path was supplied.
	ErrMissingTarget = errors.New(
		"no backup target: pass --directory and/or --archive-bzip2/--archive-gzip",
	)
)
