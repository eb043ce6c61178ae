package entities

// Settings holds the fully-resolved options for a single backup run.
// It is built once by the controller layer and threaded through the
// command, replacing any reliance on process-global state.
type Settings struct {
	Token     string          // GitHub API token, already resolved from flag/config/git config
	Directory string          // Persistent destination directory; empty means "use a temporary workspace"
	Archive   *ArchiveRequest // nil when no archive was requested
	Verbose   bool
}
