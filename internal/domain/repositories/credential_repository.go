package repositories

// CredentialRepository is the fallback source for the API token when none
// was passed explicitly (the invoking user's persistent git configuration).
type CredentialRepository interface {
	// Token returns the stored token, or an empty string when the store has
	// no entry. Errors are reserved for an unreadable store.
	Token() (string, error)
}
