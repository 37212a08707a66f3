package ports

// TokenStore persists the single bearer credential across process restarts.
// All operations are idempotent: Clear on an absent token is a no-op and
// Token returns an empty string (not an error) when nothing is stored.
type TokenStore interface {
	Token() (string, error)
	Save(token string) error
	Clear() error
}
