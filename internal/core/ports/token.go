package ports

// TokenIssuer creates signed, time-limited bearer tokens bound to a user ID.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// TokenVerifier validates a bearer token and resolves it to the user ID it
// was issued for. Any failure (malformed token, bad signature, expiry)
// yields domain.ErrInvalidToken; callers cannot distinguish the cases.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
