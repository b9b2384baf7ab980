package session

import "errors"

var (
	// ErrInvalidToken is the single failure for any token that cannot be
	// turned into a Session: undecryptable, expired, not yet valid, or
	// carrying a malformed claim. Callers must not distinguish these cases.
	ErrInvalidToken = errors.New("invalid token")

	// ErrConfig is returned for invalid session configuration.
	ErrConfig = errors.New("invalid config")
)
