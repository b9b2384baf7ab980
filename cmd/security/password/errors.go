package password

import "errors"

// ErrInvalidHash is returned when a stored hash cannot be decoded or carries
// unsupported parameters. Callers should treat it as a server-side fault,
// never as a failed login.
var ErrInvalidHash = errors.New("invalid password hash")
