package identity

import "errors"

// ErrAccountNotFound is returned when no account matches the given email.
// Login handlers fold it into the generic wrong-credentials rejection so an
// unknown email is indistinguishable from a bad password.
var ErrAccountNotFound = errors.New("account not found")
