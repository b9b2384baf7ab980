package rejection

import (
	"errors"
	"fmt"
)

// Sentinel kinds without an internal cause. Stable for errors.Is and for the
// responder's status mapping.
var (
	// ErrMissingParameters is returned when a paginated route receives an
	// incomplete start/end pair.
	ErrMissingParameters = errors.New("missing parameters")

	// ErrInvalidRange is returned when a pagination range ends before it starts.
	ErrInvalidRange = errors.New("invalid range")

	// ErrQuestionNotFound is returned when a read misses.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrWrongPassword is returned on a failed login. It covers both an
	// unknown email and a mismatching password so the two are
	// indistinguishable to the client.
	ErrWrongPassword = errors.New("wrong e-mail/password combination")

	// ErrUnauthorized is returned when a session does not own the resource it
	// is trying to mutate. A nonexistent resource yields the same kind.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrToken is the single rejection for a missing, undecryptable, expired,
	// not-yet-valid or structurally malformed bearer token. Collapsing these
	// denies clients a token-probing oracle.
	ErrToken = errors.New("token error")
)

// ParseError reports an unparsable request parameter. The parse detail is
// part of the client-visible message.
type ParseError struct {
	Err error
}

func (e ParseError) Error() string { return fmt.Sprintf("can't parse parameter: %v", e.Err) }
func (e ParseError) Unwrap() error { return e.Err }

// MalformedBody reports a request body that failed deserialization.
type MalformedBody struct {
	Err error
}

func (e MalformedBody) Error() string { return fmt.Sprintf("malformed request body: %v", e.Err) }
func (e MalformedBody) Unwrap() error { return e.Err }

// CORSForbidden reports a cross-origin request from a disallowed origin.
type CORSForbidden struct {
	Origin string
}

func (e CORSForbidden) Error() string {
	return fmt.Sprintf("origin not allowed by CORS policy: %s", e.Origin)
}

// DatabaseError wraps any persistence failure. Op names the store operation
// for logs; Err keeps the driver error so the responder can distinguish a
// unique-constraint violation from everything else.
type DatabaseError struct {
	Op  string
	Err error
}

func (e DatabaseError) Error() string { return fmt.Sprintf("%s: database query error: %v", e.Op, e.Err) }
func (e DatabaseError) Unwrap() error { return e.Err }

// ExternalAPIError wraps a transport-level failure talking to a downstream
// service.
type ExternalAPIError struct {
	Err error
}

func (e ExternalAPIError) Error() string { return fmt.Sprintf("external api error: %v", e.Err) }
func (e ExternalAPIError) Unwrap() error { return e.Err }

// APILayerError reports a non-2xx response from the profanity API. Status and
// Message stay internal.
type APILayerError struct {
	Status  int
	Message string
}

func (e APILayerError) Error() string {
	return fmt.Sprintf("api layer error: status %d: %s", e.Status, e.Message)
}

// HashError wraps an internal fault in the credential hasher, such as an
// undecodable stored hash. Distinct from a failed login.
type HashError struct {
	Err error
}

func (e HashError) Error() string { return fmt.Sprintf("hashing error: %v", e.Err) }
func (e HashError) Unwrap() error { return e.Err }
