package session

// Session is the request-scoped identity derived from a validated token.
// It carries only the account id, is never persisted, and is discarded when
// the request completes.
type Session struct {
	AccountID int32
}
