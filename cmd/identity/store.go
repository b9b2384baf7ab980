package identity

import "context"

// Store is the account persistence boundary consumed by the auth handlers.
type Store interface {
	// AddAccount inserts a new account. The id is assigned by the database.
	// A duplicate email surfaces as a database rejection carrying the
	// driver's unique-violation code.
	AddAccount(ctx context.Context, acct StoredAccount) error

	// GetAccountByEmail returns the stored account for an email, or
	// ErrAccountNotFound.
	GetAccountByEmail(ctx context.Context, email string) (StoredAccount, error)
}
