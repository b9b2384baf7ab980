package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"qna/cmd/internal/rejection"
)

// PostgresStore implements account persistence over PostgreSQL.
// The pgx pool is owned by the caller; this store must not close it.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs a PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("identity: nil pool")
	}
	return &PostgresStore{pool: pool}, nil
}

// AddAccount inserts a new account row. Driver errors, including the
// unique-violation for a duplicate email, are wrapped as database rejections
// so the responder can classify them.
func (s *PostgresStore) AddAccount(ctx context.Context, acct StoredAccount) error {
	const op = "identity.AddAccount"

	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO accounts (email, password) VALUES ($1, $2)`,
		acct.Email,
		acct.PasswordHash,
	)
	if err != nil {
		return rejection.DatabaseError{Op: op, Err: err}
	}
	return nil
}

// GetAccountByEmail looks up an account by its exact, case-sensitive email.
func (s *PostgresStore) GetAccountByEmail(ctx context.Context, email string) (StoredAccount, error) {
	const op = "identity.GetAccountByEmail"

	if err := ctx.Err(); err != nil {
		return StoredAccount{}, err
	}

	var acct StoredAccount
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, password FROM accounts WHERE email = $1`,
		email,
	).Scan(&acct.ID, &acct.Email, &acct.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return StoredAccount{}, ErrAccountNotFound
		}
		return StoredAccount{}, rejection.DatabaseError{Op: op, Err: err}
	}

	return acct, nil
}
