// Package authapi exposes the registration and login endpoints. It hashes
// credentials on the way in and issues session tokens on the way out; every
// failure is funneled through the rejection responder.
package authapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"qna/cmd/identity"
	"qna/cmd/internal/auth/session"
	"qna/cmd/internal/rejection"
	"qna/cmd/security/password"
)

// Handler serves POST /registration and POST /login.
type Handler struct {
	log          *slog.Logger
	accounts     identity.Store
	tokens       session.TokenManager
	hashParams   password.Params
	maxBodyBytes int64
	now          func() time.Time

	// dummyHash is verified against when the email is unknown so that a
	// failed lookup costs as much as a failed password.
	dummyHash string
}

// NewHandler constructs an auth Handler.
func NewHandler(log *slog.Logger, accounts identity.Store, tokens session.TokenManager, hashParams password.Params) *Handler {
	if log == nil {
		log = slog.Default()
	}
	dummy, _ := password.Hash("decoy", hashParams)
	return &Handler{
		log:          log,
		accounts:     accounts,
		tokens:       tokens,
		hashParams:   hashParams,
		maxBodyBytes: 1 << 20,
		now:          time.Now,
		dummyHash:    dummy,
	}
}

// Register serves POST /registration. The plaintext password is hashed with
// Argon2id before it reaches the store; the plaintext itself is never
// persisted or logged.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var creds identity.Credentials
	if err := h.decode(w, r, &creds); err != nil {
		rejection.Respond(w, r, rejection.MalformedBody{Err: err})
		return
	}

	hash, err := password.Hash(creds.Password, h.hashParams)
	if err != nil {
		rejection.Respond(w, r, rejection.HashError{Err: err})
		return
	}

	if err := h.accounts.AddAccount(r.Context(), identity.StoredAccount{
		Email:        creds.Email,
		PasswordHash: hash,
	}); err != nil {
		rejection.Respond(w, r, err)
		return
	}

	writeText(w, http.StatusOK, "Account added")
}

// Login serves POST /login. An unknown email and a mismatching password
// produce the identical rejection; only an internal hasher fault is surfaced
// differently.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds identity.Credentials
	if err := h.decode(w, r, &creds); err != nil {
		rejection.Respond(w, r, rejection.MalformedBody{Err: err})
		return
	}

	acct, err := h.accounts.GetAccountByEmail(r.Context(), creds.Email)
	if err != nil {
		if errors.Is(err, identity.ErrAccountNotFound) {
			_, _ = password.Verify(h.dummyHash, creds.Password, h.hashParams)
			rejection.Respond(w, r, rejection.ErrWrongPassword)
			return
		}
		rejection.Respond(w, r, err)
		return
	}

	ok, err := password.Verify(acct.PasswordHash, creds.Password, h.hashParams)
	if err != nil {
		rejection.Respond(w, r, rejection.HashError{Err: err})
		return
	}
	if !ok {
		rejection.Respond(w, r, rejection.ErrWrongPassword)
		return
	}

	token, err := h.tokens.Issue(acct.ID, h.now())
	if err != nil {
		h.log.Error("authapi.issue_token", "err", err)
		writeText(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, token)
}
