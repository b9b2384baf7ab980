package session

import (
	"errors"
	"testing"
	"time"

	paseto "aidanwoods.dev/go-paseto"
)

func testManager(t *testing.T) TokenManager {
	t.Helper()
	cfg := DefaultConfig()
	cfg.TokenKeyHex = paseto.NewV4SymmetricKey().ExportHex()

	mgr, err := NewPasetoV4LocalManager(cfg)
	if err != nil {
		t.Fatalf("NewPasetoV4LocalManager: %v", err)
	}
	return mgr
}

func TestToken_IssueAndValidate(t *testing.T) {
	mgr := testManager(t)
	now := time.Now().UTC()

	tok, err := mgr.Issue(42, now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if tok == "" {
		t.Fatalf("empty token")
	}

	sess, err := mgr.Validate(tok, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if sess.AccountID != 42 {
		t.Fatalf("expected account 42, got %d", sess.AccountID)
	}
}

func TestToken_ValidityWindow(t *testing.T) {
	mgr := testManager(t)
	t0 := time.Now().UTC()

	tok, err := mgr.Issue(7, t0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	cases := []struct {
		name string
		at   time.Time
		ok   bool
	}{
		{"at issuance", t0, true},
		{"mid window", t0.Add(12 * time.Hour), true},
		{"at expiry", t0.Add(24 * time.Hour), true},
		{"one second past expiry", t0.Add(24*time.Hour + time.Second), false},
		{"before not-before", t0.Add(-time.Second), false},
	}

	for _, tc := range cases {
		_, err := mgr.Validate(tok, tc.at)
		if tc.ok && err != nil {
			t.Fatalf("%s: expected valid, got %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", tc.name, err)
		}
	}
}

func TestToken_WrongKeyIsIndistinguishable(t *testing.T) {
	issuer := testManager(t)
	verifier := testManager(t) // different random key

	now := time.Now().UTC()
	tok, err := issuer.Issue(7, now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = verifier.Validate(tok, now)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	// Forged and expired tokens must be the same error: no probing oracle.
	_, garbageErr := verifier.Validate("v4.local.garbage", now)
	if !errors.Is(garbageErr, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", garbageErr)
	}

	expired, err := issuer.Issue(7, now.Add(-48*time.Hour))
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	_, expiredErr := issuer.Validate(expired, now)
	if !errors.Is(expiredErr, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", expiredErr)
	}
	if expiredErr.Error() != garbageErr.Error() {
		t.Fatalf("expired and forged tokens must be indistinguishable")
	}
}

func TestToken_MalformedClaim(t *testing.T) {
	cfg := DefaultConfig()
	key := paseto.NewV4SymmetricKey()
	cfg.TokenKeyHex = key.ExportHex()

	mgr, err := NewPasetoV4LocalManager(cfg)
	if err != nil {
		t.Fatalf("NewPasetoV4LocalManager: %v", err)
	}

	// Well-encrypted token without the account claim.
	now := time.Now().UTC()
	tok := paseto.NewToken()
	tok.SetIssuedAt(now)
	tok.SetNotBefore(now)
	tok.SetExpiration(now.Add(time.Hour))

	if _, err := mgr.Validate(tok.V4Encrypt(key, nil), now); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for missing claim, got %v", err)
	}
}

func TestNewManager_RejectsBadKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TokenKeyHex = "deadbeef"

	if _, err := NewPasetoV4LocalManager(cfg); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}
