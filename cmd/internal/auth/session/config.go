package session

import (
	"os"
	"time"
)

// Config defines runtime configuration for token issuance and validation.
//
// It is environment-driven so deployments can tune the token lifetime without
// code changes. The symmetric key is mandatory: a process without it must not
// come up, since every mutating route depends on token validation.
type Config struct {
	// TokenTTL defines the validity window of issued tokens.
	TokenTTL time.Duration

	// TokenKeyHex is the hex-encoded 32-byte symmetric key used to encrypt
	// PASETO v4.local tokens.
	TokenKeyHex string
}

// DefaultConfig returns the reference token lifetime. The key has no default.
func DefaultConfig() Config {
	return Config{
		TokenTTL: 24 * time.Hour,
	}
}

// LoadConfigFromEnv loads session configuration from environment variables.
//
// Required:
//   - QNA_PASETO_KEY (hex-encoded 32-byte symmetric key)
//
// Optional:
//   - QNA_TOKEN_TTL (Go duration string)
//
// Returns ErrConfig when the key is absent or a value is invalid.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("QNA_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, ErrConfig
		}
		cfg.TokenTTL = d
	}

	cfg.TokenKeyHex = os.Getenv("QNA_PASETO_KEY")
	if cfg.TokenKeyHex == "" {
		return Config{}, ErrConfig
	}

	return cfg, nil
}
