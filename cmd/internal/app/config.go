package app

import (
	"errors"
	"time"
)

// Config contains all runtime configuration loaded from environment variables.
// Token and hashing configuration live with their own packages; this struct
// covers the server, database, CORS and call-out settings.
type Config struct {
	HTTPAddr  string
	LogLevel  string
	LogFormat string

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	MaxBodyBytes      int

	DatabaseURL    string
	DBMaxConns     int32
	DBMinConns     int32
	MigrateOnStart bool

	CORSAllowedOrigins   []string
	CORSAllowCredentials bool
	CORSMaxAgeSeconds    int

	BadWordsAPIKey string
}

// LoadConfig loads Config from environment variables with defaults.
//
// QNA_DATABASE_URL and BAD_WORDS_API_KEY are mandatory: the service stores
// everything in Postgres and filters every submission through the bad-words
// API, so a process without either must not come up.
func LoadConfig() (Config, error) {
	cfg := Config{
		HTTPAddr:  EnvString("QNA_HTTP_ADDR", "0.0.0.0:8080"),
		LogLevel:  EnvString("QNA_LOG_LEVEL", "info"),
		LogFormat: EnvString("QNA_LOG_FORMAT", "json"),

		ReadHeaderTimeout: EnvDuration("QNA_HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
		ReadTimeout:       EnvDuration("QNA_HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      EnvDuration("QNA_HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:       EnvDuration("QNA_HTTP_IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    EnvInt("QNA_HTTP_MAX_HEADER_BYTES", 1<<20),
		MaxBodyBytes:      EnvInt("QNA_HTTP_MAX_BODY_BYTES", 1<<20),

		DatabaseURL:    EnvString("QNA_DATABASE_URL", ""),
		DBMaxConns:     EnvInt32("QNA_DB_MAX_CONNS", 10),
		DBMinConns:     EnvInt32("QNA_DB_MIN_CONNS", 0),
		MigrateOnStart: EnvBool("QNA_DB_MIGRATE", true),

		CORSAllowedOrigins:   EnvStrings("QNA_CORS_ALLOWED_ORIGINS", nil),
		CORSAllowCredentials: EnvBool("QNA_CORS_ALLOW_CREDENTIALS", false),
		CORSMaxAgeSeconds:    EnvInt("QNA_CORS_MAX_AGE_SECONDS", 600),

		BadWordsAPIKey: EnvString("BAD_WORDS_API_KEY", ""),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("config: QNA_DATABASE_URL is required")
	}
	if cfg.BadWordsAPIKey == "" {
		return Config{}, errors.New("config: BAD_WORDS_API_KEY is required")
	}

	return cfg, nil
}
