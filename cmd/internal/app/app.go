// Package app wires the server runtime: config, logging, database, routes and
// the auth pipeline.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"qna/cmd/identity"
	authapi "qna/cmd/internal/auth/api"
	"qna/cmd/internal/auth/session"
	"qna/cmd/internal/forum"
	"qna/cmd/internal/profanity"
	"qna/cmd/security/password"
)

// App owns the HTTP server and the database pool.
type App struct {
	cfg     Config
	log     Logger
	pool    *pgxpool.Pool
	handler http.Handler
}

// New constructs a fully wired App: pool, migrations, stores, token manager,
// hasher parameters, profanity client and the route tree. Any missing or
// invalid security configuration fails construction.
func New(ctx context.Context, cfg Config, log Logger) (*App, error) {
	if log == nil {
		log = NewLogger(cfg.LogLevel, cfg.LogFormat)
	}

	pool, err := NewDBPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.MigrateOnStart {
		if err := Migrate(ctx, cfg); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info("db.migrated")
	}

	sessCfg, err := session.LoadConfigFromEnv()
	if err != nil {
		pool.Close()
		return nil, err
	}
	tokens, err := session.NewPasetoV4LocalManager(sessCfg)
	if err != nil {
		pool.Close()
		return nil, err
	}

	hashParams, err := password.FromEnv()
	if err != nil {
		pool.Close()
		return nil, err
	}

	accounts, err := identity.NewPostgresStore(pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	questions, err := forum.NewPostgresStore(pool)
	if err != nil {
		pool.Close()
		return nil, err
	}

	bleep := profanity.NewClient(log, cfg.BadWordsAPIKey)

	auth := authapi.NewHandler(log, accounts, tokens, hashParams)
	forumHandler := forum.NewHandler(log, questions, bleep, int64(cfg.MaxBodyBytes))

	handler := newRouter(routerDeps{
		log:     log,
		cfg:     cfg,
		pool:    pool,
		auth:    auth,
		forum:   forumHandler,
		tokens:  tokens,
		metrics: newMetrics(),
	})

	return &App{
		cfg:     cfg,
		log:     log,
		pool:    pool,
		handler: handler,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or fatal
// server error.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           a.handler,
		ReadHeaderTimeout: a.cfg.ReadHeaderTimeout,
		ReadTimeout:       a.cfg.ReadTimeout,
		WriteTimeout:      a.cfg.WriteTimeout,
		IdleTimeout:       a.cfg.IdleTimeout,
		MaxHeaderBytes:    a.cfg.MaxHeaderBytes,
	}

	a.log.Info("server.start", "addr", a.cfg.HTTPAddr)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info("server.stop", "reason", "context_done")
	case err := <-errCh:
		a.log.Error("server.fail", "err", err)
		a.pool.Close()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Error("server.shutdown.fail", "err", err)
		a.pool.Close()
		return err
	}

	a.pool.Close()
	a.log.Info("server.stopped")
	return nil
}
