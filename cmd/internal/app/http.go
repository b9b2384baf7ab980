package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	authapi "qna/cmd/internal/auth/api"
	"qna/cmd/internal/auth/session"
	"qna/cmd/internal/forum"
	"qna/cmd/internal/rejection"
)

type routerDeps struct {
	log     Logger
	cfg     Config
	pool    *pgxpool.Pool
	auth    *authapi.Handler
	forum   *forum.Handler
	tokens  session.TokenManager
	metrics *metrics
}

// newRouter builds the full route tree. Mutating forum routes sit behind the
// session extractor; everything else is anonymous. Unmatched routes and
// mismatched methods share the same terminal rejection.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(func(next http.Handler) http.Handler { return WithRequestID(next, d.log) })
	r.Use(func(next http.Handler) http.Handler { return WithRequestLogging(next, d.log) })
	if d.metrics != nil {
		r.Use(d.metrics.middleware)
	}
	r.Use(func(next http.Handler) http.Handler { return WithCORS(next, d.cfg, d.log) })

	r.NotFound(rejection.NotFound())
	r.MethodNotAllowed(rejection.NotFound())

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if d.pool != nil {
			if err := PingDB(req.Context(), d.pool, 2*time.Second); err != nil {
				d.log.Info("readyz.db.not_ready", "err", err)
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready\n"))
	})

	if d.metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.metrics.handler())
	}

	r.Post("/registration", d.auth.Register)
	r.Post("/login", d.auth.Login)

	r.Get("/questions", d.forum.ListQuestions)
	r.Get("/questions/{id}", d.forum.GetQuestion)

	r.Group(func(r chi.Router) {
		r.Use(session.Extract(d.tokens))
		r.Post("/questions", d.forum.AddQuestion)
		r.Put("/questions/{id}", d.forum.UpdateQuestion)
		r.Delete("/questions/{id}", d.forum.DeleteQuestion)
		r.Post("/answers", d.forum.AddAnswer)
	})

	return r
}
