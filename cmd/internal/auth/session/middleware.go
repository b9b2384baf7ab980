package session

import (
	"context"
	"net/http"
	"strings"
	"time"

	"qna/cmd/internal/rejection"
)

type ctxKey int

const sessionKey ctxKey = iota

// WithSession stores a Session in ctx.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext returns the Session injected by the extractor middleware.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey).(Session)
	return s, ok
}

// Extract is the pipeline filter guarding mutating routes.
//
// It reads the Authorization header and validates the bearer token. A missing
// header short-circuits before the token manager even runs; an invalid token
// short-circuits after. Both reject with the single token rejection, so the
// client cannot tell which case occurred. On success the Session is injected
// into the request context and the handler runs.
func Extract(tokens TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				rejection.Respond(w, r, rejection.ErrToken)
				return
			}
			raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))

			sess, err := tokens.Validate(raw, time.Now().UTC())
			if err != nil {
				rejection.Respond(w, r, rejection.ErrToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}
