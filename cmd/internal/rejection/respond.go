package rejection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type ctxKey int

const loggerKey ctxKey = iota

// WithLogger stores a request-scoped logger in ctx. The request-id middleware
// attaches one per request so every rejection log line carries the id.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

func loggerFrom(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}

// Respond converts any pipeline error into its fixed HTTP response.
//
// The mapping is closed: an error that matches none of the known kinds is
// treated as an unmatched route. Internal detail (driver errors, API
// payloads, hash faults) is logged server-side only.
func Respond(w http.ResponseWriter, r *http.Request, err error) {
	log := loggerFrom(r.Context())

	var (
		parseErr    ParseError
		bodyErr     MalformedBody
		corsErr     CORSForbidden
		dbErr       DatabaseError
		externalErr ExternalAPIError
		apiErr      APILayerError
		hashErr     HashError
	)

	switch {
	case errors.As(err, &corsErr):
		writeText(w, http.StatusForbidden, corsErr.Error())

	case errors.As(err, &bodyErr):
		// Framework-level detail is part of the body here, mirroring how the
		// deserializer rejection has always surfaced.
		writeText(w, http.StatusNotFound, bodyErr.Error())

	case errors.Is(err, ErrMissingParameters):
		writeText(w, http.StatusExpectationFailed, "Missing Parameters")

	case errors.Is(err, ErrInvalidRange):
		writeText(w, http.StatusRequestedRangeNotSatisfiable, "Invalid range")

	case errors.As(err, &parseErr):
		writeText(w, http.StatusExpectationFailed, fmt.Sprintf("Parse error: %v", parseErr.Err))

	case errors.Is(err, ErrQuestionNotFound):
		writeText(w, http.StatusNotFound, "Question not found")

	case errors.Is(err, ErrWrongPassword):
		writeText(w, http.StatusUnauthorized, "Wrong E-Mail/Password combination")

	case errors.Is(err, ErrUnauthorized):
		writeText(w, http.StatusUnauthorized, "Unauthorized")

	case errors.Is(err, ErrToken):
		writeText(w, http.StatusUnauthorized, "Token Error")

	case errors.As(err, &dbErr):
		log.Error("rejection.database", "op", dbErr.Op, "err", dbErr.Err)
		if isUniqueViolation(dbErr.Err) {
			writeText(w, http.StatusUnprocessableEntity, "Account already exists")
			return
		}
		writeText(w, http.StatusInternalServerError, "Database Query Error")

	case errors.As(err, &externalErr):
		log.Error("rejection.external_api", "err", externalErr.Err)
		writeText(w, http.StatusInternalServerError, "External api error")

	case errors.As(err, &apiErr):
		log.Error("rejection.api_layer", "status", apiErr.Status, "message", apiErr.Message)
		writeText(w, http.StatusInternalServerError, "Internal server error")

	case errors.As(err, &hashErr):
		log.Error("rejection.hash", "err", hashErr.Err)
		writeText(w, http.StatusInternalServerError, "Internal server error")

	default:
		log.Warn("rejection.unmatched", "err", err)
		writeText(w, http.StatusNotFound, "Route not found")
	}
}

// NotFound is the terminal handler for unmatched routes.
func NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeText(w, http.StatusNotFound, "Route not found")
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
