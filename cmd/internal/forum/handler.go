package forum

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"qna/cmd/internal/auth/session"
	"qna/cmd/internal/rejection"
)

// ProfanityChecker is the external call-out filtering user-submitted text.
type ProfanityChecker interface {
	Check(ctx context.Context, text string) (string, error)
}

// Handler wires the question/answer routes to the store and the profanity
// call-out.
type Handler struct {
	log          *slog.Logger
	store        Store
	profanity    ProfanityChecker
	maxBodyBytes int64
}

// NewHandler constructs a forum Handler.
func NewHandler(log *slog.Logger, store Store, profanity ProfanityChecker, maxBodyBytes int64) *Handler {
	if log == nil {
		log = slog.Default()
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = 1 << 20
	}
	return &Handler{
		log:          log,
		store:        store,
		profanity:    profanity,
		maxBodyBytes: maxBodyBytes,
	}
}

// ListQuestions serves GET /questions. Anonymous.
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	p, err := PaginationFromQuery(r.URL.Query())
	if err != nil {
		rejection.Respond(w, r, err)
		return
	}

	questions, err := h.store.GetQuestions(r.Context(), p)
	if err != nil {
		rejection.Respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, questions)
}

// GetQuestion serves GET /questions/{id}. Anonymous.
func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := questionID(r)
	if err != nil {
		rejection.Respond(w, r, err)
		return
	}

	q, err := h.store.GetQuestion(r.Context(), id)
	if err != nil {
		rejection.Respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, q)
}

// AddQuestion serves POST /questions. Requires a session.
func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		rejection.Respond(w, r, rejection.ErrToken)
		return
	}

	var nq NewQuestion
	if err := h.decode(w, r, &nq); err != nil {
		rejection.Respond(w, r, rejection.MalformedBody{Err: err})
		return
	}

	// Title and content are filtered concurrently; either failure rejects.
	g, ctx := errgroup.WithContext(r.Context())
	var title, content string
	g.Go(func() error {
		var err error
		title, err = h.profanity.Check(ctx, nq.Title)
		return err
	})
	g.Go(func() error {
		var err error
		content, err = h.profanity.Check(ctx, nq.Content)
		return err
	})
	if err := g.Wait(); err != nil {
		rejection.Respond(w, r, err)
		return
	}

	if _, err := h.store.AddQuestion(r.Context(), NewQuestion{
		Title:   title,
		Content: content,
		Tags:    nq.Tags,
	}, sess.AccountID); err != nil {
		rejection.Respond(w, r, err)
		return
	}

	writeText(w, http.StatusCreated, "Question added")
}

// UpdateQuestion serves PUT /questions/{id}. Requires a session and
// ownership.
func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		rejection.Respond(w, r, rejection.ErrToken)
		return
	}

	id, err := questionID(r)
	if err != nil {
		rejection.Respond(w, r, err)
		return
	}

	owner, err := h.store.IsQuestionOwner(r.Context(), id, sess.AccountID)
	if err != nil {
		rejection.Respond(w, r, err)
		return
	}
	if !owner {
		rejection.Respond(w, r, rejection.ErrUnauthorized)
		return
	}

	var nq NewQuestion
	if err := h.decode(w, r, &nq); err != nil {
		rejection.Respond(w, r, rejection.MalformedBody{Err: err})
		return
	}

	title, err := h.profanity.Check(r.Context(), nq.Title)
	if err != nil {
		rejection.Respond(w, r, err)
		return
	}
	content, err := h.profanity.Check(r.Context(), nq.Content)
	if err != nil {
		rejection.Respond(w, r, err)
		return
	}

	if _, err := h.store.UpdateQuestion(r.Context(), id, NewQuestion{
		Title:   title,
		Content: content,
		Tags:    nq.Tags,
	}, sess.AccountID); err != nil {
		rejection.Respond(w, r, err)
		return
	}

	writeText(w, http.StatusOK, "Question updated")
}

// DeleteQuestion serves DELETE /questions/{id}. Requires a session and
// ownership.
func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		rejection.Respond(w, r, rejection.ErrToken)
		return
	}

	id, err := questionID(r)
	if err != nil {
		rejection.Respond(w, r, err)
		return
	}

	owner, err := h.store.IsQuestionOwner(r.Context(), id, sess.AccountID)
	if err != nil {
		rejection.Respond(w, r, err)
		return
	}
	if !owner {
		rejection.Respond(w, r, rejection.ErrUnauthorized)
		return
	}

	if err := h.store.DeleteQuestion(r.Context(), id, sess.AccountID); err != nil {
		rejection.Respond(w, r, err)
		return
	}

	writeText(w, http.StatusOK, "Question deleted")
}

// AddAnswer serves POST /answers. Requires a session.
func (h *Handler) AddAnswer(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		rejection.Respond(w, r, rejection.ErrToken)
		return
	}

	var na NewAnswer
	if err := h.decode(w, r, &na); err != nil {
		rejection.Respond(w, r, rejection.MalformedBody{Err: err})
		return
	}

	content, err := h.profanity.Check(r.Context(), na.Content)
	if err != nil {
		rejection.Respond(w, r, err)
		return
	}

	if _, err := h.store.AddAnswer(r.Context(), NewAnswer{
		Content:    content,
		QuestionID: na.QuestionID,
	}, sess.AccountID); err != nil {
		rejection.Respond(w, r, err)
		return
	}

	writeText(w, http.StatusCreated, "Answer added")
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	defer func() { _ = r.Body.Close() }()
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	return json.NewDecoder(body).Decode(dst)
}

func questionID(r *http.Request) (int32, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, rejection.ParseError{Err: err}
	}
	return int32(id), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
