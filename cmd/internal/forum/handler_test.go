package forum

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"qna/cmd/internal/auth/session"
	"qna/cmd/internal/rejection"
)

type fakeStore struct {
	questions map[int32]Question

	ownerCalls  int
	updateCalls int
	deleteCalls int
	storeCalls  int

	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{questions: map[int32]Question{
		5: {ID: 5, Title: "how do I exit vim", Content: "asking for a friend", AccountID: 1},
	}}
}

func (f *fakeStore) GetQuestions(_ context.Context, _ Pagination) ([]Question, error) {
	f.storeCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []Question{}
	for _, q := range f.questions {
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeStore) GetQuestion(_ context.Context, id int32) (Question, error) {
	f.storeCalls++
	q, ok := f.questions[id]
	if !ok {
		return Question{}, rejection.ErrQuestionNotFound
	}
	return q, nil
}

func (f *fakeStore) AddQuestion(_ context.Context, nq NewQuestion, accountID int32) (Question, error) {
	f.storeCalls++
	if f.failWith != nil {
		return Question{}, f.failWith
	}
	q := Question{ID: int32(len(f.questions)) + 100, Title: nq.Title, Content: nq.Content, Tags: nq.Tags, AccountID: accountID}
	f.questions[q.ID] = q
	return q, nil
}

func (f *fakeStore) UpdateQuestion(_ context.Context, id int32, nq NewQuestion, accountID int32) (Question, error) {
	f.storeCalls++
	f.updateCalls++
	q, ok := f.questions[id]
	if !ok || q.AccountID != accountID {
		return Question{}, rejection.ErrUnauthorized
	}
	q.Title, q.Content, q.Tags = nq.Title, nq.Content, nq.Tags
	f.questions[id] = q
	return q, nil
}

func (f *fakeStore) DeleteQuestion(_ context.Context, id int32, accountID int32) error {
	f.storeCalls++
	f.deleteCalls++
	q, ok := f.questions[id]
	if !ok || q.AccountID != accountID {
		return rejection.ErrUnauthorized
	}
	delete(f.questions, id)
	return nil
}

func (f *fakeStore) IsQuestionOwner(_ context.Context, id int32, accountID int32) (bool, error) {
	f.storeCalls++
	f.ownerCalls++
	if f.failWith != nil {
		return false, f.failWith
	}
	q, ok := f.questions[id]
	return ok && q.AccountID == accountID, nil
}

func (f *fakeStore) AddAnswer(_ context.Context, na NewAnswer, _ int32) (Answer, error) {
	f.storeCalls++
	if f.failWith != nil {
		return Answer{}, f.failWith
	}
	return Answer{ID: 1, Content: na.Content, QuestionID: na.QuestionID}, nil
}

type fakeProfanity struct {
	mu    sync.Mutex
	err   error
	calls int
}

// Check is called concurrently for title and content.
func (f *fakeProfanity) Check(_ context.Context, text string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return strings.ReplaceAll(text, "dang", "****"), nil
}

// asAccount injects a session the way the extractor middleware would.
func asAccount(id int32) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := session.WithSession(r.Context(), session.Session{AccountID: id})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func testRouter(h *Handler, mw ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/questions", h.ListQuestions)
	r.Get("/questions/{id}", h.GetQuestion)
	r.Group(func(r chi.Router) {
		for _, m := range mw {
			r.Use(m)
		}
		r.Post("/questions", h.AddQuestion)
		r.Put("/questions/{id}", h.UpdateQuestion)
		r.Delete("/questions/{id}", h.DeleteQuestion)
		r.Post("/answers", h.AddAnswer)
	})
	return r
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestGetQuestion_NotFound(t *testing.T) {
	h := NewHandler(nil, newFakeStore(), &fakeProfanity{}, 0)
	router := testRouter(h)

	w := do(t, router, http.MethodGet, "/questions/999", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Question not found", w.Body.String())
}

func TestGetQuestion_BadID(t *testing.T) {
	h := NewHandler(nil, newFakeStore(), &fakeProfanity{}, 0)
	router := testRouter(h)

	w := do(t, router, http.MethodGet, "/questions/five", "")
	require.Equal(t, http.StatusExpectationFailed, w.Code)
	require.True(t, strings.HasPrefix(w.Body.String(), "Parse error: "), w.Body.String())
}

func TestListQuestions_PaginationRejections(t *testing.T) {
	store := newFakeStore()
	h := NewHandler(nil, store, &fakeProfanity{}, 0)
	router := testRouter(h)

	w := do(t, router, http.MethodGet, "/questions?start=10", "")
	require.Equal(t, http.StatusExpectationFailed, w.Code)
	require.Equal(t, "Missing Parameters", w.Body.String())

	w = do(t, router, http.MethodGet, "/questions?start=30&end=10", "")
	require.Equal(t, http.StatusRequestedRangeNotSatisfiable, w.Code)
	require.Equal(t, "Invalid range", w.Body.String())

	// Rejected before the store runs.
	require.Equal(t, 0, store.storeCalls)
}

func TestAddQuestion_FiltersProfanity(t *testing.T) {
	store := newFakeStore()
	bleep := &fakeProfanity{}
	h := NewHandler(nil, store, bleep, 0)
	router := testRouter(h, asAccount(1))

	w := do(t, router, http.MethodPost, "/questions", `{"title":"dang it","content":"dang dang","tags":["go"]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "Question added", w.Body.String())
	require.Equal(t, 2, bleep.calls) // title and content

	var stored Question
	for _, q := range store.questions {
		if q.Title == "**** it" {
			stored = q
		}
	}
	require.Equal(t, "**** ****", stored.Content)
	require.Equal(t, int32(1), stored.AccountID)
}

func TestAddQuestion_ProfanityFailure(t *testing.T) {
	store := newFakeStore()
	bleep := &fakeProfanity{err: rejection.ExternalAPIError{Err: errors.New("dial tcp: timeout")}}
	h := NewHandler(nil, store, bleep, 0)
	router := testRouter(h, asAccount(1))

	before := len(store.questions)
	w := do(t, router, http.MethodPost, "/questions", `{"title":"t","content":"c"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "External api error", w.Body.String())
	require.Len(t, store.questions, before)
}

func TestAddQuestion_MalformedBody(t *testing.T) {
	h := NewHandler(nil, newFakeStore(), &fakeProfanity{}, 0)
	router := testRouter(h, asAccount(1))

	w := do(t, router, http.MethodPost, "/questions", `{"title": 12`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "malformed request body")
}

func TestUpdateQuestion_NonOwnerAndMissingLookIdentical(t *testing.T) {
	store := newFakeStore()
	h := NewHandler(nil, store, &fakeProfanity{}, 0)
	router := testRouter(h, asAccount(2)) // question 5 belongs to account 1

	nonOwner := do(t, router, http.MethodPut, "/questions/5", `{"title":"t","content":"c"}`)
	missing := do(t, router, http.MethodPut, "/questions/999", `{"title":"t","content":"c"}`)

	require.Equal(t, http.StatusUnauthorized, nonOwner.Code)
	require.Equal(t, http.StatusUnauthorized, missing.Code)
	require.Equal(t, "Unauthorized", nonOwner.Body.String())
	require.Equal(t, nonOwner.Body.String(), missing.Body.String())

	// The mutation must never have been attempted.
	require.Equal(t, 0, store.updateCalls)
}

func TestDeleteQuestion_OwnerSucceeds(t *testing.T) {
	store := newFakeStore()
	h := NewHandler(nil, store, &fakeProfanity{}, 0)
	router := testRouter(h, asAccount(1))

	w := do(t, router, http.MethodDelete, "/questions/5", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Question deleted", w.Body.String())
	require.NotContains(t, store.questions, int32(5))
}

func TestDeleteQuestion_NonOwnerRejected(t *testing.T) {
	store := newFakeStore()
	h := NewHandler(nil, store, &fakeProfanity{}, 0)
	router := testRouter(h, asAccount(2))

	w := do(t, router, http.MethodDelete, "/questions/5", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Unauthorized", w.Body.String())
	require.Contains(t, store.questions, int32(5))
	require.Equal(t, 0, store.deleteCalls)
}

func TestOwnershipCheckFailure_IsDatabaseError(t *testing.T) {
	store := newFakeStore()
	store.failWith = rejection.DatabaseError{Op: "forum.IsQuestionOwner", Err: errors.New("conn reset")}
	h := NewHandler(nil, store, &fakeProfanity{}, 0)
	router := testRouter(h, asAccount(1))

	w := do(t, router, http.MethodDelete, "/questions/5", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "Database Query Error", w.Body.String())
}

func TestAddAnswer_OK(t *testing.T) {
	store := newFakeStore()
	h := NewHandler(nil, store, &fakeProfanity{}, 0)
	router := testRouter(h, asAccount(1))

	w := do(t, router, http.MethodPost, "/answers", `{"content":"dang good answer","question_id":5}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "Answer added", w.Body.String())
}

func TestMutations_WithoutSessionRejected(t *testing.T) {
	store := newFakeStore()
	h := NewHandler(nil, store, &fakeProfanity{}, 0)
	router := testRouter(h) // no session middleware at all

	w := do(t, router, http.MethodPost, "/questions", `{"title":"t","content":"c"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Token Error", w.Body.String())
	require.Equal(t, 0, store.storeCalls)
}
