package forum

import "context"

// Store is the question/answer persistence boundary. Every mutating method
// takes the acting account id for write attribution; update and delete also
// carry it in the query predicate so a mutation can never outrun the
// ownership check.
type Store interface {
	GetQuestions(ctx context.Context, p Pagination) ([]Question, error)

	// GetQuestion returns the question or the question-not-found rejection.
	GetQuestion(ctx context.Context, id int32) (Question, error)

	AddQuestion(ctx context.Context, q NewQuestion, accountID int32) (Question, error)

	// UpdateQuestion applies the combined id+owner predicate; a miss on
	// either yields no update.
	UpdateQuestion(ctx context.Context, id int32, q NewQuestion, accountID int32) (Question, error)

	// DeleteQuestion applies the combined id+owner predicate.
	DeleteQuestion(ctx context.Context, id int32, accountID int32) error

	// IsQuestionOwner reports whether the account owns the question. A
	// nonexistent question is "not owner", never a distinct not-found: update
	// or delete on a missing id and on someone else's id must be
	// indistinguishable to the client.
	IsQuestionOwner(ctx context.Context, id int32, accountID int32) (bool, error)

	AddAnswer(ctx context.Context, a NewAnswer, accountID int32) (Answer, error)
}
