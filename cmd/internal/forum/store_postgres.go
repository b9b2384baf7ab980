package forum

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"qna/cmd/internal/rejection"
)

// PostgresStore implements Store over PostgreSQL. The pool is owned by the
// caller and must not be closed here.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs a PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("forum: nil pool")
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) GetQuestions(ctx context.Context, p Pagination) ([]Question, error) {
	const op = "forum.GetQuestions"

	// NULLIF turns the no-limit sentinel into LIMIT NULL.
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, content, tags, account_id
		   FROM questions
		  ORDER BY id
		  LIMIT NULLIF($1, -1) OFFSET $2`,
		p.Limit,
		p.Offset,
	)
	if err != nil {
		return nil, rejection.DatabaseError{Op: op, Err: err}
	}
	defer rows.Close()

	questions := []Question{}
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.Title, &q.Content, &q.Tags, &q.AccountID); err != nil {
			return nil, rejection.DatabaseError{Op: op, Err: err}
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, rejection.DatabaseError{Op: op, Err: err}
	}

	return questions, nil
}

func (s *PostgresStore) GetQuestion(ctx context.Context, id int32) (Question, error) {
	const op = "forum.GetQuestion"

	var q Question
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, content, tags, account_id FROM questions WHERE id = $1`,
		id,
	).Scan(&q.ID, &q.Title, &q.Content, &q.Tags, &q.AccountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Question{}, rejection.ErrQuestionNotFound
		}
		return Question{}, rejection.DatabaseError{Op: op, Err: err}
	}

	return q, nil
}

func (s *PostgresStore) AddQuestion(ctx context.Context, nq NewQuestion, accountID int32) (Question, error) {
	const op = "forum.AddQuestion"

	var q Question
	err := s.pool.QueryRow(ctx,
		`INSERT INTO questions (title, content, tags, account_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, content, tags, account_id`,
		nq.Title,
		nq.Content,
		nq.Tags,
		accountID,
	).Scan(&q.ID, &q.Title, &q.Content, &q.Tags, &q.AccountID)
	if err != nil {
		return Question{}, rejection.DatabaseError{Op: op, Err: err}
	}

	return q, nil
}

// UpdateQuestion mutates only when both id and owner match, closing the race
// between the explicit ownership check and the write.
func (s *PostgresStore) UpdateQuestion(ctx context.Context, id int32, nq NewQuestion, accountID int32) (Question, error) {
	const op = "forum.UpdateQuestion"

	var q Question
	err := s.pool.QueryRow(ctx,
		`UPDATE questions
		    SET title = $1, content = $2, tags = $3
		  WHERE id = $4 AND account_id = $5
		 RETURNING id, title, content, tags, account_id`,
		nq.Title,
		nq.Content,
		nq.Tags,
		id,
		accountID,
	).Scan(&q.ID, &q.Title, &q.Content, &q.Tags, &q.AccountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Row vanished or changed hands after the ownership check.
			return Question{}, rejection.ErrUnauthorized
		}
		return Question{}, rejection.DatabaseError{Op: op, Err: err}
	}

	return q, nil
}

func (s *PostgresStore) DeleteQuestion(ctx context.Context, id int32, accountID int32) error {
	const op = "forum.DeleteQuestion"

	tag, err := s.pool.Exec(ctx,
		`DELETE FROM questions WHERE id = $1 AND account_id = $2`,
		id,
		accountID,
	)
	if err != nil {
		return rejection.DatabaseError{Op: op, Err: err}
	}
	if tag.RowsAffected() == 0 {
		return rejection.ErrUnauthorized
	}

	return nil
}

func (s *PostgresStore) IsQuestionOwner(ctx context.Context, id int32, accountID int32) (bool, error) {
	const op = "forum.IsQuestionOwner"

	var found int32
	err := s.pool.QueryRow(ctx,
		`SELECT id FROM questions WHERE id = $1 AND account_id = $2`,
		id,
		accountID,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, rejection.DatabaseError{Op: op, Err: err}
	}

	return true, nil
}

func (s *PostgresStore) AddAnswer(ctx context.Context, na NewAnswer, accountID int32) (Answer, error) {
	const op = "forum.AddAnswer"

	var a Answer
	err := s.pool.QueryRow(ctx,
		`INSERT INTO answers (content, question_id, account_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, content, question_id`,
		na.Content,
		na.QuestionID,
		accountID,
	).Scan(&a.ID, &a.Content, &a.QuestionID)
	if err != nil {
		return Answer{}, rejection.DatabaseError{Op: op, Err: err}
	}

	return a, nil
}
