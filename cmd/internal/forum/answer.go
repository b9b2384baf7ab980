package forum

// Answer is a persisted answer row.
type Answer struct {
	ID         int32  `json:"id"`
	Content    string `json:"content"`
	QuestionID int32  `json:"question_id"`
}

// NewAnswer is the client payload for answering a question.
type NewAnswer struct {
	Content    string `json:"content"`
	QuestionID int32  `json:"question_id"`
}
