package forum

// Question is a persisted question row. AccountID identifies the owner and
// is attribution only; it is never serialized to clients.
type Question struct {
	ID        int32    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags,omitempty"`
	AccountID int32    `json:"-"`
}

// NewQuestion is the client payload for creating a question.
type NewQuestion struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}
