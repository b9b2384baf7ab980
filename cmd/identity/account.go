package identity

// Credentials is the plaintext payload of a registration or login request.
// It exists only in transit and is never persisted or logged.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StoredAccount is the persisted account row. The id is assigned by the
// store on creation; PasswordHash is a PHC-encoded Argon2id hash. Email is
// unique and stored case-sensitively.
type StoredAccount struct {
	ID           int32
	Email        string
	PasswordHash string
}
