package domain

type UserId = int64

type User struct {
	Id       UserId
	Username string
	PassHash string
}

// Credentials travel handler -> service; Password is the cleartext
// submitted by the client and must never be persisted.
type Credentials struct {
	Username string
	Password string
}
