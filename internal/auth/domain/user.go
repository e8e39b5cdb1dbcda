package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BlacklistedToken is an append-only revocation record. The token string is
// unique; a second insert of the same token fails instead of silently
// succeeding.
type BlacklistedToken struct {
	Token     string
	CreatedAt time.Time
}
