package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials    = errors.New("invalid user credentials")
	ErrEmailAlreadyInUse     = errors.New("email already in use")
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenRevoked          = errors.New("token revoked")
	ErrTokenAlreadyRevoked   = errors.New("token already revoked")
	ErrBandNotFound          = errors.New("band not found")
	ErrGenreNotFound         = errors.New("genre not found")
)
