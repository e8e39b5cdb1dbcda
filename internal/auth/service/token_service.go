package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/danielstevenson70/ITGHM-api/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	autherror "github.com/danielstevenson70/ITGHM-api/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Issue(email string) (string, time.Time, error)
	Verify(tokenString string) (*JWTCustomClaims, error)
	GetAccessTokenExpiry() time.Duration
}

type TokenService struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

func NewTokenService(accessSecret string, accessMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret: accessSecret,
		AccessTokenExpiry: time.Duration(accessMinutes) * time.Minute,
	}
}

// Issue signs an access token whose subject is the given email. The expiry
// instant is returned alongside the token string.
func (ts *TokenService) Issue(email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.AccessTokenExpiry)

	claims := JWTCustomClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.AccessTokenSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Verify parses the token string and checks its signature and expiry. Parse
// failures are mapped onto the domain taxonomy: malformed structure, bad
// signature, then expiry.
func (ts *TokenService) Verify(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.AccessTokenSecret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, autherror.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, autherror.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, autherror.ErrTokenExpired
		default:
			return nil, autherror.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, autherror.ErrTokenMalformed
	}

	return claims, nil
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}
