package service

import (
	"testing"
	"time"

	autherror "github.com/danielstevenson70/ITGHM-api/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name          string
		accessSecret  string
		accessMinutes int
	}{
		{
			name:          "valid parameters",
			accessSecret:  "access-secret-key",
			accessMinutes: 30,
		},
		{
			name:          "empty secret",
			accessSecret:  "",
			accessMinutes: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.accessSecret, tt.accessMinutes)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.accessSecret, ts.AccessTokenSecret)
			assert.Equal(t, time.Duration(tt.accessMinutes)*time.Minute, ts.AccessTokenExpiry)
			assert.Equal(t, ts.AccessTokenExpiry, ts.GetAccessTokenExpiry())
		})
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 30)
	email := "fan@example.com"

	token, expiresAt, err := ts.Issue(email)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, email, claims.Email)
	assert.Equal(t, email, claims.Subject)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 30)

	// Sign a token whose expiry is already in the past.
	now := time.Now().Add(-time.Hour)
	claims := JWTCustomClaims{
		Email: "fan@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "fan@example.com",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.AccessTokenSecret))
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.ErrorIs(t, err, autherror.ErrTokenExpired)
}

func TestTokenService_Verify_BadSignature(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 30)
	other := NewTokenService("a-completely-different-secret", 30)

	token, _, err := other.Issue("fan@example.com")
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.ErrorIs(t, err, autherror.ErrTokenSignatureInvalid)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 30)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "empty", token: ""},
		{name: "two segments", token: "abc.def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.Verify(tt.token)
			assert.ErrorIs(t, err, autherror.ErrTokenMalformed)
		})
	}
}

func TestTokenService_Verify_RejectsNonHMAC(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 30)

	// alg=none tokens must never verify.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, JWTCustomClaims{
		Email: "fan@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.Error(t, err)
}
