package service

import (
	"context"
	"strings"
	"time"

	"github.com/danielstevenson70/ITGHM-api/internal/auth/domain"
	"github.com/danielstevenson70/ITGHM-api/internal/auth/dto"
	autherror "github.com/danielstevenson70/ITGHM-api/internal/errors"
	"github.com/danielstevenson70/ITGHM-api/pkg/constant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
	}
}

// normalizeEmail lowercases the address so A@x.com and a@x.com resolve to the
// same account, both at registration and at login.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)

	existingUser, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique index on email backstops the GetByEmail check under
	// concurrent registration.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}

	// Unknown user and wrong password collapse into the same error so the
	// response cannot be used to probe which emails are registered.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	accessToken, _, err := s.tokenService.Issue(user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   constant.TokenTypeBearer,
	}, nil
}

// ValidateToken runs the full check pipeline on every call: signature, then
// expiry, then the revocation ledger. Nothing is cached between requests.
func (s *UserService) ValidateToken(ctx context.Context, tokenString string) (*JWTCustomClaims, error) {
	claims, err := s.tokenService.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	revoked, err := s.repo.IsTokenBlacklisted(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, autherror.ErrTokenRevoked
	}

	return claims, nil
}

// Logout appends the token to the revocation ledger. The token must still
// verify; revoking an expired token would only create garbage, since it can
// never validate again.
func (s *UserService) Logout(ctx context.Context, tokenString string) error {
	if _, err := s.tokenService.Verify(tokenString); err != nil {
		return err
	}

	return s.repo.BlacklistToken(ctx, &domain.BlacklistedToken{
		Token:     tokenString,
		CreatedAt: time.Now().UTC(),
	})
}
