package postgres

import (
	"context"
	"errors"
	"fmt"

	autherror "github.com/danielstevenson70/ITGHM-api/internal/errors"

	"github.com/danielstevenson70/ITGHM-api/internal/auth/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// DBPool is the subset of pgxpool.Pool the repository needs. pgxmock's pool
// satisfies it as well.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DBPool
}

func NewPostgresRepository(db DBPool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, email, password_hash, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
    `, user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if isUniqueViolation(err) {
		return autherror.ErrEmailAlreadyInUse
	}

	return err
}

func (r *PostgresRepository) BlacklistToken(ctx context.Context, bt *domain.BlacklistedToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO blacklisted_tokens (token, created_at)
		VALUES ($1, $2)
	`, bt.Token, bt.CreatedAt)
	if isUniqueViolation(err) {
		return autherror.ErrTokenAlreadyRevoked
	}

	return err
}

func (r *PostgresRepository) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM blacklisted_tokens WHERE token = $1);`

	var revoked bool
	if err := r.db.QueryRow(ctx, query, token).Scan(&revoked); err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}

	return revoked, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
