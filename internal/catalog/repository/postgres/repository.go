package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielstevenson70/ITGHM-api/internal/catalog/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

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

func (r *PostgresRepository) GetBandByID(ctx context.Context, id int64) (*domain.Band, error) {
	query := `
		SELECT id, name, song_ids
		FROM bands
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var band domain.Band
	err := row.Scan(&band.ID, &band.Name, &band.SongIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get band by id: %w", err)
	}

	return &band, nil
}

func (r *PostgresRepository) GetGenreByID(ctx context.Context, id int64) (*domain.Genre, error) {
	query := `
		SELECT id, name, band_ids
		FROM genre
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var genre domain.Genre
	err := row.Scan(&genre.ID, &genre.Name, &genre.BandIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get genre by id: %w", err)
	}

	return &genre, nil
}

func (r *PostgresRepository) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, band_ids FROM genre ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	defer rows.Close()

	var genres []domain.Genre
	for rows.Next() {
		var genre domain.Genre
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.BandIDs); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, genre)
	}

	return genres, rows.Err()
}

func (r *PostgresRepository) GetSongsByIDs(ctx context.Context, ids []int64) ([]domain.Song, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, name FROM songs WHERE id = ANY($1) ORDER BY id;`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get songs: %w", err)
	}
	defer rows.Close()

	var songs []domain.Song
	for rows.Next() {
		var song domain.Song
		if err := rows.Scan(&song.ID, &song.Name); err != nil {
			return nil, fmt.Errorf("failed to scan song: %w", err)
		}
		songs = append(songs, song)
	}

	return songs, rows.Err()
}

func (r *PostgresRepository) GetBandsByIDs(ctx context.Context, ids []int64) ([]domain.Band, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, name, song_ids FROM bands WHERE id = ANY($1) ORDER BY id;`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get bands: %w", err)
	}
	defer rows.Close()

	var bands []domain.Band
	for rows.Next() {
		var band domain.Band
		if err := rows.Scan(&band.ID, &band.Name, &band.SongIDs); err != nil {
			return nil, fmt.Errorf("failed to scan band: %w", err)
		}
		bands = append(bands, band)
	}

	return bands, rows.Err()
}
