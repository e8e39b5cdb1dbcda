package postgres_test

import (
	"context"
	"testing"

	repo "github.com/danielstevenson70/ITGHM-api/internal/catalog/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBandByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, song_ids").
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "song_ids"}).
				AddRow(int64(1), "Black Sabbath", []int64{10, 11}))

		band, err := r.GetBandByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Black Sabbath", band.Name)
		assert.Equal(t, []int64{10, 11}, band.SongIDs)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, song_ids").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		band, err := r.GetBandByID(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, band)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGenreByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, band_ids").
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "band_ids"}).
				AddRow(int64(1), "Doom Metal", []int64{1, 2}))

		genre, err := r.GetGenreByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Doom Metal", genre.Name)
		assert.Equal(t, []int64{1, 2}, genre.BandIDs)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, band_ids").
			WithArgs(int64(42)).
			WillReturnError(pgx.ErrNoRows)

		genre, err := r.GetGenreByID(ctx, 42)
		require.NoError(t, err)
		assert.Nil(t, genre)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListGenres(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectQuery("SELECT id, name, band_ids FROM genre").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "band_ids"}).
			AddRow(int64(1), "Doom Metal", []int64{1}).
			AddRow(int64(2), "Thrash Metal", []int64{3, 4}))

	genres, err := r.ListGenres(context.Background())
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Thrash Metal", genres[1].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSongsByIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ids := []int64{10, 11}
		mock.ExpectQuery("SELECT id, name FROM songs").
			WithArgs(ids).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
				AddRow(int64(10), "Paranoid").
				AddRow(int64(11), "Iron Man"))

		songs, err := r.GetSongsByIDs(ctx, ids)
		require.NoError(t, err)
		require.Len(t, songs, 2)
		assert.Equal(t, "Iron Man", songs[1].Name)
	})

	t.Run("empty ids skip the query", func(t *testing.T) {
		songs, err := r.GetSongsByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, songs)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBandsByIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	ids := []int64{1, 2}
	mock.ExpectQuery("SELECT id, name, song_ids FROM bands").
		WithArgs(ids).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "song_ids"}).
			AddRow(int64(1), "Black Sabbath", []int64{10}).
			AddRow(int64(2), "Candlemass", []int64{20}))

	bands, err := r.GetBandsByIDs(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, bands, 2)
	assert.Equal(t, "Candlemass", bands[1].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}
