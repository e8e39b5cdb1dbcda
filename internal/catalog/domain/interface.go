package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_catalog_repository.go -package=mocks github.com/danielstevenson70/ITGHM-api/internal/catalog/domain CatalogRepository

type CatalogRepository interface {
	// GetBandByID and GetGenreByID return (nil, nil) when no row matches.
	GetBandByID(ctx context.Context, id int64) (*Band, error)
	GetGenreByID(ctx context.Context, id int64) (*Genre, error)
	ListGenres(ctx context.Context) ([]Genre, error)
	GetSongsByIDs(ctx context.Context, ids []int64) ([]Song, error)
	GetBandsByIDs(ctx context.Context, ids []int64) ([]Band, error)
}
