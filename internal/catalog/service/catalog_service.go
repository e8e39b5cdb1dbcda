package service

import (
	"context"

	"github.com/danielstevenson70/ITGHM-api/internal/catalog/domain"
	"github.com/danielstevenson70/ITGHM-api/internal/catalog/dto"
	catalogerror "github.com/danielstevenson70/ITGHM-api/internal/errors"
	"github.com/danielstevenson70/ITGHM-api/internal/music"
	log "github.com/sirupsen/logrus"
)

type CatalogService struct {
	repo     domain.CatalogRepository
	searcher music.Searcher
}

func NewCatalogService(repo domain.CatalogRepository, searcher music.Searcher) *CatalogService {
	return &CatalogService{
		repo:     repo,
		searcher: searcher,
	}
}

// GetBand resolves a band, its songs, and embeddable links from the external
// search provider. A search failure degrades to an empty link list; the
// lookup itself never fails because of the provider.
func (s *CatalogService) GetBand(ctx context.Context, id int64) (*dto.BandOutput, error) {
	band, err := s.repo.GetBandByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if band == nil {
		return nil, catalogerror.ErrBandNotFound
	}

	songs, err := s.repo.GetSongsByIDs(ctx, band.SongIDs)
	if err != nil {
		return nil, err
	}

	links, err := s.searcher.Search(ctx, band.Name)
	if err != nil {
		log.Warnf("music search failed for band %q: %v", band.Name, err)
		links = []string{}
	}
	if links == nil {
		links = []string{}
	}

	out := &dto.BandOutput{
		Name:    band.Name,
		Songs:   make([]dto.SongOutput, 0, len(songs)),
		YouTube: links,
	}
	for _, song := range songs {
		out.Songs = append(out.Songs, dto.SongOutput{ID: song.ID, Name: song.Name})
	}

	return out, nil
}

func (s *CatalogService) GetGenre(ctx context.Context, id int64) (*dto.GenreOutput, error) {
	genre, err := s.repo.GetGenreByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, catalogerror.ErrGenreNotFound
	}

	bands, err := s.repo.GetBandsByIDs(ctx, genre.BandIDs)
	if err != nil {
		return nil, err
	}

	out := &dto.GenreOutput{
		Name:  genre.Name,
		Bands: make([]dto.BandSummary, 0, len(bands)),
	}
	for _, band := range bands {
		out.Bands = append(out.Bands, dto.BandSummary{ID: band.ID, Name: band.Name})
	}

	return out, nil
}

func (s *CatalogService) ListGenres(ctx context.Context) ([]dto.GenreSummary, error) {
	genres, err := s.repo.ListGenres(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.GenreSummary, 0, len(genres))
	for _, genre := range genres {
		out = append(out, dto.GenreSummary{ID: genre.ID, Name: genre.Name})
	}

	return out, nil
}
