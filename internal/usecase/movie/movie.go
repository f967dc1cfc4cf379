package usecase_movie

import (
	"context"
	"errors"
	"fmt"

	"github.com/kinoduet/core/internal/model"
)

var (
	ErrMovieNotFound     = errors.New("movie not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrFailedToStoreMeta = errors.New("failed to store meta")
	ErrFailedToLoadMeta  = errors.New("failed to load meta")
)

// Repository is the boundary to the metadata cache. Fetching and
// enrichment from TMDB/OMDB live in a separate pipeline; this service
// only finds or registers records by TMDB id.
//
//go:generate mockery --name=Repository --output=./mocks/repository --filename=repository.go
type Repository interface {
	Store(ctx context.Context, mm model.MovieMeta) error
	ByTmdbID(ctx context.Context, tmdbID int64) (*model.MovieMeta, error)
	LoadByMediaType(ctx context.Context, mediaType model.MediaType) ([]*model.MovieMeta, error)
}

type Usecase struct {
	repository Repository
}

func New(repository Repository) *Usecase {
	return &Usecase{repository: repository}
}

func (u *Usecase) ByTmdbID(ctx context.Context, tmdbID int64) (*model.MovieMeta, error) {
	mm, err := u.repository.ByTmdbID(ctx, tmdbID)
	if err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadMeta, err)
	}
	return mm, nil
}

// FindOrCreate returns the cached record for tmdbID, registering a
// stub row when the cache has never seen the id. The stub is filled in
// later by the enrichment pipeline.
func (u *Usecase) FindOrCreate(ctx context.Context, tmdbID int64, mediaType model.MediaType) (*model.MovieMeta, error) {
	if tmdbID <= 0 {
		return nil, fmt.Errorf("%w: tmdb id must be positive", ErrInvalidInput)
	}

	mm, err := u.repository.ByTmdbID(ctx, tmdbID)
	if err == nil {
		return mm, nil
	}
	if !errors.Is(err, ErrMovieNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadMeta, err)
	}

	stub := model.MovieMeta{
		TmdbID:    tmdbID,
		MediaType: mediaType,
	}
	if err := u.repository.Store(ctx, stub); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToStoreMeta, err)
	}
	return &stub, nil
}

func (u *Usecase) LoadByMediaType(ctx context.Context, mediaType model.MediaType) ([]*model.MovieMeta, error) {
	mm, err := u.repository.LoadByMediaType(ctx, mediaType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadMeta, err)
	}
	return mm, nil
}
