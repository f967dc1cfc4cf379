package infra_postgres_movie

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kinoduet/core/internal/model"
	usecase_movie "github.com/kinoduet/core/internal/usecase/movie"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Store(ctx context.Context, mm model.MovieMeta) error {
	movieDB := FromDomain(mm)

	query := `
		INSERT INTO movies (tmdb_id, media_type, title, year, rating, genres, overview, poster_link)
		VALUES (:tmdb_id, :media_type, :title, :year, :rating, :genres, :overview, :poster_link)
		ON CONFLICT (tmdb_id) DO UPDATE SET
			media_type = EXCLUDED.media_type,
			title = EXCLUDED.title,
			year = EXCLUDED.year,
			rating = EXCLUDED.rating,
			genres = EXCLUDED.genres,
			overview = EXCLUDED.overview,
			poster_link = EXCLUDED.poster_link
	`

	_, err := r.db.NamedExecContext(ctx, query, movieDB)
	if err != nil {
		return fmt.Errorf("failed to store movie: %w", err)
	}

	return nil
}

func (r *Repository) ByTmdbID(ctx context.Context, tmdbID int64) (*model.MovieMeta, error) {
	query := `
		SELECT tmdb_id, media_type, title, year, rating, genres, overview, poster_link
		FROM movies
		WHERE tmdb_id = $1
	`

	var movieDB MovieDB
	err := r.db.GetContext(ctx, &movieDB, query, tmdbID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, usecase_movie.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to load movie: %w", err)
	}

	mm := movieDB.ToDomain()
	return &mm, nil
}

func (r *Repository) LoadByMediaType(ctx context.Context, mediaType model.MediaType) ([]*model.MovieMeta, error) {
	query := `
		SELECT tmdb_id, media_type, title, year, rating, genres, overview, poster_link
		FROM movies
	`

	args := []any{}
	if mediaType != model.MediaTypeAll {
		query += ` WHERE media_type = $1`
		args = append(args, mediaType)
	}
	query += ` ORDER BY tmdb_id`

	var moviesDB []MovieDB
	err := r.db.SelectContext(ctx, &moviesDB, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}

	movies := make([]*model.MovieMeta, 0, len(moviesDB))
	for _, movieDB := range moviesDB {
		mm := movieDB.ToDomain()
		movies = append(movies, &mm)
	}

	return movies, nil
}
