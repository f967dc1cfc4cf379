package infra_postgres_movie

import (
	"github.com/kinoduet/core/internal/model"
	"github.com/lib/pq"
)

type MovieDB struct {
	TmdbID     int64          `db:"tmdb_id"`
	MediaType  string         `db:"media_type"`
	Title      string         `db:"title"`
	Year       int            `db:"year"`
	Rating     float64        `db:"rating"`
	Genres     pq.StringArray `db:"genres"`
	Overview   string         `db:"overview"`
	PosterLink string         `db:"poster_link"`
}

func FromDomain(mm model.MovieMeta) MovieDB {
	return MovieDB{
		TmdbID:     mm.TmdbID,
		MediaType:  mm.MediaType,
		Title:      mm.Title,
		Year:       mm.Year,
		Rating:     mm.Rating,
		Genres:     pq.StringArray(mm.Genres),
		Overview:   mm.Overview,
		PosterLink: mm.PosterLink,
	}
}

func (db MovieDB) ToDomain() model.MovieMeta {
	return model.MovieMeta{
		TmdbID:     db.TmdbID,
		MediaType:  db.MediaType,
		Title:      db.Title,
		Year:       db.Year,
		Rating:     db.Rating,
		Genres:     []string(db.Genres),
		Overview:   db.Overview,
		PosterLink: db.PosterLink,
	}
}
