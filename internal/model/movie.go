package model

type MediaType = string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
	MediaTypeAll   MediaType = "all"
)

func IsValidMediaType(mt MediaType) bool {
	return mt == MediaTypeMovie || mt == MediaTypeTV || mt == MediaTypeAll
}

const EmptyTitle string = ""

// MovieMeta is the cached metadata record for a movie or TV show.
// Enrichment (TMDB/OMDB fetching) happens outside this service; the
// core only reads records already present in the cache.
type MovieMeta struct {
	TmdbID     int64
	MediaType  MediaType
	Title      string
	Year       int
	Rating     float64
	Genres     []string
	Overview   string
	PosterLink string
}
