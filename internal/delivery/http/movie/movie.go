package http_movie

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/kinoduet/core/internal/delivery/http/common"
	"github.com/kinoduet/core/internal/model"
	usecase_pool "github.com/kinoduet/core/internal/usecase/pool"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Controller struct {
	pool   *usecase_pool.Usecase
	logger *slog.Logger
}

func New(pool *usecase_pool.Usecase) *Controller {
	return &Controller{
		pool:   pool,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/movies", c.movies)
}

type MovieDTO struct {
	TmdbID     int64    `json:"tmdb_id"`
	MediaType  string   `json:"media_type"`
	Title      string   `json:"title"`
	Year       int      `json:"year"`
	Rating     float64  `json:"rating"`
	Genres     []string `json:"genres"`
	Overview   string   `json:"overview"`
	PosterLink string   `json:"poster_link"`
}

type MoviesResponseDTO struct {
	Movies            []MovieDTO `json:"movies"`
	BasePoolRemaining int        `json:"base_pool_remaining"`
	HasMore           bool       `json:"has_more"`
}

// movies serves one page of the seeded ordering. The response depends
// only on the query parameters, so it is marked publicly cacheable.
func (c *Controller) movies(ctx *gin.Context) {
	seed64, err := strconv.ParseInt(ctx.Query("seed"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "seed must be a 32-bit integer",
		})
		return
	}

	mediaType := ctx.DefaultQuery("mediaType", model.MediaTypeAll)
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit > maxLimit {
		limit = maxLimit
	}

	batch, err := c.pool.Pool(ctx, int32(seed64), mediaType, offset, limit)
	if err != nil {
		switch {
		case errors.Is(err, usecase_pool.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "invalid pool query",
			})
		case errors.Is(err, usecase_pool.ErrPoolEmpty):
			c.logger.Error("pool unavailable", slog.String("error", err.Error()))
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
				Message: "movie pool unavailable",
			})
		default:
			c.logger.Error("failed to build pool", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	movies := make([]MovieDTO, 0, len(batch.Movies))
	for _, mm := range batch.Movies {
		movies = append(movies, MovieDTO{
			TmdbID:     mm.TmdbID,
			MediaType:  mm.MediaType,
			Title:      mm.Title,
			Year:       mm.Year,
			Rating:     mm.Rating,
			Genres:     mm.Genres,
			Overview:   mm.Overview,
			PosterLink: mm.PosterLink,
		})
	}

	ctx.Header("Cache-Control", "public, max-age=300")
	ctx.JSON(http.StatusOK, MoviesResponseDTO{
		Movies:            movies,
		BasePoolRemaining: batch.BasePoolRemaining,
		HasMore:           batch.HasMore,
	})
}
