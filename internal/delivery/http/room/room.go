package http_room

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kinoduet/core/internal/config"
	http_common "github.com/kinoduet/core/internal/delivery/http/common"
	http_auth_middleware "github.com/kinoduet/core/internal/delivery/http/middleware/auth"
	"github.com/kinoduet/core/internal/metrics"
	usecase_room "github.com/kinoduet/core/internal/usecase/room"
)

type Controller struct {
	usecase *usecase_room.Usecase
	mw      *http_auth_middleware.Middleware
	bot     config.TelegramBot
	logger  *slog.Logger
}

func New(usecase *usecase_room.Usecase, mw *http_auth_middleware.Middleware, bot config.TelegramBot) *Controller {
	return &Controller{
		usecase: usecase,
		mw:      mw,
		bot:     bot,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms")
	{
		rooms.POST("", c.create)
		rooms.GET("/:code/status", c.status)
		rooms.POST("/:code/join", c.mw.OptionalIdentity(), c.join)
	}
}

type CreateResponseDTO struct {
	RoomCode string `json:"room_code"`
	Pin      string `json:"pin"`
	ShareURL string `json:"share_url"`
}

func (c *Controller) create(ctx *gin.Context) {
	created, err := c.usecase.Create(ctx)
	if err != nil {
		c.logger.Error("failed to create room", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_room.ErrRoomsUnavailable):
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
				Message: "unavailable",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	metrics.RoomsCreated.Inc()
	ctx.JSON(http.StatusCreated, CreateResponseDTO{
		RoomCode: created.Code,
		Pin:      created.PIN,
		ShareURL: c.shareURL(created.Code, created.PIN),
	})
}

// shareURL builds the Mini App deep link. Opening it proves possession
// of code+pin, so joins via the link skip the PIN prompt.
func (c *Controller) shareURL(code, pin string) string {
	return fmt.Sprintf("https://t.me/%s/%s?startapp=%s-%s",
		c.bot.BotName, c.bot.AppName, code, pin)
}

type JoinRequestDTO struct {
	Pin     string `json:"pin"`
	ViaLink bool   `json:"via_link"`
}

type JoinResponseDTO struct {
	UserSlot             string `json:"user_slot"`
	MoviePoolSeed        int32  `json:"movie_pool_seed"`
	PartnerAuthenticated bool   `json:"is_partner_authenticated"`
}

func (c *Controller) join(ctx *gin.Context) {
	code := ctx.Param("code")

	var req JoinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	userID := http_auth_middleware.UserID(ctx)

	result, err := c.usecase.Join(ctx, code, req.Pin, req.ViaLink, userID)
	if err != nil {
		c.logger.Error("failed to join room",
			slog.String("room", code),
			slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_room.ErrRoomNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "room not found",
			})
		case errors.Is(err, usecase_room.ErrInvalidPin):
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "invalid pin",
			})
		case errors.Is(err, usecase_room.ErrRoomFull):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Message: "room is full",
			})
		case errors.Is(err, usecase_room.ErrRoomExpired):
			ctx.JSON(http.StatusGone, http_common.ErrorResponse{
				Message: "room expired",
			})
		case errors.Is(err, usecase_room.ErrRoomMatched):
			ctx.JSON(http.StatusGone, http_common.ErrorResponse{
				Message: "room already matched",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, JoinResponseDTO{
		UserSlot:             result.Slot,
		MoviePoolSeed:        result.PoolSeed,
		PartnerAuthenticated: result.PartnerAuthenticated,
	})
}

type StatusResponseDTO struct {
	Status string `json:"status"`
}

func (c *Controller) status(ctx *gin.Context) {
	code := ctx.Param("code")

	status, err := c.usecase.Status(ctx, code)
	if err != nil {
		if errors.Is(err, usecase_room.ErrRoomNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "room not found",
			})
			return
		}
		c.logger.Error("failed to get status", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, StatusResponseDTO{
		Status: status,
	})
}
