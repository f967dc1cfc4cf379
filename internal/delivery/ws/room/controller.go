package ws_room

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	http_common "github.com/kinoduet/core/internal/delivery/http/common"
	"github.com/kinoduet/core/internal/model"
	usecase_room "github.com/kinoduet/core/internal/usecase/room"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The Mini App is served from Telegram's webview; origin
		// filtering happens at the proxy.
		return true
	},
}

type Controller struct {
	hub    *Hub
	roomUC *usecase_room.Usecase
	logger *slog.Logger
}

func NewController(hub *Hub, roomUC *usecase_room.Usecase) *Controller {
	return &Controller{
		hub:    hub,
		roomUC: roomUC,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws/rooms/:code", c.serve)
}

// serve authorizes the channel before the upgrade: a caller that has
// not joined the room (wrong pin, unknown code, expired room) never
// gets a connection, so no one receives events for a foreign room.
func (c *Controller) serve(ctx *gin.Context) {
	code := ctx.Param("code")
	slot := ctx.Query("slot")
	pin := ctx.Query("pin")
	viaLink := ctx.Query("via_link") == "true"

	if !model.IsValidSlot(slot) {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "slot must be A or B",
		})
		return
	}

	room, err := c.roomUC.Room(ctx, code)
	if err != nil {
		switch {
		case errors.Is(err, usecase_room.ErrRoomNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "room not found",
			})
		case errors.Is(err, usecase_room.ErrRoomExpired):
			ctx.JSON(http.StatusGone, http_common.ErrorResponse{
				Message: "room expired",
			})
		default:
			c.logger.Error("failed to load room", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	if !viaLink && room.PIN != pin {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Message: "invalid pin",
		})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := newClient(c.hub, conn, code, slot)
	c.hub.register <- client

	go client.writePump()
	go client.readPump()
}
