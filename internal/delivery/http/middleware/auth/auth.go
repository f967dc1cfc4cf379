package http_auth_middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/kinoduet/core/internal/delivery/http/common"
)

const userIDKey = "auth_user_id"

type IdentityResolver interface {
	CurrentUser(token string) (*uuid.UUID, error)
}

type Middleware struct {
	resolver IdentityResolver
	logger   *slog.Logger
}

func New(
	resolver IdentityResolver,
) *Middleware {
	return &Middleware{
		resolver: resolver,
		logger:   slog.Default(),
	}
}

// OptionalIdentity resolves X-user-token to an identity when present.
// Anonymous requests pass through: joining a room never requires auth,
// a resolved identity only gets bound to the claimed slot.
func (m *Middleware) OptionalIdentity() gin.HandlerFunc {
	const header = "X-user-token"
	return func(ctx *gin.Context) {
		t := ctx.GetHeader(header)
		if t == "" {
			ctx.Next()
			return
		}

		userID, err := m.resolver.CurrentUser(t)
		if err != nil {
			m.logger.Error("identity lookup failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
			ctx.Abort()
			return
		}
		if userID != nil {
			ctx.Set(userIDKey, *userID)
		}
		ctx.Next()
	}
}

// UserID returns the identity resolved by OptionalIdentity, if any.
func UserID(ctx *gin.Context) *uuid.UUID {
	v, ok := ctx.Get(userIDKey)
	if !ok {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}
