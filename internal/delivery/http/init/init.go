package http_init

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const apiPrefix = "/api/v1"

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// ControllerPool collects the HTTP and websocket controllers and
// mounts them under a shared versioned prefix. Operational endpoints
// (health, metrics) live outside the prefix.
type ControllerPool struct {
	controllers []Controller
	api         *gin.RouterGroup
	engine      *gin.Engine
}

func NewControllerPool() *ControllerPool {
	engine := gin.Default()

	engine.GET("/healthz", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &ControllerPool{
		controllers: make([]Controller, 0, 8),
		api:         engine.Group(apiPrefix),
		engine:      engine,
	}
}

func (p *ControllerPool) Add(c Controller) {
	p.controllers = append(p.controllers, c)
}

func (p *ControllerPool) Register() {
	for _, c := range p.controllers {
		c.RegisterRoutes(p.api)
	}
}

func (p *ControllerPool) RunAll(port string) {
	if err := p.engine.Run(":" + port); err != nil {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}
