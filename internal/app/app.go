package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/kinoduet/core/internal/config"
	http_init "github.com/kinoduet/core/internal/delivery/http/init"
	http_auth_middleware "github.com/kinoduet/core/internal/delivery/http/middleware/auth"
	http_movie "github.com/kinoduet/core/internal/delivery/http/movie"
	http_room "github.com/kinoduet/core/internal/delivery/http/room"
	ws_room "github.com/kinoduet/core/internal/delivery/ws/room"
	infra_pg_init "github.com/kinoduet/core/internal/infra/postgres/init"
	infra_postgres_movie "github.com/kinoduet/core/internal/infra/postgres/movie"
	infra_postgres_room "github.com/kinoduet/core/internal/infra/postgres/room"
	infra_postgres_swipe "github.com/kinoduet/core/internal/infra/postgres/swipe"
	infra_redis_init "github.com/kinoduet/core/internal/infra/redis/init"
	infra_poolcache "github.com/kinoduet/core/internal/infra/redis/poolcache"
	infra_session_cache "github.com/kinoduet/core/internal/infra/redis/session"
	"github.com/kinoduet/core/internal/metrics"
	service_auth "github.com/kinoduet/core/internal/service/auth"
	usecase_movie "github.com/kinoduet/core/internal/usecase/movie"
	usecase_pool "github.com/kinoduet/core/internal/usecase/pool"
	usecase_room "github.com/kinoduet/core/internal/usecase/room"
	usecase_swipe "github.com/kinoduet/core/internal/usecase/swipe"
)

func Go(cfg *config.Config) {
	metrics.Register()

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	roomRepository := infra_postgres_room.New(pgConn)
	swipeRepository := infra_postgres_swipe.New(pgConn)
	movieRepository := infra_postgres_movie.New(pgConn)

	poolSnapshots := infra_poolcache.New(redisConn, "pool_snapshot")
	sessionCache := infra_session_cache.New(redisConn, "session_cache")

	roomUC := usecase_room.New(roomRepository, cfg.Rooms.TTL, cfg.Rooms.CleanupPeriod)
	movieUC := usecase_movie.New(movieRepository)
	poolUC := usecase_pool.New(movieRepository, poolSnapshots)
	swipeUC := usecase_swipe.New(swipeRepository, roomRepository, movieUC)

	hub := ws_room.NewHub(roomUC, swipeUC)
	go hub.Run()

	go sweepExpired(roomUC, cfg.Rooms.SweepInterval)

	authService := service_auth.New(sessionCache, nil)
	authMiddleware := http_auth_middleware.New(authService)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_room.New(roomUC, authMiddleware, cfg.TelegramBot))
	controllerPool.Add(http_movie.New(poolUC))
	controllerPool.Add(ws_room.NewController(hub, roomUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}

// sweepExpired backs up the lazy expiry checks so abandoned rooms do
// not linger until someone touches them.
func sweepExpired(roomUC *usecase_room.Usecase, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		n, err := roomUC.SweepExpired(context.Background())
		if err != nil {
			slog.Error("expiry sweep failed", "error", err)
			continue
		}
		if n > 0 {
			metrics.RoomsExpired.Add(float64(n))
			slog.Info("expired stale rooms", "count", n)
		}
	}
}
