package infra_redis_init

import (
	"log"
	"net"

	"github.com/go-redis/redis"
	"github.com/kinoduet/core/internal/config"
)

// MustEstablishConn connects to the shared redis instance used for
// session records and pool snapshots. Startup without redis is not
// useful, so a failed ping is fatal.
func MustEstablishConn(cfg config.RedisCache) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	if err := client.Ping().Err(); err != nil {
		log.Fatalf("redis ping failed: %v", err)
	}

	return client
}
