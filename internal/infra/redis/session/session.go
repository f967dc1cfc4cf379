package infra_session_cache

import (
	"time"

	"github.com/go-redis/redis"
)

// Driver stores token -> user id mappings written by the Telegram auth
// flow. Keys are namespaced so session records never collide with the
// pool snapshots sharing the same redis instance.
type Driver struct {
	client *redis.Client
	prefix string
}

func New(client *redis.Client, prefix string) *Driver {
	return &Driver{
		client: client,
		prefix: prefix,
	}
}

func (d *Driver) Set(token string, userID string, ttl time.Duration) error {
	return d.client.Set(d.sessionKey(token), userID, ttl).Err()
}

// Get returns "" for an unknown token; absence is not an error because
// anonymous sessions are a normal state.
func (d *Driver) Get(token string) (string, error) {
	val, err := d.client.Get(d.sessionKey(token)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (d *Driver) sessionKey(token string) string {
	if d.prefix == "" {
		return token
	}
	return d.prefix + ":" + token
}
