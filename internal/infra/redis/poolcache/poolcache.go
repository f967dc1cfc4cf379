package infra_poolcache

import (
	"encoding/json"
	"errors"

	"github.com/go-redis/redis"
	"github.com/kinoduet/core/internal/model"
)

var ErrSnapshotMissing = errors.New("no pool snapshot")

// Driver keeps the last successfully loaded movie list per media type,
// so the seeded pool keeps serving a deterministic subset while the
// metadata store is down.
type Driver struct {
	client *redis.Client
	key    string
}

func New(client *redis.Client, key string) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Store(mediaType model.MediaType, movies []*model.MovieMeta) error {
	payload, err := json.Marshal(movies)
	if err != nil {
		return err
	}

	return d.client.Set(d.getFullKey(mediaType), payload, 0).Err()
}

func (d *Driver) Snapshot(mediaType model.MediaType) ([]*model.MovieMeta, error) {
	payload, err := d.client.Get(d.getFullKey(mediaType)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSnapshotMissing
		}
		return nil, err
	}

	var movies []*model.MovieMeta
	if err := json.Unmarshal(payload, &movies); err != nil {
		return nil, err
	}

	return movies, nil
}

func (d *Driver) getFullKey(mediaType model.MediaType) string {
	if d.key != "" {
		return d.key + ":" + mediaType
	}
	return mediaType
}
