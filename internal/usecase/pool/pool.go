package usecase_pool

import (
	"context"
	"errors"
	"math/rand"
	"sort"

	"github.com/kinoduet/core/internal/model"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrPoolEmpty    = errors.New("no movies available")
)

//go:generate mockery --name=MovieRepository --output=./mocks/repository --filename=repository.go
type MovieRepository interface {
	LoadByMediaType(ctx context.Context, mediaType model.MediaType) ([]*model.MovieMeta, error)
}

//go:generate mockery --name=SnapshotCache --output=./mocks/snapshot --filename=snapshot.go
type SnapshotCache interface {
	Snapshot(mediaType model.MediaType) ([]*model.MovieMeta, error)
	Store(mediaType model.MediaType, movies []*model.MovieMeta) error
}

type Batch struct {
	Movies []*model.MovieMeta

	// Prefetch metadata for the client queue.
	BasePoolRemaining int
	HasMore           bool
}

// Usecase orders the candidate pool deterministically from a room seed,
// so both participants browse the exact same card sequence without a
// server-pushed list per swipe.
type Usecase struct {
	repository MovieRepository
	snapshots  SnapshotCache
}

func New(repository MovieRepository, snapshots SnapshotCache) *Usecase {
	return &Usecase{
		repository: repository,
		snapshots:  snapshots,
	}
}

// Pool returns one page of the seeded ordering. The same (seed,
// mediaType) always yields the same ordering, across processes: the
// candidate list is sorted by TMDB id before the seeded shuffle, so
// upstream iteration order never leaks into the result.
func (u *Usecase) Pool(ctx context.Context, seed int32, mediaType model.MediaType, offset, limit int) (Batch, error) {
	if offset < 0 || limit <= 0 {
		return Batch{}, ErrInvalidInput
	}
	if !model.IsValidMediaType(mediaType) {
		return Batch{}, ErrInvalidInput
	}

	movies, err := u.loadCandidates(ctx, mediaType)
	if err != nil {
		return Batch{}, err
	}

	ordered := shuffle(seed, movies)

	if offset >= len(ordered) {
		return Batch{Movies: []*model.MovieMeta{}}, nil
	}

	end := offset + limit
	if end > len(ordered) {
		end = len(ordered)
	}

	remaining := len(ordered) - end
	return Batch{
		Movies:            ordered[offset:end],
		BasePoolRemaining: remaining,
		HasMore:           remaining > 0,
	}, nil
}

// loadCandidates prefers the metadata store and degrades to the cached
// snapshot when it is unavailable. A degraded room keeps working on a
// deterministic subset rather than failing outright.
func (u *Usecase) loadCandidates(ctx context.Context, mediaType model.MediaType) ([]*model.MovieMeta, error) {
	movies, err := u.repository.LoadByMediaType(ctx, mediaType)
	if err == nil && len(movies) > 0 {
		_ = u.snapshots.Store(mediaType, movies)
		return movies, nil
	}

	cached, cacheErr := u.snapshots.Snapshot(mediaType)
	if cacheErr == nil && len(cached) > 0 {
		return cached, nil
	}

	if err != nil {
		return nil, errors.Join(ErrPoolEmpty, err)
	}
	return nil, ErrPoolEmpty
}

// shuffle is a Fisher-Yates permutation over the id-sorted candidates,
// driven by math/rand seeded with the room seed. math/rand's generator
// is stable for a fixed seed, which is the whole determinism contract.
func shuffle(seed int32, movies []*model.MovieMeta) []*model.MovieMeta {
	ordered := make([]*model.MovieMeta, len(movies))
	copy(ordered, movies)

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].TmdbID < ordered[j].TmdbID
	})

	r := rand.New(rand.NewSource(int64(seed)))
	for i := len(ordered) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		ordered[i], ordered[j] = ordered[j], ordered[i]
	}

	return ordered
}
