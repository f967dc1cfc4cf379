// Package cardqueue holds the client-side presentation order of movie
// cards. It reconciles two asynchronous inputs with local animation
// state: pool batches arriving from the server and partner-like
// injections that should surface early without reshuffling a card
// stack mid-gesture.
package cardqueue

import (
	"github.com/kinoduet/core/internal/model"
)

type Source = string

const (
	SourceBase        Source = "base"
	SourcePriority    Source = "priority"
	SourcePartnerLike Source = "partner_like"
)

type Item struct {
	Movie  model.MovieMeta
	Source Source
}

type FetchMeta struct {
	BasePoolRemaining int
	PriorityRemaining int
	HasMore           bool
	FetchInFlight     bool
}

const (
	// injectOffset keeps injected cards out of the rendered stack: a
	// partner like lands right past the visible window.
	injectOffset = 3

	// lowWaterMark triggers prefetch before the queue drains.
	lowWaterMark = 5
)

// Queue is single-owner state, owned by the room session; it is not
// goroutine-safe by contract.
type Queue struct {
	items        []Item
	currentIndex int

	animating    bool
	pendingLikes []model.MovieMeta

	meta FetchMeta

	seen map[int64]bool
}

func New() *Queue {
	return &Queue{
		items: make([]Item, 0, 64),
		seen:  make(map[int64]bool),
	}
}

// Append adds a pool batch to the tail, dropping movies already known
// to the queue.
func (q *Queue) Append(movies []model.MovieMeta, source Source) {
	for _, mm := range movies {
		if q.seen[mm.TmdbID] {
			continue
		}
		q.items = append(q.items, Item{Movie: mm, Source: source})
		q.seen[mm.TmdbID] = true
	}
}

// Current returns the top card without consuming it.
func (q *Queue) Current() (Item, bool) {
	if q.currentIndex >= len(q.items) {
		return Item{}, false
	}
	return q.items[q.currentIndex], true
}

// ConsumeNext advances the cursor past the top card. Consumed items
// stay in the slice; history is kept for back-navigation and
// debugging.
func (q *Queue) ConsumeNext() (Item, bool) {
	item, ok := q.Current()
	if !ok {
		return Item{}, false
	}
	q.currentIndex++
	return item, true
}

// BeginSwipe marks a gesture/animation in flight on the top card.
// Injections are deferred until EndSwipe.
func (q *Queue) BeginSwipe() {
	q.animating = true
}

// EndSwipe flips the machine back to idle and flushes deferred
// partner likes in arrival order.
func (q *Queue) EndSwipe() {
	q.animating = false
	q.processPendingLikes()
}

func (q *Queue) Animating() bool {
	return q.animating
}

// InjectPartnerLike surfaces a partner's like ahead of its natural
// pool position. A movie already anywhere in the queue is skipped;
// during an animation the insertion is buffered so the visible stack
// is never reshuffled mid-gesture.
func (q *Queue) InjectPartnerLike(movie model.MovieMeta) {
	if q.seen[movie.TmdbID] {
		return
	}

	if q.animating {
		for _, pending := range q.pendingLikes {
			if pending.TmdbID == movie.TmdbID {
				return
			}
		}
		q.pendingLikes = append(q.pendingLikes, movie)
		return
	}

	q.insertAtOffset(movie)
}

func (q *Queue) insertAtOffset(movie model.MovieMeta) {
	q.insertAt(q.currentIndex+injectOffset, movie)
}

func (q *Queue) insertAt(at int, movie model.MovieMeta) {
	if at > len(q.items) {
		at = len(q.items)
	}

	q.items = append(q.items, Item{})
	copy(q.items[at+1:], q.items[at:])
	q.items[at] = Item{Movie: movie, Source: SourcePartnerLike}
	q.seen[movie.TmdbID] = true
}

func (q *Queue) processPendingLikes() {
	pending := q.pendingLikes
	q.pendingLikes = nil

	// Later arrivals land after earlier ones, not all at the same
	// offset, so the flush preserves arrival order.
	inserted := 0
	for _, movie := range pending {
		if q.seen[movie.TmdbID] {
			continue
		}
		q.insertAt(q.currentIndex+injectOffset+inserted, movie)
		inserted++
	}
}

// PendingLikes reports how many injections are waiting on EndSwipe.
func (q *Queue) PendingLikes() int {
	return len(q.pendingLikes)
}

// Remaining is the number of unconsumed items.
func (q *Queue) Remaining() int {
	return len(q.items) - q.currentIndex
}

func (q *Queue) Len() int {
	return len(q.items)
}

func (q *Queue) SetMeta(meta FetchMeta) {
	// Never lose a locally started fetch on a metadata refresh.
	inFlight := q.meta.FetchInFlight
	q.meta = meta
	q.meta.FetchInFlight = inFlight
}

func (q *Queue) BeginFetch() {
	q.meta.FetchInFlight = true
}

func (q *Queue) EndFetch(hasMore bool) {
	q.meta.FetchInFlight = false
	q.meta.HasMore = hasMore
}

// ShouldFetchMore is a pure predicate over current state, safe to poll
// on every render without side effects.
func (q *Queue) ShouldFetchMore() bool {
	return q.meta.HasMore &&
		!q.meta.FetchInFlight &&
		q.Remaining() < lowWaterMark
}

// Reset clears everything for room teardown. Must run before a new
// room's queue is filled, or cards leak across sessions.
func (q *Queue) Reset() {
	q.items = q.items[:0]
	q.currentIndex = 0
	q.animating = false
	q.pendingLikes = nil
	q.meta = FetchMeta{}
	q.seen = make(map[int64]bool)
}
