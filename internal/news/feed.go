// Package news keeps the in-memory article feed: an append-only page
// buffer over the remote news endpoint with rate-limit latching and
// stale-response rejection.
package news

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/notesapp/pocketnotes/internal/adapter"
	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/models"
)

// State is the feed lifecycle phase.
type State string

const (
	StateIdle        State = "idle"
	StateLoading     State = "loading"
	StateLoaded      State = "loaded"
	StateFailed      State = "failed"
	StateRateLimited State = "rate_limited"
)

// Feed caches fetched articles page by page. Pages are appended in arrival
// order; the buffer lives only in memory and is dropped on every refresh.
//
// Every outbound request takes a sequence number. A response mutates the
// feed only if its sequence is still the latest issued, so a slow page
// can never clobber a refresh that started after it.
type Feed struct {
	client adapter.NewsClient
	logger *logger.Logger

	mu           sync.Mutex
	seq          uint64
	state        State
	filters      models.NewsQuery
	articles     []models.Article
	totalResults int
	page         int
	hasMore      bool
	rateLimited  bool
}

func NewFeed(client adapter.NewsClient, logger *logger.Logger) *Feed {
	return &Feed{
		client: client,
		logger: logger,
		state:  StateIdle,
	}
}

// Refresh drops the buffer and loads page one with the given date bounds.
// The buffer and the rate-limit latch are cleared before the request goes
// out, so a refresh always escapes a rate-limited feed.
func (f *Feed) Refresh(ctx context.Context, from, to string) ([]models.Article, error) {
	f.mu.Lock()
	f.seq++
	seq := f.seq
	f.state = StateLoading
	f.filters = models.NewsQuery{From: from, To: to}
	f.articles = nil
	f.totalResults = 0
	f.page = 0
	f.hasMore = false
	f.rateLimited = false
	query := models.NewsQuery{From: from, To: to, Page: 1}
	f.mu.Unlock()

	return f.fetch(ctx, seq, query)
}

// LoadMore appends the next page. While the rate-limit latch is set the
// call is rejected locally without touching the network; once the end of
// the result set is reached it returns ErrNoMorePages.
func (f *Feed) LoadMore(ctx context.Context) ([]models.Article, error) {
	f.mu.Lock()
	if f.rateLimited {
		f.mu.Unlock()
		return nil, adapter.ErrRateLimited
	}
	if f.page > 0 && !f.hasMore {
		f.mu.Unlock()
		return nil, ErrNoMorePages
	}

	f.seq++
	seq := f.seq
	f.state = StateLoading
	query := f.filters
	query.Page = f.page + 1
	f.mu.Unlock()

	return f.fetch(ctx, seq, query)
}

// fetch issues the request for seq and applies the outcome if seq is
// still the latest issued.
func (f *Feed) fetch(ctx context.Context, seq uint64, query models.NewsQuery) ([]models.Article, error) {
	fetched, err := f.client.FetchArticles(ctx, query)

	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.seq {
		logger.FromContext(ctx).Debug().Str("func", "Feed.fetch").Uint64("seq", seq).Uint64("latest", f.seq).Msg("discarding stale news response")
		return nil, ErrSuperseded
	}

	if err != nil {
		if errors.Is(err, adapter.ErrRateLimited) {
			f.rateLimited = true
			f.hasMore = false
			f.state = StateRateLimited
		} else {
			f.state = StateFailed
		}
		logger.FromContext(ctx).Error().Err(err).Str("func", "Feed.fetch").Int("page", query.Page).Msg("news page load failed")
		return nil, fmt.Errorf("load news page %d: %w", query.Page, err)
	}

	if query.Page == 1 {
		f.articles = fetched.Articles
	} else {
		f.articles = append(f.articles, fetched.Articles...)
	}
	f.totalResults = fetched.TotalResults
	f.page = fetched.Page
	f.hasMore = len(fetched.Articles) == f.client.PageSize() && fetched.Page*f.client.PageSize() < fetched.TotalResults
	f.state = StateLoaded

	return f.snapshotLocked(), nil
}

// ResetRateLimit clears the rate-limit latch without issuing a request.
// The cooldown worker calls this after the configured window.
func (f *Feed) ResetRateLimit() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.rateLimited {
		return
	}

	f.rateLimited = false
	if f.state == StateRateLimited {
		f.state = StateLoaded
	}
}

// Articles returns a copy of the buffered articles in arrival order.
func (f *Feed) Articles() []models.Article {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.snapshotLocked()
}

func (f *Feed) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.hasMore
}

func (f *Feed) RateLimited() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.rateLimited
}

func (f *Feed) Page() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.page
}

func (f *Feed) TotalResults() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.totalResults
}

func (f *Feed) snapshotLocked() []models.Article {
	out := make([]models.Article, len(f.articles))
	copy(out, f.articles)

	return out
}
