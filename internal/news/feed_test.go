// SPDX-License-Identifier: Apache-2.0

package news

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notesapp/pocketnotes/internal/adapter"
	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/models"
)

// ─────────────────────────────────────────────
// Mock: adapter.NewsClient
// ─────────────────────────────────────────────

type mockNewsClient struct {
	fetchFn  func(ctx context.Context, query models.NewsQuery) (models.NewsPage, error)
	pageSize int
}

func (m *mockNewsClient) FetchArticles(ctx context.Context, query models.NewsQuery) (models.NewsPage, error) {
	if m.fetchFn != nil {
		return m.fetchFn(ctx, query)
	}
	return models.NewsPage{}, nil
}

func (m *mockNewsClient) PageSize() int {
	if m.pageSize > 0 {
		return m.pageSize
	}
	return 20
}

func articlesPage(page, count, total int) models.NewsPage {
	articles := make([]models.Article, count)
	for i := range articles {
		articles[i] = models.Article{Title: fmt.Sprintf("page %d article %d", page, i)}
	}
	return models.NewsPage{Articles: articles, TotalResults: total, Page: page}
}

// ─────────────────────────────────────────────
// Refresh
// ─────────────────────────────────────────────

func TestFeed_Refresh(t *testing.T) {
	ctx := context.Background()

	client := &mockNewsClient{
		fetchFn: func(_ context.Context, query models.NewsQuery) (models.NewsPage, error) {
			assert.Equal(t, 1, query.Page)
			assert.Equal(t, "2026-08-01", query.From)
			return articlesPage(1, 20, 57), nil
		},
	}

	feed := NewFeed(client, logger.Nop())

	articles, err := feed.Refresh(ctx, "2026-08-01", "")
	require.NoError(t, err)

	assert.Len(t, articles, 20)
	assert.Equal(t, StateLoaded, feed.State())
	assert.Equal(t, 1, feed.Page())
	assert.Equal(t, 57, feed.TotalResults())
	assert.True(t, feed.HasMore(), "20 of 57 results means more pages exist")
}

func TestFeed_Refresh_ReplacesBuffer(t *testing.T) {
	ctx := context.Background()

	client := &mockNewsClient{
		fetchFn: func(_ context.Context, query models.NewsQuery) (models.NewsPage, error) {
			return articlesPage(query.Page, 20, 100), nil
		},
	}

	feed := NewFeed(client, logger.Nop())

	_, err := feed.Refresh(ctx, "", "")
	require.NoError(t, err)
	_, err = feed.LoadMore(ctx)
	require.NoError(t, err)
	assert.Len(t, feed.Articles(), 40)

	articles, err := feed.Refresh(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, articles, 20, "refresh drops previously buffered pages")
	assert.Equal(t, 1, feed.Page())
}

func TestFeed_Refresh_ClearsRateLimitBeforeRequest(t *testing.T) {
	ctx := context.Background()

	calls := 0
	client := &mockNewsClient{
		fetchFn: func(_ context.Context, _ models.NewsQuery) (models.NewsPage, error) {
			calls++
			if calls == 1 {
				return models.NewsPage{}, adapter.ErrRateLimited
			}
			return articlesPage(1, 5, 5), nil
		},
	}

	feed := NewFeed(client, logger.Nop())

	_, err := feed.Refresh(ctx, "", "")
	require.ErrorIs(t, err, adapter.ErrRateLimited)
	assert.True(t, feed.RateLimited())
	assert.Equal(t, StateRateLimited, feed.State())

	// a refresh always goes out, even while rate limited
	articles, err := feed.Refresh(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, articles, 5)
	assert.False(t, feed.RateLimited())
	assert.Equal(t, 2, calls)
}

// ─────────────────────────────────────────────
// LoadMore
// ─────────────────────────────────────────────

func TestFeed_LoadMore_AppendsInArrivalOrder(t *testing.T) {
	ctx := context.Background()

	client := &mockNewsClient{
		fetchFn: func(_ context.Context, query models.NewsQuery) (models.NewsPage, error) {
			return articlesPage(query.Page, 20, 57), nil
		},
	}

	feed := NewFeed(client, logger.Nop())

	_, err := feed.Refresh(ctx, "", "")
	require.NoError(t, err)

	articles, err := feed.LoadMore(ctx)
	require.NoError(t, err)

	require.Len(t, articles, 40)
	assert.Equal(t, "page 1 article 0", articles[0].Title)
	assert.Equal(t, "page 2 article 0", articles[20].Title)
	assert.Equal(t, 2, feed.Page())
	assert.True(t, feed.HasMore(), "40 of 57 results means a third page exists")
}

func TestFeed_LoadMore_HasMoreMath(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		pageCount   int
		total       int
		wantHasMore bool
	}{
		{name: "full page with remainder", pageCount: 20, total: 57, wantHasMore: true},
		{name: "full page exactly covering total", pageCount: 20, total: 20, wantHasMore: false},
		{name: "short page", pageCount: 7, total: 57, wantHasMore: false},
		{name: "empty page", pageCount: 0, total: 57, wantHasMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockNewsClient{
				fetchFn: func(_ context.Context, query models.NewsQuery) (models.NewsPage, error) {
					return articlesPage(query.Page, tt.pageCount, tt.total), nil
				},
			}

			feed := NewFeed(client, logger.Nop())

			_, err := feed.Refresh(ctx, "", "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantHasMore, feed.HasMore())
		})
	}
}

func TestFeed_LoadMore_RejectedLocallyWhileRateLimited(t *testing.T) {
	ctx := context.Background()

	calls := 0
	client := &mockNewsClient{
		fetchFn: func(_ context.Context, query models.NewsQuery) (models.NewsPage, error) {
			calls++
			if query.Page == 2 {
				return models.NewsPage{}, adapter.ErrRateLimited
			}
			return articlesPage(query.Page, 20, 100), nil
		},
	}

	feed := NewFeed(client, logger.Nop())

	_, err := feed.Refresh(ctx, "", "")
	require.NoError(t, err)

	_, err = feed.LoadMore(ctx)
	require.ErrorIs(t, err, adapter.ErrRateLimited)
	require.Equal(t, 2, calls)

	// further loads are rejected without touching the network
	_, err = feed.LoadMore(ctx)
	assert.ErrorIs(t, err, adapter.ErrRateLimited)
	assert.Equal(t, 2, calls, "a rate-limited feed must not issue page requests")

	feed.ResetRateLimit()
	assert.False(t, feed.RateLimited())

	_, err = feed.LoadMore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestFeed_LoadMore_NoMorePages(t *testing.T) {
	ctx := context.Background()

	client := &mockNewsClient{
		fetchFn: func(_ context.Context, query models.NewsQuery) (models.NewsPage, error) {
			return articlesPage(query.Page, 5, 5), nil
		},
	}

	feed := NewFeed(client, logger.Nop())

	_, err := feed.Refresh(ctx, "", "")
	require.NoError(t, err)
	require.False(t, feed.HasMore())

	_, err = feed.LoadMore(ctx)
	assert.ErrorIs(t, err, ErrNoMorePages)
}

func TestFeed_LoadMore_KeepsRefreshFilters(t *testing.T) {
	ctx := context.Background()

	var seen []models.NewsQuery
	client := &mockNewsClient{
		fetchFn: func(_ context.Context, query models.NewsQuery) (models.NewsPage, error) {
			seen = append(seen, query)
			return articlesPage(query.Page, 20, 100), nil
		},
	}

	feed := NewFeed(client, logger.Nop())

	_, err := feed.Refresh(ctx, "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	_, err = feed.LoadMore(ctx)
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "2026-08-01", seen[1].From)
	assert.Equal(t, "2026-08-31", seen[1].To)
	assert.Equal(t, 2, seen[1].Page)
}

// ─────────────────────────────────────────────
// Staleness rejection
// ─────────────────────────────────────────────

func TestFeed_StaleResponseIsDiscarded(t *testing.T) {
	ctx := context.Background()

	firstIssued := make(chan struct{})
	releaseFirst := make(chan struct{})

	calls := 0
	client := &mockNewsClient{
		fetchFn: func(_ context.Context, query models.NewsQuery) (models.NewsPage, error) {
			calls++
			if calls == 1 {
				close(firstIssued)
				<-releaseFirst // hold the first request in flight
				return articlesPage(query.Page, 20, 100), nil
			}
			return models.NewsPage{Articles: []models.Article{{Title: "fresh"}}, TotalResults: 1, Page: query.Page}, nil
		},
	}

	feed := NewFeed(client, logger.Nop())

	firstDone := make(chan error, 1)
	go func() {
		_, err := feed.Refresh(ctx, "", "")
		firstDone <- err
	}()

	<-firstIssued

	// a second refresh supersedes the in-flight one
	articles, err := feed.Refresh(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, articles, 1)

	close(releaseFirst)
	assert.ErrorIs(t, <-firstDone, ErrSuperseded)

	// the slow first page must not have clobbered the fresh result
	buffered := feed.Articles()
	require.Len(t, buffered, 1)
	assert.Equal(t, "fresh", buffered[0].Title)
	assert.Equal(t, 1, feed.TotalResults())
}

func TestFeed_FailureSetsFailedState(t *testing.T) {
	ctx := context.Background()

	client := &mockNewsClient{
		fetchFn: func(_ context.Context, _ models.NewsQuery) (models.NewsPage, error) {
			return models.NewsPage{}, adapter.ErrServer
		},
	}

	feed := NewFeed(client, logger.Nop())

	_, err := feed.Refresh(ctx, "", "")
	require.ErrorIs(t, err, adapter.ErrServer)
	assert.Equal(t, StateFailed, feed.State())
	assert.False(t, feed.RateLimited())
}
