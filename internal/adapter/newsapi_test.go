// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notesapp/pocketnotes/internal/config"
	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/models"
)

func newTestNewsClient(t *testing.T, serverURL string) NewsClient {
	t.Helper()

	cfg := config.News{
		BaseURL: serverURL,
		APIKey:  "test-key",
		Domains: "techcrunch.com",
	}

	return NewNewsAPIAdapter(cfg, logger.Nop())
}

// ── FetchArticles ───────────────────────────────────────────────────────────

func TestFetchArticles_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/everything", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("apiKey"))
		assert.Equal(t, "techcrunch.com", q.Get("domains"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "20", q.Get("pageSize"))
		assert.Equal(t, "2026-08-01", q.Get("from"))
		assert.Equal(t, "2026-08-31", q.Get("to"))

		resp := models.NewsResponse{
			Status:       "ok",
			TotalResults: 57,
			Articles: []models.Article{
				{Title: "first", URL: "https://example.com/1"},
				{Title: "second", URL: "https://example.com/2"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	client := newTestNewsClient(t, srv.URL)

	page, err := client.FetchArticles(context.Background(), models.NewsQuery{
		From: "2026-08-01",
		To:   "2026-08-31",
		Page: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 57, page.TotalResults)
	require.Len(t, page.Articles, 2)
	assert.Equal(t, "first", page.Articles[0].Title)
}

func TestFetchArticles_OmitsEmptyDateBounds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("from"))
		assert.False(t, q.Has("to"))
		assert.Equal(t, "1", q.Get("page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
	}))
	defer srv.Close()

	client := newTestNewsClient(t, srv.URL)

	page, err := client.FetchArticles(context.Background(), models.NewsQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page, "page zero is requested as page one")
	assert.Empty(t, page.Articles)
}

// ── Error classification ────────────────────────────────────────────────────

func TestFetchArticles_StatusClassification(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		body    string
		wantErr error
	}{
		{name: "rate limited", code: http.StatusTooManyRequests, body: `{"status":"error","code":"rateLimited","message":"too many requests"}`, wantErr: ErrRateLimited},
		{name: "bad api key", code: http.StatusUnauthorized, body: `{"status":"error","code":"apiKeyInvalid","message":"invalid key"}`, wantErr: ErrUnauthorized},
		{name: "forbidden", code: http.StatusForbidden, body: `{"status":"error","message":"not allowed"}`, wantErr: ErrForbidden},
		{name: "other client error", code: http.StatusBadRequest, body: `{"status":"error","message":"bad page"}`, wantErr: ErrClient},
		{name: "server error", code: http.StatusBadGateway, body: "upstream down", wantErr: ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.code)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := newTestNewsClient(t, srv.URL)

			_, err := client.FetchArticles(context.Background(), models.NewsQuery{Page: 1})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchArticles_CarriesEndpointMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"status":"error","message":"You have made too many requests recently"}`))
	}))
	defer srv.Close()

	client := newTestNewsClient(t, srv.URL)

	_, err := client.FetchArticles(context.Background(), models.NewsQuery{Page: 1})
	require.ErrorIs(t, err, ErrRateLimited)
	assert.Contains(t, err.Error(), "You have made too many requests recently")
}

func TestFetchArticles_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := newTestNewsClient(t, srv.URL)

	_, err := client.FetchArticles(context.Background(), models.NewsQuery{Page: 1})
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestFetchArticles_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer func() {
		close(release)
		srv.Close()
	}()

	cfg := config.News{
		BaseURL:        srv.URL,
		APIKey:         "test-key",
		RequestTimeout: 50 * time.Millisecond,
	}
	client := NewNewsAPIAdapter(cfg, logger.Nop())

	_, err := client.FetchArticles(context.Background(), models.NewsQuery{Page: 1})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestFetchArticles_ErrorStatusInsideOKResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"error","message":"parameters missing"}`))
	}))
	defer srv.Close()

	client := newTestNewsClient(t, srv.URL)

	_, err := client.FetchArticles(context.Background(), models.NewsQuery{Page: 1})
	require.ErrorIs(t, err, ErrClient)
	assert.Contains(t, err.Error(), "parameters missing")
}

func TestNewNewsAPIAdapter_Defaults(t *testing.T) {
	client := NewNewsAPIAdapter(config.News{APIKey: "k"}, logger.Nop())
	assert.Equal(t, 20, client.PageSize())
}
