package adapter

import (
	"context"

	"github.com/notesapp/pocketnotes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NewsClient fetches one page of articles from the remote news endpoint.
// Implementations classify failures into the package sentinel errors so
// callers can branch with errors.Is instead of inspecting status codes.
type NewsClient interface {
	FetchArticles(ctx context.Context, query models.NewsQuery) (models.NewsPage, error)

	// PageSize reports the fixed page size every request is issued with.
	PageSize() int
}
