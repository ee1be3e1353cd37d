package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/notesapp/pocketnotes/internal/config"
	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/models"
)

const (
	defaultBaseURL  = "https://newsapi.org"
	defaultPageSize = 20
	defaultTimeout  = 15 * time.Second

	everythingPath = "/v2/everything"
)

// newsAPIAdapter is the REST implementation of [NewsClient] against the
// NewsAPI "everything" endpoint. The domain filter and API key are fixed
// at construction; page and date bounds come from the per-call query.
type newsAPIAdapter struct {
	client   *resty.Client
	apiKey   string
	domains  string
	pageSize int
	logger   *logger.Logger
}

// NewNewsAPIAdapter constructs a [NewsClient] from cfg. Zero-valued
// settings fall back to the endpoint defaults (base URL, 20 articles per
// page, 15s request timeout).
func NewNewsAPIAdapter(cfg config.News, logger *logger.Logger) NewsClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &newsAPIAdapter{
		client:   client,
		apiKey:   cfg.APIKey,
		domains:  cfg.Domains,
		pageSize: cfg.PageSize,
		logger:   logger,
	}
}

func (n *newsAPIAdapter) PageSize() int {
	return n.pageSize
}

// FetchArticles implements [NewsClient]. It issues
// GET /v2/everything?apiKey=...&domains=...&page=...&pageSize=... with the
// optional from/to date bounds (YYYY-MM-DD) from query. A page of zero or
// less is requested as page 1.
func (n *newsAPIAdapter) FetchArticles(ctx context.Context, query models.NewsQuery) (models.NewsPage, error) {
	log := logger.FromContext(ctx)

	page := query.Page
	if page <= 0 {
		page = 1
	}

	req := n.client.R().
		SetContext(ctx).
		SetQueryParam("apiKey", n.apiKey).
		SetQueryParam("domains", n.domains).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("pageSize", strconv.Itoa(n.pageSize))
	if query.From != "" {
		req.SetQueryParam("from", query.From)
	}
	if query.To != "" {
		req.SetQueryParam("to", query.To)
	}

	var body models.NewsResponse
	resp, err := req.SetResult(&body).Get(everythingPath)
	if err != nil {
		mapped := mapTransportError(err)
		log.Err(err).Str("func", "newsAPIAdapter.FetchArticles").Int("page", page).Msg("news request failed before a response arrived")
		return models.NewsPage{}, mapped
	}
	if err := mapHTTPError(resp); err != nil {
		log.Error().Err(err).Str("func", "newsAPIAdapter.FetchArticles").Int("page", page).Int("status", resp.StatusCode()).Msg("news request rejected")
		return models.NewsPage{}, err
	}

	// a 2xx body can still carry {"status": "error", "message": ...}
	if body.Status != "" && body.Status != "ok" {
		return models.NewsPage{}, fmt.Errorf("%w: %s", ErrClient, body.Message)
	}

	return models.NewsPage{
		Articles:     body.Articles,
		TotalResults: body.TotalResults,
		Page:         page,
	}, nil
}

// mapHTTPError classifies a non-2xx response into a package sentinel,
// carrying the endpoint's "message" field when the body parses as the
// standard error envelope.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp)

	switch {
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, message)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServer, code, message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrClient, code, message)
	}
}

func errorMessage(resp *resty.Response) string {
	var envelope models.NewsResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return body
}

// mapTransportError distinguishes a deadline from any other failure to
// reach the endpoint.
func mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
