package models

// ArticleSource identifies the outlet an article was published by.
type ArticleSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article is a single remote news item. Articles are read-only to this
// application and are never persisted beyond the in-memory page cache.
type Article struct {
	Source      ArticleSource `json:"source"`
	Author      string        `json:"author"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage"`
	PublishedAt string        `json:"publishedAt"`
	Content     string        `json:"content"`
}

// NewsResponse is the wire shape of the news endpoint's reply. Message is
// populated only on error responses.
type NewsResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Message      string    `json:"message,omitempty"`
}

// NewsQuery carries the parameters of one fetch request. From and To are
// optional date bounds in YYYY-MM-DD form; Page is 1-based.
type NewsQuery struct {
	From string
	To   string
	Page int
}

// NewsPage is one fetched page together with the endpoint's total count,
// from which the feed computes whether more pages exist.
type NewsPage struct {
	Articles     []Article
	TotalResults int
	Page         int
}
