package model

import "time"

// ShortenRequest представляет тело запроса на сокращение URL
type ShortenRequest struct {
	URL        string `json:"url"`
	CustomSlug string `json:"custom_slug,omitempty"`
}

// ShortenResponse представляет ответ на успешное сокращение URL
type ShortenResponse struct {
	ShortCode   string  `json:"short_code"`
	ShortURL    string  `json:"short_url"`
	OriginalURL string  `json:"original_url"`
	Title       *string `json:"title"`
	Favicon     string  `json:"favicon"`
}

// LinkSummary представляет элемент списка ссылок
type LinkSummary struct {
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	Clicks      int64     `json:"clicks"`
	CreatedAt   time.Time `json:"created_at"`
	Title       *string   `json:"title"`
	Favicon     string    `json:"favicon"`
}
