package enrich

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	// maxTitleScanBytes ограничивает объем тела, в котором ищется заголовок
	maxTitleScanBytes = 64 * 1024
	// maxTitleLength ограничивает длину сохраняемого заголовка
	maxTitleLength = 200
)

var titleRe = regexp.MustCompile(`(?is)<title[^>]*>([^<]+)</title>`)

// HTTPEnricher проверяет доступность URL и извлекает заголовок страницы
// Все запросы ограничены таймаутом клиента, ошибки не фатальны для создания ссылки
type HTTPEnricher struct {
	client *http.Client
}

// NewHTTPEnricher создает новый HTTPEnricher с заданным таймаутом запросов
func NewHTTPEnricher(timeout time.Duration) *HTTPEnricher {
	return &HTTPEnricher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// CheckReachable проверяет, отвечает ли URL
// Сначала HEAD, при неудаче GET: часть серверов не поддерживает HEAD
func (e *HTTPEnricher) CheckReachable(ctx context.Context, rawURL string) bool {
	if e.probe(ctx, http.MethodHead, rawURL) {
		return true
	}

	return e.probe(ctx, http.MethodGet, rawURL)
}

func (e *HTTPEnricher) probe(ctx context.Context, method, rawURL string) bool {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return false
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < http.StatusBadRequest
}

// FetchTitle извлекает содержимое тега title страницы
// Возвращает пустую строку при любой ошибке
func (e *HTTPEnricher) FetchTitle(ctx context.Context, rawURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return ""
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTitleScanBytes))
	if err != nil {
		return ""
	}

	match := titleRe.FindSubmatch(body)
	if match == nil {
		return ""
	}

	title := strings.TrimSpace(string(match[1]))
	if runes := []rune(title); len(runes) > maxTitleLength {
		title = string(runes[:maxTitleLength])
	}

	return title
}

// FaviconURL формирует URL фавиконки для домена ссылки
// Чистая функция, сетевых вызовов не делает
func FaviconURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	domain := parsed.Host
	if domain == "" {
		domain = strings.Split(parsed.Path, "/")[0]
	}

	return fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=32", domain)
}
