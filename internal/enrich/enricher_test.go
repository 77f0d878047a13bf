package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newEnricher() *HTTPEnricher {
	return NewHTTPEnricher(2 * time.Second)
}

// TestCheckReachable проверяет пробу доступности HEAD с откатом на GET
func TestCheckReachable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    bool
	}{
		{
			name: "HEAD succeeds",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			want: true,
		},
		{
			name: "HEAD rejected, GET succeeds",
			handler: func(w http.ResponseWriter, r *http.Request) {
				// Часть серверов не поддерживает HEAD
				if r.Method == http.MethodHead {
					w.WriteHeader(http.StatusMethodNotAllowed)
					return
				}
				w.WriteHeader(http.StatusOK)
			},
			want: true,
		},
		{
			name: "Both methods fail",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			// Act
			reachable := newEnricher().CheckReachable(context.Background(), server.URL)

			// Assert
			assert.Equal(t, tt.want, reachable)
		})
	}
}

// TestCheckReachable_ServerDown проверяет недоступный сервер
func TestCheckReachable_ServerDown(t *testing.T) {
	// Arrange - сервер закрыт сразу, адрес свободен
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	// Act / Assert
	assert.False(t, newEnricher().CheckReachable(context.Background(), url))
}

// TestFetchTitle проверяет извлечение заголовка страницы
func TestFetchTitle(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
		want string
	}{
		{
			name: "Simple title",
			body: `<html><head><title>Example Domain</title></head></html>`,
			code: http.StatusOK,
			want: "Example Domain",
		},
		{
			name: "Title with attributes and whitespace",
			body: "<html><title data-x=\"1\">\n  Example \n</title></html>",
			code: http.StatusOK,
			want: "Example",
		},
		{
			name: "No title tag",
			body: `<html><body>hello</body></html>`,
			code: http.StatusOK,
			want: "",
		},
		{
			name: "Error status",
			body: `<html><title>Not Found</title></html>`,
			code: http.StatusNotFound,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			// Act
			title := newEnricher().FetchTitle(context.Background(), server.URL)

			// Assert
			assert.Equal(t, tt.want, title)
		})
	}
}

// TestFetchTitle_LongTitleTruncated проверяет ограничение длины заголовка
func TestFetchTitle_LongTitleTruncated(t *testing.T) {
	// Arrange
	longTitle := strings.Repeat("a", 500)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<title>" + longTitle + "</title>"))
	}))
	defer server.Close()

	// Act
	title := newEnricher().FetchTitle(context.Background(), server.URL)

	// Assert
	assert.Len(t, title, maxTitleLength)
}

// TestFaviconURL проверяет построение URL фавиконки
func TestFaviconURL(t *testing.T) {
	tests := []struct {
		name   string
		rawURL string
		want   string
	}{
		{
			name:   "Full URL",
			rawURL: "https://example.com/some/path",
			want:   "https://www.google.com/s2/favicons?domain=example.com&sz=32",
		},
		{
			name:   "URL without scheme",
			rawURL: "example.com/some/path",
			want:   "https://www.google.com/s2/favicons?domain=example.com&sz=32",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FaviconURL(tt.rawURL))
		})
	}
}
