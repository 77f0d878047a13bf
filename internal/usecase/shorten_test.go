package usecase

import (
	"context"
	"testing"

	"github.com/avc-dev/linkcut/internal/config"
	"github.com/avc-dev/linkcut/internal/repository"
	"github.com/avc-dev/linkcut/internal/service"
	"github.com/avc-dev/linkcut/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubEnricher реализует Enricher для тестов без сети
type stubEnricher struct {
	reachable bool
	title     string
}

func (s *stubEnricher) CheckReachable(context.Context, string) bool {
	return s.reachable
}

func (s *stubEnricher) FetchTitle(context.Context, string) string {
	return s.title
}

func newTestUsecase(enricher Enricher) *LinkUsecase {
	cfg := &config.Config{
		BaseURL: config.URLPrefix("http://localhost:8080"),
		Retry:   config.RetryConfig{MaxAttempts: 100},
	}

	repo := repository.New(store.NewStore())
	allocator := service.NewLinkService(repo, cfg)

	return NewLinkUsecase(repo, allocator, enricher, cfg, zap.NewNop())
}

// TestShorten_EmptyURL проверяет отказ при пустом URL
func TestShorten_EmptyURL(t *testing.T) {
	tests := []struct {
		name   string
		rawURL string
	}{
		{
			name:   "Empty string",
			rawURL: "",
		},
		{
			name:   "Whitespace only",
			rawURL: "   ",
		},
		{
			name:   "Quotes only",
			rawURL: `""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			u := newTestUsecase(&stubEnricher{reachable: true})

			// Act
			_, err := u.Shorten(context.Background(), tt.rawURL, "")

			// Assert
			assert.ErrorIs(t, err, ErrEmptyURL)
		})
	}
}

// TestShorten_Unreachable проверяет отказ для недоступного URL
func TestShorten_Unreachable(t *testing.T) {
	// Arrange
	u := newTestUsecase(&stubEnricher{reachable: false})

	// Act
	_, err := u.Shorten(context.Background(), "https://example.com", "")

	// Assert
	assert.ErrorIs(t, err, ErrUnreachable)
}

// TestShorten_SchemePrepended проверяет добавление https к URL без схемы
func TestShorten_SchemePrepended(t *testing.T) {
	// Arrange
	u := newTestUsecase(&stubEnricher{reachable: true})

	// Act
	resp, err := u.Shorten(context.Background(), "example.com", "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", resp.OriginalURL)
	assert.Len(t, resp.ShortCode, service.CodeLength)
	assert.Equal(t, "http://localhost:8080/"+resp.ShortCode, resp.ShortURL)
	assert.Equal(t, "https://www.google.com/s2/favicons?domain=example.com&sz=32", resp.Favicon)
}

// TestShorten_CustomSlug проверяет пользовательский код и защиту от дубликатов
func TestShorten_CustomSlug(t *testing.T) {
	// Arrange
	u := newTestUsecase(&stubEnricher{reachable: true})

	// Act
	resp, err := u.Shorten(context.Background(), "https://example.com", "mylink")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "mylink", resp.ShortCode)

	// Повторный запрос с тем же кодом должен провалиться
	_, err = u.Shorten(context.Background(), "https://other.example.com", "mylink")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCodeTaken)
}

// TestShorten_TitleEnrichment проверяет сохранение заголовка страницы
func TestShorten_TitleEnrichment(t *testing.T) {
	// Arrange
	u := newTestUsecase(&stubEnricher{reachable: true, title: "Example Domain"})

	// Act
	resp, err := u.Shorten(context.Background(), "https://example.com", "")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, resp.Title)
	assert.Equal(t, "Example Domain", *resp.Title)

	// Заголовок сохранен в хранилище, а не только в ответе
	summaries, err := u.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.NotNil(t, summaries[0].Title)
	assert.Equal(t, "Example Domain", *summaries[0].Title)
}

// TestShorten_NoTitle проверяет что отсутствие заголовка не мешает созданию
func TestShorten_NoTitle(t *testing.T) {
	// Arrange
	u := newTestUsecase(&stubEnricher{reachable: true})

	// Act
	resp, err := u.Shorten(context.Background(), "https://example.com", "")

	// Assert
	require.NoError(t, err)
	assert.Nil(t, resp.Title)
}

// TestLinkLifecycle проверяет полный цикл: создание, переходы, удаление
func TestLinkLifecycle(t *testing.T) {
	// Arrange
	u := newTestUsecase(&stubEnricher{reachable: true})
	ctx := context.Background()

	resp, err := u.Shorten(ctx, "example.com", "")
	require.NoError(t, err)
	require.Len(t, resp.ShortCode, service.CodeLength)

	// Act / Assert - каждый переход засчитывается
	link, err := u.Resolve(ctx, resp.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, int64(1), link.Clicks)

	link, err = u.Resolve(ctx, resp.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, int64(2), link.Clicks)

	err = u.Delete(ctx, resp.ShortCode)
	require.NoError(t, err)

	_, err = u.Resolve(ctx, resp.ShortCode)
	assert.ErrorIs(t, err, ErrLinkNotFound)

	err = u.Delete(ctx, resp.ShortCode)
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

// TestList_Order проверяет порядок выдачи списка
func TestList_Order(t *testing.T) {
	// Arrange
	u := newTestUsecase(&stubEnricher{reachable: true})
	ctx := context.Background()

	for _, slug := range []string{"first1", "second", "third3"} {
		_, err := u.Shorten(ctx, "https://example.com", slug)
		require.NoError(t, err)
	}

	// Act
	summaries, err := u.List(ctx)

	// Assert - новые первыми
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "third3", summaries[0].ShortCode)
	assert.Equal(t, "second", summaries[1].ShortCode)
	assert.Equal(t, "first1", summaries[2].ShortCode)
}
