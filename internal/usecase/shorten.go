package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/avc-dev/linkcut/internal/enrich"
	"github.com/avc-dev/linkcut/internal/model"
	"github.com/avc-dev/linkcut/internal/service"
	"github.com/avc-dev/linkcut/internal/store"
	"go.uber.org/zap"
)

// Shorten создает короткую ссылку для оригинального URL
// URL нормализуется и проверяется на доступность, после вставки
// запись по возможности обогащается заголовком страницы
func (u *LinkUsecase) Shorten(ctx context.Context, rawURL, customSlug string) (*model.ShortenResponse, error) {
	rawURL = strings.TrimSpace(rawURL)
	rawURL = strings.Trim(rawURL, `"'`)

	if rawURL == "" {
		return nil, ErrEmptyURL
	}

	originalURL := normalizeURL(rawURL)

	if !u.enricher.CheckReachable(ctx, originalURL) {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, originalURL)
	}

	code, err := u.allocator.AllocateCode(ctx, customSlug)
	if err != nil {
		if errors.Is(err, service.ErrCodeTaken) {
			return nil, fmt.Errorf("%w: %s", ErrCodeTaken, customSlug)
		}
		return nil, fmt.Errorf("failed to allocate code: %w", err)
	}

	link, err := u.repo.CreateLink(ctx, code, model.URL(originalURL))
	if err != nil {
		// Предварительная проверка могла проиграть гонку,
		// окончательное слово за уникальным ограничением хранилища
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: %s", ErrCodeTaken, code)
		}
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	link = u.enrichTitle(ctx, link, originalURL)

	shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), string(link.ShortCode))
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", string(link.ShortCode)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to build short URL: %w", err)
	}

	return &model.ShortenResponse{
		ShortCode:   string(link.ShortCode),
		ShortURL:    shortURL,
		OriginalURL: string(link.OriginalURL),
		Title:       link.Title,
		Favicon:     enrich.FaviconURL(originalURL),
	}, nil
}

// enrichTitle пытается получить заголовок страницы и сохранить его
// Любая ошибка здесь не мешает созданию ссылки и не повторяется
func (u *LinkUsecase) enrichTitle(ctx context.Context, link *model.Link, originalURL string) *model.Link {
	title := u.enricher.FetchTitle(ctx, originalURL)
	if title == "" {
		return link
	}

	updated, err := u.repo.SetTitle(ctx, link.ShortCode, title)
	if err != nil {
		u.logger.Warn("failed to store link title",
			zap.String("code", string(link.ShortCode)),
			zap.Error(err),
		)
		return link
	}

	return updated
}

// normalizeURL добавляет схему https, если схема не указана
func normalizeURL(rawURL string) string {
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return rawURL
	}

	return "https://" + rawURL
}
