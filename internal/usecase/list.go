package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/linkcut/internal/enrich"
	"github.com/avc-dev/linkcut/internal/model"
)

// List возвращает все ссылки, новые первыми
func (u *LinkUsecase) List(ctx context.Context) ([]model.LinkSummary, error) {
	links, err := u.repo.ListLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	summaries := make([]model.LinkSummary, len(links))
	for i, link := range links {
		summaries[i] = model.LinkSummary{
			ShortCode:   string(link.ShortCode),
			OriginalURL: string(link.OriginalURL),
			Clicks:      link.Clicks,
			CreatedAt:   link.CreatedAt,
			Title:       link.Title,
			Favicon:     enrich.FaviconURL(string(link.OriginalURL)),
		}
	}

	return summaries, nil
}
