package service

import (
	"context"
	"fmt"

	"github.com/avc-dev/linkcut/internal/config"
	"github.com/avc-dev/linkcut/internal/model"
)

// LinkService выделяет короткие коды для новых ссылок
type LinkService struct {
	repo CodeRepository
	cfg  *config.Config
}

// NewLinkService создает новый экземпляр LinkService
func NewLinkService(repo CodeRepository, cfg *config.Config) *LinkService {
	return &LinkService{
		repo: repo,
		cfg:  cfg,
	}
}

// AllocateCode возвращает код для новой ссылки
// Пользовательский код проверяется на занятость, иначе генерируется случайный
// Проверка здесь предварительная: гонку вставок разрешает ограничение хранилища
func (s *LinkService) AllocateCode(ctx context.Context, customSlug string) (model.Code, error) {
	if customSlug != "" {
		code := model.Code(customSlug)

		exists, err := s.repo.Exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to validate custom slug: %w", err)
		}
		if exists {
			return "", fmt.Errorf("slug %s: %w", customSlug, ErrCodeTaken)
		}

		return code, nil
	}

	return s.generateUniqueCode(ctx)
}

// generateUniqueCode генерирует код и повторяет попытку, пока не найдет свободный
// Пространство кодов 36^6, так что коллизии редки, но проверка обязательна
func (s *LinkService) generateUniqueCode(ctx context.Context) (model.Code, error) {
	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		code, err := randomCode()
		if err != nil {
			return "", err
		}

		exists, err := s.repo.Exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check generated code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique code after %d attempts: %w", s.cfg.Retry.MaxAttempts, ErrMaxRetriesExceeded)
}
