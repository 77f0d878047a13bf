package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/linkcut/internal/model"
)

// Delete удаляет ссылку по коду
// Возвращает ErrLinkNotFound, если записи не было
func (u *LinkUsecase) Delete(ctx context.Context, code string) error {
	deleted, err := u.repo.DeleteLink(ctx, model.Code(code))
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	if !deleted {
		return fmt.Errorf("%w: %s", ErrLinkNotFound, code)
	}

	return nil
}
