package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/linkcut/internal/model"
	"github.com/avc-dev/linkcut/internal/store"
)

// Resolve возвращает запись по коду, засчитывая переход
func (u *LinkUsecase) Resolve(ctx context.Context, code string) (*model.Link, error) {
	link, err := u.repo.Resolve(ctx, model.Code(code))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrLinkNotFound, code)
		}
		return nil, fmt.Errorf("failed to resolve link: %w", err)
	}

	return link, nil
}
