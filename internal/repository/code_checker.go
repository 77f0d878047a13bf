package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/linkcut/internal/model"
)

// Exists проверяет существование кода в хранилище
// Это предварительная проверка: гонку вставок разрешает
// уникальное ограничение хранилища, а не этот вызов
func (r *Repository) Exists(ctx context.Context, code model.Code) (bool, error) {
	exists, err := r.underlying.CodeExists(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return exists, nil
}
