package service

import (
	"context"

	"github.com/avc-dev/linkcut/internal/model"
)

// CodeRepository определяет проверку занятости кода в хранилище
type CodeRepository interface {
	Exists(ctx context.Context, code model.Code) (bool, error)
}
