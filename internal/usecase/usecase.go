package usecase

import (
	"context"

	"github.com/avc-dev/linkcut/internal/config"
	"github.com/avc-dev/linkcut/internal/model"
	"go.uber.org/zap"
)

// LinkRepository определяет интерфейс для работы с хранилищем ссылок
type LinkRepository interface {
	CreateLink(ctx context.Context, code model.Code, originalURL model.URL) (*model.Link, error)
	Resolve(ctx context.Context, code model.Code) (*model.Link, error)
	ListLinks(ctx context.Context) ([]*model.Link, error)
	SetTitle(ctx context.Context, code model.Code, title string) (*model.Link, error)
	DeleteLink(ctx context.Context, code model.Code) (bool, error)
	Ping(ctx context.Context) error
}

// CodeAllocator определяет интерфейс выделения коротких кодов
type CodeAllocator interface {
	AllocateCode(ctx context.Context, customSlug string) (model.Code, error)
}

// Enricher определяет интерфейс обогащения ссылок
// Реализация внешняя и заменяемая: проверка доступности и заголовок
// могут уехать в фоновую обработку без изменения хранилища и аллокатора
type Enricher interface {
	CheckReachable(ctx context.Context, url string) bool
	FetchTitle(ctx context.Context, url string) string
}

// LinkUsecase содержит бизнес-логику для работы со ссылками
type LinkUsecase struct {
	repo      LinkRepository
	allocator CodeAllocator
	enricher  Enricher
	cfg       *config.Config
	logger    *zap.Logger
}

// NewLinkUsecase создает новый экземпляр LinkUsecase
func NewLinkUsecase(repo LinkRepository, allocator CodeAllocator, enricher Enricher, cfg *config.Config, logger *zap.Logger) *LinkUsecase {
	return &LinkUsecase{
		repo:      repo,
		allocator: allocator,
		enricher:  enricher,
		cfg:       cfg,
		logger:    logger,
	}
}
