package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/linkcut/internal/model"
)

// Store определяет контракт хранилища ссылок
// Реализуется in-memory, файловым и PostgreSQL хранилищами
type Store interface {
	CreateLink(ctx context.Context, code model.Code, originalURL model.URL) (*model.Link, error)
	Resolve(ctx context.Context, code model.Code) (*model.Link, error)
	GetLink(ctx context.Context, code model.Code) (*model.Link, error)
	ListLinks(ctx context.Context) ([]*model.Link, error)
	SetTitle(ctx context.Context, code model.Code, title string) (*model.Link, error)
	DeleteLink(ctx context.Context, code model.Code) (bool, error)
	CodeExists(ctx context.Context, code model.Code) (bool, error)
	Ping(ctx context.Context) error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r *Repository) CreateLink(ctx context.Context, code model.Code, originalURL model.URL) (*model.Link, error) {
	link, err := r.underlying.CreateLink(ctx, code, originalURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}
	return link, nil
}

func (r *Repository) Resolve(ctx context.Context, code model.Code) (*model.Link, error) {
	link, err := r.underlying.Resolve(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve link: %w", err)
	}
	return link, nil
}

func (r *Repository) ListLinks(ctx context.Context) ([]*model.Link, error) {
	links, err := r.underlying.ListLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

func (r *Repository) SetTitle(ctx context.Context, code model.Code, title string) (*model.Link, error) {
	link, err := r.underlying.SetTitle(ctx, code, title)
	if err != nil {
		return nil, fmt.Errorf("failed to set title: %w", err)
	}
	return link, nil
}

func (r *Repository) DeleteLink(ctx context.Context, code model.Code) (bool, error) {
	deleted, err := r.underlying.DeleteLink(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to delete link: %w", err)
	}
	return deleted, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.underlying.Ping(ctx)
}
