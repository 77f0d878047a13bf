package store

import (
	"context"
	"fmt"

	"github.com/avc-dev/linkcut/internal/model"
)

// FileStore декоратор над Store, который добавляет персистентность через файл
// Клики и заголовки меняют существующие записи, поэтому после каждой
// мутации сохраняется полный снимок, а не дописывается журнал
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	links, err := fs.fileStorage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}
	fs.store.InitializeWith(links)

	return fs, nil
}

// CreateLink создает запись в памяти и сохраняет снимок
func (fs *FileStore) CreateLink(ctx context.Context, code model.Code, originalURL model.URL) (*model.Link, error) {
	link, err := fs.store.CreateLink(ctx, code, originalURL)
	if err != nil {
		return nil, err
	}

	if err := fs.snapshot(ctx); err != nil {
		return nil, err
	}

	return link, nil
}

// Resolve увеличивает счетчик кликов и сохраняет снимок
func (fs *FileStore) Resolve(ctx context.Context, code model.Code) (*model.Link, error) {
	link, err := fs.store.Resolve(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := fs.snapshot(ctx); err != nil {
		return nil, err
	}

	return link, nil
}

// GetLink читает запись из in-memory store
func (fs *FileStore) GetLink(ctx context.Context, code model.Code) (*model.Link, error) {
	return fs.store.GetLink(ctx, code)
}

// ListLinks возвращает снимок всех записей, новые первыми
func (fs *FileStore) ListLinks(ctx context.Context) ([]*model.Link, error) {
	return fs.store.ListLinks(ctx)
}

// SetTitle устанавливает заголовок и сохраняет снимок
func (fs *FileStore) SetTitle(ctx context.Context, code model.Code, title string) (*model.Link, error) {
	link, err := fs.store.SetTitle(ctx, code, title)
	if err != nil {
		return nil, err
	}

	if err := fs.snapshot(ctx); err != nil {
		return nil, err
	}

	return link, nil
}

// DeleteLink удаляет запись и сохраняет снимок
func (fs *FileStore) DeleteLink(ctx context.Context, code model.Code) (bool, error) {
	deleted, err := fs.store.DeleteLink(ctx, code)
	if err != nil || !deleted {
		return deleted, err
	}

	if err := fs.snapshot(ctx); err != nil {
		return false, err
	}

	return true, nil
}

// CodeExists проверяет, занят ли код живой записью
func (fs *FileStore) CodeExists(ctx context.Context, code model.Code) (bool, error) {
	return fs.store.CodeExists(ctx, code)
}

// Ping для файлового хранилища всегда успешен
func (fs *FileStore) Ping(ctx context.Context) error {
	return fs.store.Ping(ctx)
}

func (fs *FileStore) snapshot(ctx context.Context) error {
	links, err := fs.store.ListLinks(ctx)
	if err != nil {
		return err
	}

	if err := fs.fileStorage.Save(links); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}

	return nil
}
