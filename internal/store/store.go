package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/avc-dev/linkcut/internal/model"
)

var (
	ErrNotFound      = errors.New("link not found")
	ErrAlreadyExists = errors.New("short code already exists")
)

// Store реализует хранилище ссылок в памяти
// Используется в тестах и при запуске без БД
type Store struct {
	mutex  sync.Mutex
	links  map[model.Code]*model.Link
	nextID int64
}

func NewStore() *Store {
	return &Store{
		links:  make(map[model.Code]*model.Link),
		nextID: 1,
	}
}

// CreateLink создает новую запись с нулевым счетчиком кликов
// Возвращает ErrAlreadyExists, если код уже занят
func (s *Store) CreateLink(_ context.Context, code model.Code, originalURL model.URL) (*model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.links[code]; exists {
		return nil, fmt.Errorf("code %s: %w", code, ErrAlreadyExists)
	}

	link := &model.Link{
		ID:          s.nextID,
		ShortCode:   code,
		OriginalURL: originalURL,
		CreatedAt:   time.Now(),
	}
	s.nextID++
	s.links[code] = link

	return cloneLink(link), nil
}

// Resolve атомарно увеличивает счетчик кликов и возвращает обновленную запись
func (s *Store) Resolve(_ context.Context, code model.Code) (*model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[code]
	if !ok {
		return nil, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	link.Clicks++

	return cloneLink(link), nil
}

// GetLink возвращает запись без изменения счетчика кликов
func (s *Store) GetLink(_ context.Context, code model.Code) (*model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[code]
	if !ok {
		return nil, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return cloneLink(link), nil
}

// ListLinks возвращает снимок всех записей, новые первыми
func (s *Store) ListLinks(_ context.Context) ([]*model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	links := make([]*model.Link, 0, len(s.links))
	for _, link := range s.links {
		links = append(links, cloneLink(link))
	}

	sort.Slice(links, func(i, j int) bool {
		if !links[i].CreatedAt.Equal(links[j].CreatedAt) {
			return links[i].CreatedAt.After(links[j].CreatedAt)
		}
		return links[i].ID > links[j].ID
	})

	return links, nil
}

// SetTitle устанавливает заголовок записи
// Повторный вызов перезаписывает заголовок
func (s *Store) SetTitle(_ context.Context, code model.Code, title string) (*model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[code]
	if !ok {
		return nil, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	link.Title = &title

	return cloneLink(link), nil
}

// DeleteLink удаляет запись и сообщает, была ли она удалена
func (s *Store) DeleteLink(_ context.Context, code model.Code) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.links[code]; !ok {
		return false, nil
	}

	delete(s.links, code)

	return true, nil
}

// CodeExists проверяет, занят ли код живой записью
func (s *Store) CodeExists(_ context.Context, code model.Code) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, ok := s.links[code]

	return ok, nil
}

// Ping для in-memory хранилища всегда успешен
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// InitializeWith инициализирует хранилище данными (без проверки на существование)
// Используется для загрузки снимка из файла
func (s *Store) InitializeWith(links []*model.Link) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, link := range links {
		s.links[link.ShortCode] = cloneLink(link)
		if link.ID >= s.nextID {
			s.nextID = link.ID + 1
		}
	}
}

func cloneLink(link *model.Link) *model.Link {
	clone := *link
	if link.Title != nil {
		title := *link.Title
		clone.Title = &title
	}
	return &clone
}
