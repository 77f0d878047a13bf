package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avc-dev/linkcut/internal/model"
)

// linkRecord представляет запись ссылки в файле снимка
type linkRecord struct {
	ID          int64     `json:"id"`
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	Clicks      int64     `json:"clicks"`
	Title       *string   `json:"title,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// FileStorage сохраняет и загружает снимок ссылок в JSON-файле
type FileStorage struct {
	filePath string
}

// NewFileStorage создает новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{filePath: filePath}
}

// Load загружает снимок из файла
// Отсутствие файла не является ошибкой
func (fs *FileStorage) Load() ([]*model.Link, error) {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var records []linkRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse storage file: %w", err)
	}

	links := make([]*model.Link, len(records))
	for i, rec := range records {
		links[i] = &model.Link{
			ID:          rec.ID,
			ShortCode:   model.Code(rec.ShortCode),
			OriginalURL: model.URL(rec.OriginalURL),
			Clicks:      rec.Clicks,
			Title:       rec.Title,
			CreatedAt:   rec.CreatedAt,
		}
	}

	return links, nil
}

// Save записывает снимок в файл
// Запись идет через временный файл, чтобы не потерять данные при сбое
func (fs *FileStorage) Save(links []*model.Link) error {
	records := make([]linkRecord, len(links))
	for i, link := range links {
		records[i] = linkRecord{
			ID:          link.ID,
			ShortCode:   string(link.ShortCode),
			OriginalURL: string(link.OriginalURL),
			Clicks:      link.Clicks,
			Title:       link.Title,
			CreatedAt:   link.CreatedAt,
		}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal storage snapshot: %w", err)
	}

	tmpPath := fs.filePath + ".tmp"
	if err := os.MkdirAll(filepath.Dir(fs.filePath), 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write storage snapshot: %w", err)
	}

	if err := os.Rename(tmpPath, fs.filePath); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}

	return nil
}
