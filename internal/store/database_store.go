package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/linkcut/internal/config/db"
	"github.com/avc-dev/linkcut/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation - код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

const linkColumns = `id, short_code, original_url, clicks, title, created_at`

// DatabaseStore реализует хранилище ссылок поверх PostgreSQL
// Уникальный индекс по short_code служит арбитром при гонке вставок
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	adapter, ok := database.(*db.DBAdapter)
	if !ok {
		panic("DatabaseStore requires DBAdapter")
	}

	return &DatabaseStore{
		pool: adapter.Pool,
	}
}

// CreateLink вставляет новую запись с нулевым счетчиком кликов
// Возвращает ErrAlreadyExists при нарушении уникальности short_code
func (ds *DatabaseStore) CreateLink(ctx context.Context, code model.Code, originalURL model.URL) (*model.Link, error) {
	query := `
		INSERT INTO links (short_code, original_url)
		VALUES ($1, $2)
		RETURNING ` + linkColumns

	link, err := scanLink(ds.pool.QueryRow(ctx, query, string(code), string(originalURL)))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("code %s: %w", code, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to insert link: %w", err)
	}

	return link, nil
}

// Resolve увеличивает счетчик кликов и возвращает обновленную запись
// Инкремент и чтение выполняются одним запросом, конкурентные вызовы не теряют обновлений
func (ds *DatabaseStore) Resolve(ctx context.Context, code model.Code) (*model.Link, error) {
	query := `
		UPDATE links
		SET clicks = clicks + 1
		WHERE short_code = $1
		RETURNING ` + linkColumns

	link, err := scanLink(ds.pool.QueryRow(ctx, query, string(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve link: %w", err)
	}

	return link, nil
}

// GetLink возвращает запись без изменения счетчика кликов
func (ds *DatabaseStore) GetLink(ctx context.Context, code model.Code) (*model.Link, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM links
		WHERE short_code = $1`

	link, err := scanLink(ds.pool.QueryRow(ctx, query, string(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read link: %w", err)
	}

	return link, nil
}

// ListLinks возвращает все записи, новые первыми
// При одинаковом времени создания порядок определяется id
func (ds *DatabaseStore) ListLinks(ctx context.Context) ([]*model.Link, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM links
		ORDER BY created_at DESC, id DESC`

	rows, err := ds.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

	var links []*model.Link
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate links: %w", err)
	}

	return links, nil
}

// SetTitle устанавливает заголовок записи
func (ds *DatabaseStore) SetTitle(ctx context.Context, code model.Code, title string) (*model.Link, error) {
	query := `
		UPDATE links
		SET title = $2
		WHERE short_code = $1
		RETURNING ` + linkColumns

	link, err := scanLink(ds.pool.QueryRow(ctx, query, string(code), title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to set title: %w", err)
	}

	return link, nil
}

// DeleteLink удаляет запись и сообщает, была ли она удалена
func (ds *DatabaseStore) DeleteLink(ctx context.Context, code model.Code) (bool, error) {
	tag, err := ds.pool.Exec(ctx, `DELETE FROM links WHERE short_code = $1`, string(code))
	if err != nil {
		return false, fmt.Errorf("failed to delete link: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// CodeExists проверяет, занят ли код живой записью
func (ds *DatabaseStore) CodeExists(ctx context.Context, code model.Code) (bool, error) {
	var exists bool

	query := `
		SELECT EXISTS
		(SELECT 1 FROM links WHERE short_code = $1)`

	if err := ds.pool.QueryRow(ctx, query, string(code)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return exists, nil
}

// Ping проверяет подключение к базе данных
func (ds *DatabaseStore) Ping(ctx context.Context) error {
	return ds.pool.Ping(ctx)
}

func scanLink(row pgx.Row) (*model.Link, error) {
	link := &model.Link{}

	err := row.Scan(
		&link.ID,
		&link.ShortCode,
		&link.OriginalURL,
		&link.Clicks,
		&link.Title,
		&link.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return link, nil
}
