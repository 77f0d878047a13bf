package model

import "time"

// Code представляет короткий код ссылки
type Code string

func (c Code) String() string {
	return string(c)
}

// URL представляет оригинальный URL
type URL string

func (u URL) String() string {
	return string(u)
}

// Link представляет запись сокращённой ссылки в хранилище
type Link struct {
	ID          int64
	ShortCode   Code
	OriginalURL URL
	Clicks      int64
	Title       *string // nil пока обогащение не заполнило заголовок
	CreatedAt   time.Time
}
