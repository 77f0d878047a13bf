package service

import "errors"

var (
	// ErrMaxRetriesExceeded возвращается когда не удалось сгенерировать уникальный код
	// после максимального количества попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for code generation")

	// ErrCodeTaken возвращается когда запрошенный пользователем код уже занят
	ErrCodeTaken = errors.New("short code already taken")
)
