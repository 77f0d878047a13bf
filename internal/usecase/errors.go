package usecase

import "errors"

var (
	ErrEmptyURL     = errors.New("empty URL")
	ErrUnreachable  = errors.New("URL is not reachable")
	ErrCodeTaken    = errors.New("short code already taken")
	ErrLinkNotFound = errors.New("link not found")
)
