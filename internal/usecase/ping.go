package usecase

import "context"

// Ping проверяет доступность хранилища
func (u *LinkUsecase) Ping(ctx context.Context) error {
	return u.repo.Ping(ctx)
}
