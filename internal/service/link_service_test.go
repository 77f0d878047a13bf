package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avc-dev/linkcut/internal/config"
	"github.com/avc-dev/linkcut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCodeRepository реализует CodeRepository для тестов
type fakeCodeRepository struct {
	taken      map[model.Code]bool
	takenDraws int // первые takenDraws проверок отвечают "занято"
	checks     int
	err        error
}

func (f *fakeCodeRepository) Exists(_ context.Context, code model.Code) (bool, error) {
	f.checks++
	if f.err != nil {
		return false, f.err
	}
	if f.checks <= f.takenDraws {
		return true, nil
	}
	return f.taken[code], nil
}

func newTestConfig(maxAttempts int) *config.Config {
	return &config.Config{
		Retry: config.RetryConfig{MaxAttempts: maxAttempts},
	}
}

// TestAllocateCode_CustomSlug проверяет выделение пользовательского кода
func TestAllocateCode_CustomSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		taken   bool
		wantErr error
	}{
		{
			name: "Free slug is accepted",
			slug: "mylink",
		},
		{
			name:    "Taken slug is rejected",
			slug:    "mylink",
			taken:   true,
			wantErr: ErrCodeTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			repo := &fakeCodeRepository{taken: map[model.Code]bool{
				model.Code(tt.slug): tt.taken,
			}}
			svc := NewLinkService(repo, newTestConfig(100))

			// Act
			code, err := svc.AllocateCode(context.Background(), tt.slug)

			// Assert
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.Code(tt.slug), code)
		})
	}
}

// TestAllocateCode_GeneratedRetries проверяет повтор генерации при занятых кодах
func TestAllocateCode_GeneratedRetries(t *testing.T) {
	tests := []struct {
		name       string
		takenDraws int
		wantChecks int
	}{
		{
			name:       "First draw is free",
			takenDraws: 0,
			wantChecks: 1,
		},
		{
			name:       "Third draw is free",
			takenDraws: 2,
			wantChecks: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			repo := &fakeCodeRepository{takenDraws: tt.takenDraws}
			svc := NewLinkService(repo, newTestConfig(100))

			// Act
			code, err := svc.AllocateCode(context.Background(), "")

			// Assert
			require.NoError(t, err)
			assert.Equal(t, CodeLength, len(code))
			assert.Equal(t, tt.wantChecks, repo.checks)
		})
	}
}

// TestAllocateCode_MaxRetriesExceeded проверяет отказ при исчерпании попыток
func TestAllocateCode_MaxRetriesExceeded(t *testing.T) {
	// Arrange - все коды заняты
	repo := &fakeCodeRepository{takenDraws: 1000}
	svc := NewLinkService(repo, newTestConfig(5))

	// Act
	_, err := svc.AllocateCode(context.Background(), "")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
	assert.Equal(t, 5, repo.checks)
}

// TestAllocateCode_RepositoryError проверяет проброс ошибки хранилища
func TestAllocateCode_RepositoryError(t *testing.T) {
	// Arrange
	storeErr := errors.New("storage is down")
	repo := &fakeCodeRepository{err: storeErr}
	svc := NewLinkService(repo, newTestConfig(100))

	// Act
	_, err := svc.AllocateCode(context.Background(), "")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
