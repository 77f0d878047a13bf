package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/avc-dev/linkcut/internal/model"
)

const (
	CodeLength   = 6
	AllowedChars = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// randomCode генерирует случайный код фиксированной длины
// Источник случайности криптографический, коды нельзя предугадать перебором
func randomCode() (model.Code, error) {
	result := make([]byte, CodeLength)
	alphabetLen := big.NewInt(int64(len(AllowedChars)))

	for i := range result {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		result[i] = AllowedChars[n.Int64()]
	}

	return model.Code(result), nil
}
