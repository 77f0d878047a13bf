package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config содержит конфигурацию приложения
// Значения читаются из переменных окружения, флаги имеют приоритет
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	Retry           RetryConfig
	Enrich          EnrichConfig
}

// RetryConfig содержит настройки генерации коротких кодов
type RetryConfig struct {
	// MaxAttempts ограничивает количество попыток подобрать свободный код
	MaxAttempts int `env:"CODE_MAX_ATTEMPTS" envDefault:"100"`
}

// EnrichConfig содержит настройки обогащения ссылок
type EnrichConfig struct {
	// Timeout ограничивает каждый исходящий запрос проверки доступности и получения заголовка
	Timeout time.Duration `env:"ENRICH_TIMEOUT" envDefault:"5s"`
}

// Load читает конфигурацию из переменных окружения и флагов командной строки
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:       URLPrefix("http://localhost:8080"),
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	flag.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	flag.Var(&cfg.BaseURL, "b", "base URL for shortened links")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	flag.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "file storage path (JSON snapshot)")
	flag.Parse()

	return cfg, nil
}
