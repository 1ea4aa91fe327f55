package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config содержит всю конфигурацию приложения
type Config struct {
	Server  ServerConfig  // Настройки HTTP сервера
	API     APIConfig     // Настройки клиента Activities API
	Session SessionConfig // Настройки сессий браузера
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port string `envconfig:"SERVER_PORT" default:"8080"`
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
}

// APIConfig содержит настройки подключения к Activities API
type APIConfig struct {
	BaseURL string        `envconfig:"ACTIVITIES_API_URL" default:"http://localhost:8000"`
	Timeout time.Duration `envconfig:"ACTIVITIES_API_TIMEOUT" default:"10s"`
}

// SessionConfig содержит настройки подписанных cookie сессий
type SessionConfig struct {
	Secret   string `envconfig:"SESSION_SECRET" required:"true"`
	TTLHours int    `envconfig:"SESSION_TTL_HOURS" default:"24"`
	Cookie   string `envconfig:"SESSION_COOKIE" default:"board_session"`
}

// GetTTL возвращает срок жизни сессии как time.Duration
func (s SessionConfig) GetTTL() time.Duration {
	return time.Duration(s.TTLHours) * time.Hour
}

// Load читает конфигурацию из переменных окружения
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
