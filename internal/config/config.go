// Package config предоставляет структуры и функции для загрузки конфигурации сервиса.
//
// Источники в порядке приоритета: переменные окружения, файл .env, YAML-файл из CONFIG_PATH.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING" env-required:"true"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	RateLimit               `yaml:"rate_limit"`
	CORS                    `yaml:"cors"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"SECRET_KEY" env-required:"true"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"15m"`
}

// RateLimit ограничение частоты запросов с одного адреса.
// Лимит включён по умолчанию, выключается флагом Disabled.
// TrustProxy разрешает брать адрес клиента из X-Forwarded-For/X-Real-IP,
// включать только за своим прокси.
type RateLimit struct {
	Disabled   bool    `yaml:"disabled" env:"RATE_LIMIT_DISABLED"`
	TrustProxy bool    `yaml:"trust_proxy" env:"RATE_LIMIT_TRUST_PROXY"`
	RPS      float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"10"`
	Burst    int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"20"`
}

// CORS список разрешённых источников
type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

// Load читает конфигурацию. Отсутствие .env не считается ошибкой.
func Load() (*Config, error) {
	const op = "config.Load"

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: read .env: %w", op, err)
	}

	var cfg Config
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &cfg, cfg.validate()
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, configPath)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, cfg.validate()
}

// MustLoad загружает конфиг и завершает процесс при ошибке.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.TokenTTL <= 0 {
		return fmt.Errorf("config: token_ttl must be positive, got %s", c.TokenTTL)
	}
	if !c.Disabled && (c.RPS <= 0 || c.Burst <= 0) {
		return fmt.Errorf("config: rate_limit rps and burst must be positive")
	}
	return nil
}

// String печатает конфиг без секретов.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n"+
			"RateLimit:\n"+
			"  Disabled: %t\n"+
			"  TrustProxy: %t\n"+
			"  RPS: %g\n"+
			"  Burst: %d\n"+
			"CORS:\n"+
			"  AllowedOrigins: %v\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.TokenTTL,
		c.Disabled,
		c.TrustProxy,
		c.RPS,
		c.Burst,
		c.AllowedOrigins,
	)
}
