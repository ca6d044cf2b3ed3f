package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Локальное хранилище устройства (sqlite)
	LocalStorePath string `env:"LOCAL_STORE_PATH" envDefault:"famguard.db"`

	// Обратное геокодирование
	GeocoderURL     string        `env:"GEOCODER_URL"`
	GeocoderTimeout time.Duration `env:"GEOCODER_TIMEOUT" envDefault:"3s"`

	// Захват местоположения: единый интервал вставки истории, если
	// пользователь не задал свою частоту
	HistoryFallbackInterval time.Duration `env:"HISTORY_FALLBACK_INTERVAL" envDefault:"30m"`

	// Проксимити-движок
	ProximitySweepInterval time.Duration `env:"PROXIMITY_SWEEP_INTERVAL" envDefault:"15m"`
	ProximityMinKm         float64       `env:"PROXIMITY_MIN_KM" envDefault:"0"`
	ProximityMaxKm         float64       `env:"PROXIMITY_MAX_KM" envDefault:"10"`
	IncidentMaxAge         time.Duration `env:"INCIDENT_MAX_AGE" envDefault:"24h"`
	PushDedupWindow        time.Duration `env:"PUSH_DEDUP_WINDOW" envDefault:"24h"`

	// Порог риска для эскалации предупреждений о маршруте
	RiskThreshold float64 `env:"RISK_THRESHOLD" envDefault:"0.7"`

	// Push Gateway Config
	PushGatewayURL string        `env:"PUSH_GATEWAY_URL"`
	PushSecret     string        `env:"PUSH_SECRET"`
	PushTimeout    time.Duration `env:"PUSH_TIMEOUT" envDefault:"5s"`
	PushMaxRetries int           `env:"PUSH_MAX_RETRIES" envDefault:"3"`
	PushBaseDelay  time.Duration `env:"PUSH_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:               os.Getenv("REDIS_PASSWORD"),
		RedisDB:                 getEnvAsInt("REDIS_DB", 0),
		LocalStorePath:          getEnv("LOCAL_STORE_PATH", "famguard.db"),
		GeocoderURL:             os.Getenv("GEOCODER_URL"),
		GeocoderTimeout:         getEnvAsDuration("GEOCODER_TIMEOUT", 3*time.Second),
		HistoryFallbackInterval: getEnvAsDuration("HISTORY_FALLBACK_INTERVAL", 30*time.Minute),
		ProximitySweepInterval:  getEnvAsDuration("PROXIMITY_SWEEP_INTERVAL", 15*time.Minute),
		ProximityMinKm:          getEnvAsFloat("PROXIMITY_MIN_KM", 0),
		ProximityMaxKm:          getEnvAsFloat("PROXIMITY_MAX_KM", 10),
		IncidentMaxAge:          getEnvAsDuration("INCIDENT_MAX_AGE", 24*time.Hour),
		PushDedupWindow:         getEnvAsDuration("PUSH_DEDUP_WINDOW", 24*time.Hour),
		RiskThreshold:           getEnvAsFloat("RISK_THRESHOLD", 0.7),
		PushGatewayURL:          os.Getenv("PUSH_GATEWAY_URL"),
		PushSecret:              os.Getenv("PUSH_SECRET"),
		PushTimeout:             getEnvAsDuration("PUSH_TIMEOUT", 5*time.Second),
		PushMaxRetries:          getEnvAsInt("PUSH_MAX_RETRIES", 3),
		PushBaseDelay:           getEnvAsDuration("PUSH_BASE_DELAY", time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
