package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Analytics AnalyticsConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Export    ExportConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type AnalyticsConfig struct {
	// URL is the sink endpoint; empty disables the push.
	URL         string
	Debounce    time.Duration
	DatabaseURL string
}

type StorageConfig struct {
	Dir string
}

// RedisConfig selects the redis KV backend when Addr is set.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	Namespace string
}

type ExportConfig struct {
	Dir        string
	ChromePath string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment and defaults")
	}
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Analytics: AnalyticsConfig{
			URL:         getEnv("ANALYTICS_URL", ""),
			Debounce:    getEnvAsDuration("ANALYTICS_DEBOUNCE", "5s"),
			DatabaseURL: getEnv("ANALYTICS_DATABASE_URL", ""),
		},
		Storage: StorageConfig{
			Dir: getEnv("STORAGE_DIR", "./data"),
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", ""),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvAsInt("REDIS_DB", 0),
			Namespace: getEnv("REDIS_NAMESPACE", "resumebuilder:"),
		},
		Export: ExportConfig{
			Dir:        getEnv("EXPORT_DIR", "./exports"),
			ChromePath: getEnv("CHROME_PATH", ""),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	d, _ := time.ParseDuration(defaultValue)
	return d
}
