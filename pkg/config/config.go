package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Log       LogConfig
	Recommend RecommendConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
	// RateLimit is the sustained requests per second allowed per client IP on
	// the recommendation endpoints. Zero disables the limiter.
	RateLimit float64
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type LogConfig struct {
	Level string
}

type RecommendConfig struct {
	DefaultK              int
	MaxK                  int
	RefreshSnapshotOnBoot bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	defaultK, err := getEnvInt("RECOMMEND_DEFAULT_K", 5)
	if err != nil {
		return nil, err
	}

	maxK, err := getEnvInt("RECOMMEND_MAX_K", 50)
	if err != nil {
		return nil, err
	}

	rateLimit, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64)
	if err != nil {
		return nil, errors.New("invalid rate limit")
	}

	refreshOnBoot, err := strconv.ParseBool(getEnv("SNAPSHOT_REFRESH_ON_START", "false"))
	if err != nil {
		return nil, errors.New("invalid SNAPSHOT_REFRESH_ON_START")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Curator Market API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:      getEnv("PORT", "8080"),
			RateLimit: rateLimit,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "curator_market"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Recommend: RecommendConfig{
			DefaultK:              defaultK,
			MaxK:                  maxK,
			RefreshSnapshotOnBoot: refreshOnBoot,
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Recommend.DefaultK <= 0 || cfg.Recommend.MaxK < cfg.Recommend.DefaultK {
		return nil, errors.New("RECOMMEND_DEFAULT_K must be positive and not above RECOMMEND_MAX_K")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return v, nil
}
