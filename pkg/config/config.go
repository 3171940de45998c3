package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Learner  LearnerConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
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

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type LearnerConfig struct {
	// Bounds of the clamped linear rate->weight mapping.
	WeightFloor float64
	WeightCeil  float64
	// TTL of the cached per-driver stats, in minutes.
	StatCacheTTLMinutes int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database index")
	}

	weightFloor, err := strconv.ParseFloat(getEnv("LEARNER_WEIGHT_FLOOR", "0.5"), 64)
	if err != nil {
		return nil, errors.New("invalid learner weight floor")
	}

	weightCeil, err := strconv.ParseFloat(getEnv("LEARNER_WEIGHT_CEIL", "10"), 64)
	if err != nil {
		return nil, errors.New("invalid learner weight ceil")
	}

	statTTL, err := strconv.Atoi(getEnv("LEARNER_STAT_CACHE_TTL_MINUTES", "180"))
	if err != nil {
		return nil, errors.New("invalid stat cache ttl")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Fleet Dispatch Ranking API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "fleet_dispatch"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Learner: LearnerConfig{
			WeightFloor:         weightFloor,
			WeightCeil:          weightCeil,
			StatCacheTTLMinutes: statTTL,
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Learner.WeightFloor >= cfg.Learner.WeightCeil {
		return nil, errors.New("learner weight floor must be below ceil")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
