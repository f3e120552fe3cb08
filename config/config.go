package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Postgres    PostgresConfig
	HTTP        HTTPConfig
	Log         LogConfig
	StorageType string
	// BusBuffer is the per-subscriber buffer of the action bus.
	BusBuffer int
}

type PostgresConfig struct {
	User     string
	Password string
	DB       string
	Host     string
	Port     int
	SSLMode  string
	MaxConns int
}

func (pc PostgresConfig) GetDSN() string {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pc.User,
		pc.Password,
		pc.Host,
		pc.Port,
		pc.DB,
		pc.SSLMode,
	)
	if pc.MaxConns > 0 {
		dsn += fmt.Sprintf("&pool_max_conns=%d", pc.MaxConns)
	}
	return dsn
}

type HTTPConfig struct {
	Port           string
	AllowedOrigins []string
}

type LogConfig struct {
	Format string
	Level  string
}

// LoadEnv reads KEY=VALUE pairs from path into the environment. Variables
// that are already set win. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// LoadConfig reads the configuration from the environment and panics when a
// required variable is missing or malformed.
func LoadConfig() Config {
	storageType := getEnv("STORAGE_TYPE", StorageMemory)
	if storageType != StoragePostgres && storageType != StorageMemory {
		panic("invalid STORAGE_TYPE: " + storageType)
	}

	cfg := Config{
		StorageType: storageType,
		HTTP: HTTPConfig{
			Port:           mustGetEnv("HTTP_PORT"),
			AllowedOrigins: splitList(getEnv("HTTP_ALLOWED_ORIGINS", "*")),
		},
		Log:       LoadLog(),
		BusBuffer: getInt("BUS_BUFFER", 64),
	}

	if storageType == StoragePostgres {
		cfg.Postgres = LoadPostgres()
	}

	return cfg
}

func LoadLog() LogConfig {
	return LogConfig{
		Format: getEnv("LOG_FORMAT", "text"),
		Level:  getEnv("LOG_LEVEL", "info"),
	}
}

// LoadPostgres reads only the database settings.
func LoadPostgres() PostgresConfig {
	return PostgresConfig{
		User:     mustGetEnv("POSTGRES_USER"),
		Password: mustGetEnv("POSTGRES_PASSWORD"),
		DB:       mustGetEnv("POSTGRES_DB"),
		Host:     mustGetEnv("POSTGRES_HOST"),
		Port:     mustGetInt("POSTGRES_PORT"),
		SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		MaxConns: getInt("POSTGRES_MAX_CONNS", 0),
	}
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic("missing required env var: " + key)
	}
	return val
}

func mustGetInt(key string) int {
	val := mustGetEnv(key)
	i, err := strconv.Atoi(val)
	if err != nil {
		panic("invalid int for env var " + key + ": " + val)
	}
	return i
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	if os.Getenv(key) == "" {
		return def
	}
	return mustGetInt(key)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
