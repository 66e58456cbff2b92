package conf

import (
	"fmt"
	"os"
	"time"
)

// Config is read from the environment in main. Optional collaborators
// (redis, s3, the site-lock file, the alias table) stay disabled when
// their variables are empty.
type Config struct {
	HTTPAddress  string
	WorkbookPath string

	JwtKey            string
	AdminPasswordHash string // bcrypt

	HistoryDBPath  string
	AliasTablePath string
	LockFilePath   string

	RedisAddr string

	S3Region string
	S3Bucket string

	RefreshInterval time.Duration
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		HTTPAddress:       getEnvDefault("HTTP_ADDRESS", ":8080"),
		WorkbookPath:      os.Getenv("WORKBOOK_PATH"),
		JwtKey:            os.Getenv("JWT_KEY"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_BCRYPT"),
		HistoryDBPath:     getEnvDefault("HISTORY_DB_PATH", "history.db"),
		AliasTablePath:    os.Getenv("CLASS_ALIAS_TABLE"),
		LockFilePath:      os.Getenv("SITE_LOCK_FILE"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		S3Region:          getEnvDefault("S3_REGION", "eu-central-1"),
		S3Bucket:          os.Getenv("S3_BACKUP_BUCKET"),
		RefreshInterval:   30 * time.Second,
	}

	if cfg.WorkbookPath == "" {
		return nil, fmt.Errorf("WORKBOOK_PATH is not set")
	}
	if cfg.JwtKey == "" {
		return nil, fmt.Errorf("JWT_KEY is not set")
	}
	if cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_BCRYPT is not set")
	}

	if interval := os.Getenv("REFRESH_INTERVAL"); interval != "" {
		parsed, err := time.ParseDuration(interval)
		if err != nil {
			return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
		}
		cfg.RefreshInterval = parsed
	}

	return cfg, nil
}

func getEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
