package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Abraxas-365/jobboard/pkg/logx"
	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup
type Config struct {
	Port         string
	LogLevel     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Blob document store
	StoreDriver    string // memory | s3 | redis | postgres | sqlite
	StoreKeyPrefix string
	AWSRegion      string
	AWSBucket      string
	RedisAddr      string
	RedisPass      string
	DatabaseURL    string
	SQLitePath     string

	// Admin credential
	AdminAuthMode  string // static | bcrypt | jwt
	AdminToken     string
	AdminTokenHash string
	AdminJWTSecret string
	AdminJWTIssuer string

	// Application notifier
	MailDriver      string // sendgrid | console
	SendGridAPIKey  string
	ApplyFromEmail  string
	ApplyFromName   string
	ApplyToEmail    string
	RequireJobTitle bool
}

// LoadConfig reads .env when present, then the process environment
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logx.Warnf("could not load .env: %v", err)
	}

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		ReadTimeout:  getDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),

		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", "memory")),
		StoreKeyPrefix: getEnv("STORE_KEY_PREFIX", "jobs-store"),
		AWSRegion:      os.Getenv("AWS_REGION"),
		AWSBucket:      os.Getenv("AWS_BUCKET"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:      os.Getenv("REDIS_PASS"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SQLitePath:     getEnv("SQLITE_PATH", "jobboard.sqlite"),

		AdminAuthMode:  strings.ToLower(getEnv("ADMIN_AUTH_MODE", "static")),
		AdminToken:     os.Getenv("ADMIN_TOKEN"),
		AdminTokenHash: os.Getenv("ADMIN_TOKEN_HASH"),
		AdminJWTSecret: os.Getenv("ADMIN_JWT_SECRET"),
		AdminJWTIssuer: getEnv("ADMIN_JWT_ISSUER", "jobboard"),

		MailDriver:      strings.ToLower(os.Getenv("MAIL_DRIVER")),
		SendGridAPIKey:  os.Getenv("SENDGRID_API_KEY"),
		ApplyFromEmail:  os.Getenv("APPLY_FROM_EMAIL"),
		ApplyFromName:   getEnv("APPLY_FROM_NAME", "Job Board"),
		ApplyToEmail:    os.Getenv("APPLY_TO_EMAIL"),
		RequireJobTitle: getBool("APPLY_REQUIRE_JOB_TITLE", false),
	}

	if cfg.MailDriver == "" {
		cfg.MailDriver = "console"
		if cfg.SendGridAPIKey != "" {
			cfg.MailDriver = "sendgrid"
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
