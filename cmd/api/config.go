package main

import (
	"os"
	"strconv"
	"strings"

	"bookgen/internal/logging"

	"github.com/joho/godotenv"
)

type config struct {
	Addr           string
	LogLevel       string
	LogFormat      string
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	TrustedProxies []string
	Workers        int
	MaxLimit       int
	DBDSN          string
	EnableHSTS     bool
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func loadConfig() config {
	return config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		CORSOrigins:    splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),
		TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
		Workers:        getEnvInt("GENERATOR_WORKERS", 0),
		MaxLimit:       getEnvInt("MAX_LIMIT", 1000),
		DBDSN:          os.Getenv("DB_DSN"),
		EnableHSTS:     os.Getenv("ENABLE_HSTS") == "true",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logging.Warn().Str("key", key).Str("value", v).Int("default", def).Msg("invalid integer in environment, using default")
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logging.Warn().Str("key", key).Str("value", v).Float64("default", def).Msg("invalid number in environment, using default")
		return def
	}
	return f
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

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
