package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	DatabaseURL string

	SessionTTL time.Duration

	SearchResultLimit int

	// Location used for calendar-day ticket filtering.
	Location *time.Location

	RateLimitPerMinute         int
	RateLimitBurst             int
	BusinessRateLimitPerMinute int
	BusinessRateLimitBurst     int
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		Port:                       port,
		DatabaseURL:                os.Getenv("DB_DSN"),
		SessionTTL:                 readDurationHours("SESSION_TTL_HOURS", 8),
		SearchResultLimit:          readInt("SEARCH_RESULT_LIMIT", 5),
		Location:                   readLocation("TIME_ZONE"),
		RateLimitPerMinute:         readInt("RATE_LIMIT_PER_MIN", 120),
		RateLimitBurst:             readInt("RATE_LIMIT_BURST", 30),
		BusinessRateLimitPerMinute: readInt("BUSINESS_RATE_LIMIT_PER_MIN", 600),
		BusinessRateLimitBurst:     readInt("BUSINESS_RATE_LIMIT_BURST", 120),
	}
}

func readDurationHours(key string, fallback int) time.Duration {
	value := readInt(key, fallback)
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Hour
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func readLocation(key string) *time.Location {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(raw)
	if err != nil {
		return time.Local
	}
	return loc
}
