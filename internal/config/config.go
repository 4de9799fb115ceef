package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl      string
	ServerPort string

	DefaultPageSize int
	MaxPageSize     int

	SeedUsers    int
	SeedServices int
	SeedBookings int
}

func Load() *Config {
	// .env é opcional; variáveis de ambiente têm precedência.
	_ = godotenv.Load()

	return &Config{
		DBUrl:      getEnv("DATABASE_URL", "file:booking.db"),
		ServerPort: getEnv("SERVER_PORT", "8000"),

		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 100),
		MaxPageSize:     getEnvInt("MAX_PAGE_SIZE", 1000),

		SeedUsers:    getEnvInt("SEED_USERS", 1000),
		SeedServices: getEnvInt("SEED_SERVICES", 500),
		SeedBookings: getEnvInt("SEED_BOOKINGS", 5000),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
