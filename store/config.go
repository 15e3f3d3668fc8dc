package store

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries the connection settings shared by the CLI and the
// server. Values come from the environment, optionally seeded from a
// .env file in the working directory.
type Config struct {
	DatabaseURL string
	RedisURL    string
	ListenAddr  string
	City        string // default weather location
	UserID      string // profile acting as the current member
}

// LoadConfig reads the configuration from the environment. A missing
// .env file is not an error; explicit environment variables win.
func LoadConfig() Config {
	_ = godotenv.Load()
	return Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		ListenAddr:  getEnv("KURASHI_ADDR", ":8080"),
		City:        getEnv("KURASHI_CITY", "Tokyo"),
		UserID:      os.Getenv("KURASHI_USER"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
