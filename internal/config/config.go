package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
// Every setting has a default, so a bare environment still yields a usable
// local configuration.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	getEnvInt := func(key string, fallback int) int {
		value, ok := os.LookupEnv(key)
		if !ok {
			return fallback
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			log.Warn("Invalid integer environment variable, using default", "key", key, "value", value, "default", fallback)
			return fallback
		}
		return n
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME", "vbl-scanner.db"),
		OutputFile:    getEnv("OUTPUT_FILE", "match_schedule.json"),
		Port:          getEnv("PORT", "8080"),
		MaxConcurrent: getEnvInt("MAX_CONCURRENT", 4),
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnv("SLACK_CHANNEL_ID", ""),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN", ""),
		},
		ProjectID: getEnv("GCP_PROJECT", ""),
	}
	return cfg
}
