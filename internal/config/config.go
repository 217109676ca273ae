package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}
	getEnvDefault := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		return fallback
	}
	getEnvInt := func(key string, fallback int) int {
		value, ok := os.LookupEnv(key)
		if !ok || value == "" {
			return fallback
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			log.Fatalf("Error: Environment variable %s must be an integer, got %q.", key, value)
		}
		return n
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: getEnvDefault("MIGRATIONS_DIR", "./migrations"),
		Port:          getEnv("PORT"),
		Lichess: LichessConfig{
			Token:          getEnv("LICHESS_API_TOKEN"),
			Team:           getEnv("LICHESS_TEAM"),
			CreatedBy:      getEnv("TOURNEY_CREATOR"),
			TournamentName: getEnvDefault("ARENA_NAME", "Hourly Ultrabullet"),
			MaxTournaments: getEnvInt("MAX_TOURNAMENTS", 10000),
			MaxResults:     getEnvInt("MAX_RESULTS", 1000),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
		Slack: SlackConfig{
			Token:     getEnvDefault("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnvDefault("SLACK_CHANNEL_ID", ""),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:   getEnvDefault("SHEETS_SPREADSHEET_ID", ""),
			CredentialsFile: getEnvDefault("SHEETS_CREDENTIALS_FILE", ""),
		},
		CSVPath:        getEnvDefault("POINTS_CSV_PATH", ""),
		CountStrategy:  getEnvDefault("COUNT_STRATEGY", "sheet"),
		UpcomingTarget: getEnvInt("UPCOMING_TARGET", 5),
	}
	if cfg.CountStrategy != "sheet" && cfg.CountStrategy != "games" {
		log.Fatalf("Error: COUNT_STRATEGY must be \"sheet\" or \"games\", got %q.", cfg.CountStrategy)
	}
	return cfg
}
