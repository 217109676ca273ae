package main

import (
	"database/sql"
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	for _, key := range []string{"DB_NAME", "TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"} {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	if config["DB_NAME"] == "" && config["TURSO_PRIMARY_URL"] == "" {
		log.Fatalf("Error: Either DB_NAME or TURSO_PRIMARY_URL must be set.")
	}
	return config
}

func main() {
	tournamentID := flag.String("tournament", "", "Tournament ID the checkpoint points at (required)")
	finishedAt := flag.Int64("finished-at", 0, "Finish time in unix milliseconds, defaults to now")
	flag.Parse()

	if *tournamentID == "" {
		log.Fatalf("Error: -tournament is required.")
	}
	if *finishedAt == 0 {
		*finishedAt = time.Now().UnixMilli()
	}

	log.Info("Starting checkpoint seeder...")
	cfg := loadConfig()

	dsn := "file:" + cfg["DB_NAME"]
	if cfg["TURSO_PRIMARY_URL"] != "" {
		dsn = cfg["TURSO_PRIMARY_URL"] + "?authToken=" + cfg["TURSO_AUTH_TOKEN"]
	}
	db, err := sql.Open("libsql", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %s", err)
	}
	log.Info("Successfully connected to the database.")

	_, err = db.Exec(`
		INSERT INTO checkpoint (id, tournament_id, finished_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET tournament_id = excluded.tournament_id, finished_at = excluded.finished_at;`,
		*tournamentID, *finishedAt)
	if err != nil {
		log.Fatalf("Failed to seed checkpoint: %s", err)
	}

	log.Info("Checkpoint seeded.", "tournament", *tournamentID, "finished_at", *finishedAt)
}
