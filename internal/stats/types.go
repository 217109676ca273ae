package stats

import (
	"database/sql"
	"sync"
)

// PlayerStats is one player's lifetime record across all processed
// tournaments. All counters only ever grow; the invariant
// Wins+Losses+Draws == Games holds at all times.
type PlayerStats struct {
	Username            string `json:"username"`
	Score               int    `json:"score"`
	HighestTourneyScore int    `json:"highest_tourney_score"`
	HighestTourneyRef   string `json:"highest_tourney_ref"`
	Games               int    `json:"games"`
	Wins                int    `json:"wins"`
	Losses              int    `json:"losses"`
	Draws               int    `json:"draws"`
	NumTournaments      int    `json:"num_tournaments"`
	TournamentWins      int    `json:"tournament_wins"`
}

// Checkpoint marks the most recently fully-aggregated tournament in the
// newest-first listing order. FinishedAt is milliseconds since epoch.
type Checkpoint struct {
	TournamentID string `json:"tournament_id"`
	FinishedAt   int64  `json:"finished_at"`
}

// store handles all database operations for the lifetime stats.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
