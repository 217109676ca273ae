package aggregator

import "github.com/darkonteams/tourney-tools/internal/stats"

// CountStrategy selects how win/loss/draw counters are derived. The two
// strategies touch the same counters, so exactly one is used per run.
type CountStrategy string

const (
	// CountBySheet decodes each standings row's scoresheet.
	CountBySheet CountStrategy = "sheet"
	// CountByGames scans the tournament's raw game records.
	CountByGames CountStrategy = "games"
)

// Config carries the listing filters and the counting strategy for the
// aggregation job.
type Config struct {
	Team           string
	CreatedBy      string
	TournamentName string
	// MaxTournaments bounds how many finished tournaments one listing call
	// may return.
	MaxTournaments int
	// MaxResults bounds how many standings rows are fetched per tournament.
	MaxResults int
	Strategy   CountStrategy
}

// Summary describes one aggregation run.
type Summary struct {
	NewTournaments int              `json:"new_tournaments"`
	Players        int              `json:"players"`
	Checkpoint     stats.Checkpoint `json:"checkpoint"`
	DryRun         bool             `json:"dry_run"`
}
