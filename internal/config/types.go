package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Lichess       LichessConfig
	Turso         TursoConfig
	Slack         SlackConfig
	Sheets        SheetsConfig
	// CSVPath enables the CSV snapshot sink when non-empty.
	CSVPath string
	// CountStrategy is "sheet" or "games"; exactly one counting path runs
	// per aggregation.
	CountStrategy string
	// UpcomingTarget is how many upcoming tournaments the scheduler keeps
	// per series.
	UpcomingTarget int
}

type LichessConfig struct {
	Token string
	// Team whose tournaments are aggregated and scheduled.
	Team string
	// CreatedBy is the bot account that creates, joins and owns the
	// tournaments.
	CreatedBy string
	// TournamentName filters the aggregation to one arena series.
	TournamentName string
	// MaxTournaments bounds one listing request.
	MaxTournaments int
	// MaxResults bounds the standings fetched per tournament.
	MaxResults int
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsFile string
}
