package lichess

// Arena tournament statuses as returned by the Lichess API.
const (
	ArenaStatusCreated  = 10
	ArenaStatusStarted  = 20
	ArenaStatusFinished = 30
)

// ArenaTournament is one record from the arena listing endpoints.
// Timestamps are milliseconds since epoch.
type ArenaTournament struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	StartsAt   int64  `json:"startsAt"`
	FinishesAt int64  `json:"finishesAt"`
	Status     int    `json:"status"`
}

// SwissTournament is one record from the team swiss listing endpoint.
// Unlike arenas, swiss timestamps are ISO 8601 strings and the status is a
// word ("created", "started", "finished").
type SwissTournament struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	StartsAt string `json:"startsAt"`
	Status   string `json:"status"`
}

// PlayerResult is one standings row from the tournament results endpoint.
// Sheet is only present when the results were requested with sheet=true.
type PlayerResult struct {
	Rank     int          `json:"rank"`
	Score    int          `json:"score"`
	Username string       `json:"username"`
	Sheet    *ResultSheet `json:"sheet,omitempty"`
}

// ResultSheet carries the raw per-game scoresheet digits.
type ResultSheet struct {
	Scores string `json:"scores"`
}

// Game is one record from the tournament games export. An empty Winner means
// the game was drawn.
type Game struct {
	Winner  string      `json:"winner,omitempty"`
	Players GamePlayers `json:"players"`
}

type GamePlayers struct {
	White GamePlayer `json:"white"`
	Black GamePlayer `json:"black"`
}

type GamePlayer struct {
	User GameUser `json:"user"`
}

type GameUser struct {
	Name string `json:"name"`
}

// ListArenasParams filters the team arena listing.
type ListArenasParams struct {
	Team      string
	Max       int
	CreatedBy string
	Name      string
	// Until truncates the newest-first listing just before the tournament
	// with this ID. Empty means no truncation.
	Until string
}

// CreateArenaParams is the request body for creating or updating an arena.
// Lichess uses dotted form keys for nested conditions.
type CreateArenaParams struct {
	Name           string  `json:"name"`
	ClockTime      float64 `json:"clockTime"`
	ClockIncrement int     `json:"clockIncrement"`
	Minutes        int     `json:"minutes"`
	StartDate      int64   `json:"startDate,omitempty"`
	Description    string  `json:"description"`
	TeamID         string  `json:"conditions.teamMember.teamId"`
}

// CreateSwissParams is the request body for creating or updating a swiss.
type CreateSwissParams struct {
	Name           string  `json:"name"`
	ClockLimit     float64 `json:"clock.limit"`
	ClockIncrement int     `json:"clock.increment"`
	NbRounds       int     `json:"nbRounds"`
	StartsAt       string  `json:"startsAt,omitempty"`
	Description    string  `json:"description"`
	PlayYourGames  bool    `json:"conditions.playYourGames"`
	RoundInterval  int     `json:"roundInterval"`
}
