package lichess

import "context"

// Client defines the slice of the Lichess API this application uses.
// This decouples the jobs from the HTTP client and allows easy mocking.
type Client interface {
	// ListFinishedArenas returns the team's finished arenas, newest first,
	// truncated (exclusively) at params.Until when set.
	ListFinishedArenas(ctx context.Context, params ListArenasParams) ([]ArenaTournament, error)
	// ListCreatedArenas returns the team's upcoming arenas. Order is the
	// API's, callers must not rely on it.
	ListCreatedArenas(ctx context.Context, params ListArenasParams) ([]ArenaTournament, error)
	// ListCreatedSwiss returns the team's upcoming swiss tournaments.
	ListCreatedSwiss(ctx context.Context, team, createdBy, name string, max int) ([]SwissTournament, error)
	// TournamentResults returns the standings of one arena. When withSheet is
	// set each row carries the raw scoresheet.
	TournamentResults(ctx context.Context, tournamentID string, nb int, withSheet bool) ([]PlayerResult, error)
	// TournamentGames returns the raw game records of one arena.
	TournamentGames(ctx context.Context, tournamentID string) ([]Game, error)
	// ListMyCreatedArenas returns arenas created by the given user in any of
	// the given statuses.
	ListMyCreatedArenas(ctx context.Context, username string, statuses []int) ([]ArenaTournament, error)
	// JoinArena joins the authenticated account to an arena.
	JoinArena(ctx context.Context, tournamentID string, pairMeAsap bool) error
	CreateArena(ctx context.Context, params CreateArenaParams) (string, error)
	CreateSwiss(ctx context.Context, team string, params CreateSwissParams) (string, error)
	UpdateArena(ctx context.Context, tournamentID string, params CreateArenaParams) error
	UpdateSwiss(ctx context.Context, swissID string, params CreateSwissParams) error
}
