package lichess

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the Client interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	ListFinishedArenasFunc  func(ctx context.Context, params ListArenasParams) ([]ArenaTournament, error)
	ListCreatedArenasFunc   func(ctx context.Context, params ListArenasParams) ([]ArenaTournament, error)
	ListCreatedSwissFunc    func(ctx context.Context, team, createdBy, name string, max int) ([]SwissTournament, error)
	TournamentResultsFunc   func(ctx context.Context, tournamentID string, nb int, withSheet bool) ([]PlayerResult, error)
	TournamentGamesFunc     func(ctx context.Context, tournamentID string) ([]Game, error)
	ListMyCreatedArenasFunc func(ctx context.Context, username string, statuses []int) ([]ArenaTournament, error)
	JoinArenaFunc           func(ctx context.Context, tournamentID string, pairMeAsap bool) error
	CreateArenaFunc         func(ctx context.Context, params CreateArenaParams) (string, error)
	CreateSwissFunc         func(ctx context.Context, team string, params CreateSwissParams) (string, error)
	UpdateArenaFunc         func(ctx context.Context, tournamentID string, params CreateArenaParams) error
	UpdateSwissFunc         func(ctx context.Context, swissID string, params CreateSwissParams) error

	// Call records
	ListFinishedArenasCalls []ListArenasParams
	TournamentResultsCalls  []string
	TournamentGamesCalls    []string
	JoinArenaCalls          []string
	CreateArenaCalls        []CreateArenaParams
	CreateSwissCalls        []CreateSwissParams
	UpdateArenaCalls        []string
	UpdateSwissCalls        []string
}

// NewMock creates a new mock instance.
func NewMock() *MockClient {
	return &MockClient{}
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) ListFinishedArenas(ctx context.Context, params ListArenasParams) ([]ArenaTournament, error) {
	m.mu.Lock()
	m.ListFinishedArenasCalls = append(m.ListFinishedArenasCalls, params)
	m.mu.Unlock()
	if m.ListFinishedArenasFunc != nil {
		return m.ListFinishedArenasFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockClient) ListCreatedArenas(ctx context.Context, params ListArenasParams) ([]ArenaTournament, error) {
	if m.ListCreatedArenasFunc != nil {
		return m.ListCreatedArenasFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockClient) ListCreatedSwiss(ctx context.Context, team, createdBy, name string, max int) ([]SwissTournament, error) {
	if m.ListCreatedSwissFunc != nil {
		return m.ListCreatedSwissFunc(ctx, team, createdBy, name, max)
	}
	return nil, nil
}

func (m *MockClient) TournamentResults(ctx context.Context, tournamentID string, nb int, withSheet bool) ([]PlayerResult, error) {
	m.mu.Lock()
	m.TournamentResultsCalls = append(m.TournamentResultsCalls, tournamentID)
	m.mu.Unlock()
	if m.TournamentResultsFunc != nil {
		return m.TournamentResultsFunc(ctx, tournamentID, nb, withSheet)
	}
	return nil, nil
}

func (m *MockClient) TournamentGames(ctx context.Context, tournamentID string) ([]Game, error) {
	m.mu.Lock()
	m.TournamentGamesCalls = append(m.TournamentGamesCalls, tournamentID)
	m.mu.Unlock()
	if m.TournamentGamesFunc != nil {
		return m.TournamentGamesFunc(ctx, tournamentID)
	}
	return nil, nil
}

func (m *MockClient) ListMyCreatedArenas(ctx context.Context, username string, statuses []int) ([]ArenaTournament, error) {
	if m.ListMyCreatedArenasFunc != nil {
		return m.ListMyCreatedArenasFunc(ctx, username, statuses)
	}
	return nil, nil
}

func (m *MockClient) JoinArena(ctx context.Context, tournamentID string, pairMeAsap bool) error {
	m.mu.Lock()
	m.JoinArenaCalls = append(m.JoinArenaCalls, tournamentID)
	m.mu.Unlock()
	if m.JoinArenaFunc != nil {
		return m.JoinArenaFunc(ctx, tournamentID, pairMeAsap)
	}
	return nil
}

func (m *MockClient) CreateArena(ctx context.Context, params CreateArenaParams) (string, error) {
	m.mu.Lock()
	m.CreateArenaCalls = append(m.CreateArenaCalls, params)
	m.mu.Unlock()
	if m.CreateArenaFunc != nil {
		return m.CreateArenaFunc(ctx, params)
	}
	return "", nil
}

func (m *MockClient) CreateSwiss(ctx context.Context, team string, params CreateSwissParams) (string, error) {
	m.mu.Lock()
	m.CreateSwissCalls = append(m.CreateSwissCalls, params)
	m.mu.Unlock()
	if m.CreateSwissFunc != nil {
		return m.CreateSwissFunc(ctx, team, params)
	}
	return "", nil
}

func (m *MockClient) UpdateArena(ctx context.Context, tournamentID string, params CreateArenaParams) error {
	m.mu.Lock()
	m.UpdateArenaCalls = append(m.UpdateArenaCalls, tournamentID)
	m.mu.Unlock()
	if m.UpdateArenaFunc != nil {
		return m.UpdateArenaFunc(ctx, tournamentID, params)
	}
	return nil
}

func (m *MockClient) UpdateSwiss(ctx context.Context, swissID string, params CreateSwissParams) error {
	m.mu.Lock()
	m.UpdateSwissCalls = append(m.UpdateSwissCalls, swissID)
	m.mu.Unlock()
	if m.UpdateSwissFunc != nil {
		return m.UpdateSwissFunc(ctx, swissID, params)
	}
	return nil
}
