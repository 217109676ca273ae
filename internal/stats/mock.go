package stats

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CheckpointFunc     func() (Checkpoint, error)
	PlayerStatsFunc    func() ([]PlayerStats, error)
	WriteAllFunc       func(players []PlayerStats, cp Checkpoint, expectLastID string) error
	SeedCheckpointFunc func(cp Checkpoint) error

	// Call records
	WriteAllCalls []struct {
		Players      []PlayerStats
		CP           Checkpoint
		ExpectLastID string
	}
	SeedCheckpointCalls []Checkpoint
}

// NewMockStore creates a new mock instance.
func NewMockStore() *MockStore {
	return &MockStore{}
}

var _ Store = (*MockStore)(nil)

func (m *MockStore) Checkpoint() (Checkpoint, error) {
	if m.CheckpointFunc != nil {
		return m.CheckpointFunc()
	}
	return Checkpoint{}, ErrMissingCheckpoint
}

func (m *MockStore) PlayerStats() ([]PlayerStats, error) {
	if m.PlayerStatsFunc != nil {
		return m.PlayerStatsFunc()
	}
	return nil, nil
}

func (m *MockStore) WriteAll(players []PlayerStats, cp Checkpoint, expectLastID string) error {
	m.mu.Lock()
	m.WriteAllCalls = append(m.WriteAllCalls, struct {
		Players      []PlayerStats
		CP           Checkpoint
		ExpectLastID string
	}{players, cp, expectLastID})
	m.mu.Unlock()
	if m.WriteAllFunc != nil {
		return m.WriteAllFunc(players, cp, expectLastID)
	}
	return nil
}

func (m *MockStore) SeedCheckpoint(cp Checkpoint) error {
	m.mu.Lock()
	m.SeedCheckpointCalls = append(m.SeedCheckpointCalls, cp)
	m.mu.Unlock()
	if m.SeedCheckpointFunc != nil {
		return m.SeedCheckpointFunc(cp)
	}
	return nil
}
