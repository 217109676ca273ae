package notifier

import (
	"sync"

	"github.com/darkonteams/tourney-tools/internal/publisher"
)

// MockNotifier is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type MockNotifier struct {
	mu sync.Mutex

	SendAggregationSummaryFunc func(report publisher.Report, newTournaments int, dryRun bool) error
	SendLeaderboardFunc        func(report publisher.Report, dryRun bool) error

	// Call records
	SendAggregationSummaryCalls []int
	SendLeaderboardCalls        int
}

// NewMock creates a new mock instance.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

var _ Notifier = (*MockNotifier)(nil)

func (m *MockNotifier) SendAggregationSummary(report publisher.Report, newTournaments int, dryRun bool) error {
	m.mu.Lock()
	m.SendAggregationSummaryCalls = append(m.SendAggregationSummaryCalls, newTournaments)
	m.mu.Unlock()
	if m.SendAggregationSummaryFunc != nil {
		return m.SendAggregationSummaryFunc(report, newTournaments, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendLeaderboard(report publisher.Report, dryRun bool) error {
	m.mu.Lock()
	m.SendLeaderboardCalls++
	m.mu.Unlock()
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(report, dryRun)
	}
	return nil
}
