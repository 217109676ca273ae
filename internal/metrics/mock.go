package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                    sync.Mutex
	aggregationRuns       int
	tournamentsProcessed  int
	aggregationDurations  []float64
	rateLimitRetries      int
	snapshotsPublished    int
	snapshotPublishFailed int
	tournamentsCreated    int
	tournamentsJoined     int
	slackNotifSent        int
	slackNotifFailed      int
	playersTracked        float64
	startupTime           float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		aggregationDurations: make([]float64, 0),
	}
}

var _ Metrics = (*Mock)(nil)

func (m *Mock) IncAggregationRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aggregationRuns++
}

func (m *Mock) IncTournamentsProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournamentsProcessed++
}

func (m *Mock) ObserveAggregationDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aggregationDurations = append(m.aggregationDurations, seconds)
}

func (m *Mock) IncRateLimitRetries() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rateLimitRetries++
}

func (m *Mock) IncSnapshotsPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshotsPublished++
}

func (m *Mock) IncSnapshotPublishFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshotPublishFailed++
}

func (m *Mock) IncTournamentsCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournamentsCreated++
}

func (m *Mock) IncTournamentsJoined() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournamentsJoined++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetPlayersTracked(count float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersTracked = count
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = seconds
}

// AggregationDurations returns every duration passed to ObserveAggregationDuration.
func (m *Mock) AggregationDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.aggregationDurations
}

// AggregationRuns returns the number of times IncAggregationRuns was called.
func (m *Mock) AggregationRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.aggregationRuns
}

// TournamentsProcessed returns the number of times IncTournamentsProcessed was called.
func (m *Mock) TournamentsProcessed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tournamentsProcessed
}

// RateLimitRetries returns the number of times IncRateLimitRetries was called.
func (m *Mock) RateLimitRetries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rateLimitRetries
}

// SnapshotsPublished returns the number of times IncSnapshotsPublished was called.
func (m *Mock) SnapshotsPublished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotsPublished
}

// SnapshotPublishFailed returns the number of times IncSnapshotPublishFailed was called.
func (m *Mock) SnapshotPublishFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotPublishFailed
}

// TournamentsCreated returns the number of times IncTournamentsCreated was called.
func (m *Mock) TournamentsCreated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tournamentsCreated
}

// TournamentsJoined returns the number of times IncTournamentsJoined was called.
func (m *Mock) TournamentsJoined() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tournamentsJoined
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// PlayersTracked returns the last value passed to SetPlayersTracked.
func (m *Mock) PlayersTracked() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersTracked
}
