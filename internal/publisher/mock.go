package publisher

import (
	"context"
	"sync"
)

// MockPublisher is a mock implementation of the Publisher interface for testing.
// It is safe for concurrent use.
type MockPublisher struct {
	mu sync.Mutex

	PublishFunc func(ctx context.Context, report Report) error

	// Call records
	PublishCalls []Report
}

// NewMock creates a new mock instance.
func NewMock() *MockPublisher {
	return &MockPublisher{}
}

var _ Publisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(ctx context.Context, report Report) error {
	m.mu.Lock()
	m.PublishCalls = append(m.PublishCalls, report)
	m.mu.Unlock()
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, report)
	}
	return nil
}
