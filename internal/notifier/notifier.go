package notifier

import "github.com/darkonteams/tourney-tools/internal/publisher"

// Notifier defines a high-level interface for announcing business events.
// This decouples the jobs from the specific notification provider (e.g., Slack).
type Notifier interface {
	// SendAggregationSummary announces a completed aggregation run with the
	// top of the updated ranking.
	SendAggregationSummary(report publisher.Report, newTournaments int, dryRun bool) error
	// SendLeaderboard posts the full current ranking.
	SendLeaderboard(report publisher.Report, dryRun bool) error
}

// Noop is the Notifier used when no provider is configured.
type Noop struct{}

var _ Notifier = Noop{}

func (Noop) SendAggregationSummary(publisher.Report, int, bool) error { return nil }
func (Noop) SendLeaderboard(publisher.Report, bool) error             { return nil }
