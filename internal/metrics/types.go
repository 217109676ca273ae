package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	AggregationRuns       prometheus.Counter
	TournamentsProcessed  prometheus.Counter
	AggregationDuration   prometheus.Histogram
	RateLimitRetries      prometheus.Counter
	SnapshotsPublished    prometheus.Counter
	SnapshotPublishFailed prometheus.Counter
	TournamentsCreated    prometheus.Counter
	TournamentsJoined     prometheus.Counter
	SlackNotifSent        prometheus.Counter
	SlackNotifFailed      prometheus.Counter
	PlayersTracked        prometheus.Gauge
	StartupTimeSeconds    prometheus.Gauge
}
