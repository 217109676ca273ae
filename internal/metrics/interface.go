package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncAggregationRuns()
	IncTournamentsProcessed()
	ObserveAggregationDuration(seconds float64)
	IncRateLimitRetries()
	IncSnapshotsPublished()
	IncSnapshotPublishFailed()
	IncTournamentsCreated()
	IncTournamentsJoined()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetPlayersTracked(count float64)
	SetStartupTime(seconds float64)
}
