package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		AggregationRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tourney_aggregation_runs_total",
			Help: "The total number of times the points aggregation job has run.",
		}),
		TournamentsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tourney_tournaments_processed_total",
			Help: "The total number of tournaments merged into the lifetime stats.",
		}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tourney_aggregation_duration_seconds",
			Help:    "The duration of complete aggregation runs.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}),
		RateLimitRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tourney_rate_limit_retries_total",
			Help: "The total number of Lichess requests retried after a 429.",
		}),
		SnapshotsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tourney_snapshots_published_total",
			Help: "The total number of ranking snapshots successfully published.",
		}),
		SnapshotPublishFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tourney_snapshot_publish_failed_total",
			Help: "The total number of ranking snapshot publishes that failed.",
		}),
		TournamentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tourney_tournaments_created_total",
			Help: "The total number of tournaments created by the scheduler.",
		}),
		TournamentsJoined: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tourney_tournaments_joined_total",
			Help: "The total number of tournaments the bot account joined.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tourney_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tourney_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		PlayersTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tourney_players_tracked",
			Help: "The number of players with lifetime stats after the last run.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tourney_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.AggregationRuns,
		s.TournamentsProcessed,
		s.AggregationDuration,
		s.RateLimitRetries,
		s.SnapshotsPublished,
		s.SnapshotPublishFailed,
		s.TournamentsCreated,
		s.TournamentsJoined,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.PlayersTracked,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncAggregationRuns() {
	s.AggregationRuns.Inc()
}

func (s *Service) IncTournamentsProcessed() {
	s.TournamentsProcessed.Inc()
}

func (s *Service) ObserveAggregationDuration(seconds float64) {
	s.AggregationDuration.Observe(seconds)
}

func (s *Service) IncRateLimitRetries() {
	s.RateLimitRetries.Inc()
}

func (s *Service) IncSnapshotsPublished() {
	s.SnapshotsPublished.Inc()
}

func (s *Service) IncSnapshotPublishFailed() {
	s.SnapshotPublishFailed.Inc()
}

func (s *Service) IncTournamentsCreated() {
	s.TournamentsCreated.Inc()
}

func (s *Service) IncTournamentsJoined() {
	s.TournamentsJoined.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetPlayersTracked(count float64) {
	s.PlayersTracked.Set(count)
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
