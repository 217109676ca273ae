package http

import (
	"net/http"

	"github.com/darkonteams/tourney-tools/internal/aggregator"
	"github.com/darkonteams/tourney-tools/internal/autojoin"
	"github.com/darkonteams/tourney-tools/internal/config"
	"github.com/darkonteams/tourney-tools/internal/metrics"
	"github.com/darkonteams/tourney-tools/internal/notifier"
	"github.com/darkonteams/tourney-tools/internal/scheduler"
	"github.com/darkonteams/tourney-tools/internal/stats"
)

func NewServer(store stats.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, agg *aggregator.Aggregator, sched *scheduler.Scheduler, joiner *autojoin.Joiner, notifier notifier.Notifier) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Aggregator:     agg,
		Scheduler:      sched,
		Joiner:         joiner,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/aggregate", Chain(s.AggregateHandler(), paramsMiddleware))
	s.Router.Handle("/schedule", Chain(s.ScheduleHandler(), paramsMiddleware))
	s.Router.Handle("/join", Chain(s.JoinHandler(), paramsMiddleware))
	s.Router.Handle("/leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/seed-checkpoint", Chain(s.SeedCheckpointHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
