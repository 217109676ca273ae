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

type Server struct {
	Store          stats.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Aggregator     *aggregator.Aggregator
	Scheduler      *scheduler.Scheduler
	Joiner         *autojoin.Joiner
	Notifier       notifier.Notifier
	Router         *http.ServeMux
}
