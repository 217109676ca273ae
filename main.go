package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/darkonteams/tourney-tools/internal/aggregator"
	"github.com/darkonteams/tourney-tools/internal/autojoin"
	"github.com/darkonteams/tourney-tools/internal/config"
	"github.com/darkonteams/tourney-tools/internal/database"
	server "github.com/darkonteams/tourney-tools/internal/http"
	"github.com/darkonteams/tourney-tools/internal/lichess"
	"github.com/darkonteams/tourney-tools/internal/metrics"
	"github.com/darkonteams/tourney-tools/internal/notifier"
	"github.com/darkonteams/tourney-tools/internal/notifier/slack"
	"github.com/darkonteams/tourney-tools/internal/publisher"
	"github.com/darkonteams/tourney-tools/internal/scheduler"
	"github.com/darkonteams/tourney-tools/internal/stats"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	store := stats.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	lichessClient := lichess.NewClient(cfg.Lichess.Token, metricsSvc)

	var notif notifier.Notifier = notifier.Noop{}
	if cfg.Slack.Token != "" && cfg.Slack.ChannelID != "" {
		notif = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	}

	var sinks publisher.Multi
	if cfg.CSVPath != "" {
		sinks = append(sinks, publisher.NewCSVFile(cfg.CSVPath))
	}
	if cfg.Sheets.SpreadsheetID != "" {
		sheetsSink, err := publisher.NewGoogleSheets(context.Background(), cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsFile)
		if err != nil {
			log.Fatalf("Failed to initialize Google Sheets publisher: %s", err)
		}
		sinks = append(sinks, sheetsSink)
	}

	agg := aggregator.New(lichessClient, store, sinks, notif, metricsSvc, aggregator.Config{
		Team:           cfg.Lichess.Team,
		CreatedBy:      cfg.Lichess.CreatedBy,
		TournamentName: cfg.Lichess.TournamentName,
		MaxTournaments: cfg.Lichess.MaxTournaments,
		MaxResults:     cfg.Lichess.MaxResults,
		Strategy:       aggregator.CountStrategy(cfg.CountStrategy),
	})
	sched := scheduler.New(lichessClient, metricsSvc, cfg.Lichess.CreatedBy, cfg.UpcomingTarget, scheduler.DefaultSeries(cfg.Lichess.Team))
	joiner := autojoin.New(lichessClient, metricsSvc, cfg.Lichess.CreatedBy)

	s := server.NewServer(
		store,
		metricsSvc,
		metricsHandler,
		cfg,
		agg,
		sched,
		joiner,
		notif,
	)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
