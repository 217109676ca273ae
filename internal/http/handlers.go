package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/darkonteams/tourney-tools/internal/stats"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// AggregateHandler runs one incremental aggregation pass.
func (s *Server) AggregateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Starting aggregation...")
		isDryRun := isDryRunFromContext(r)

		summary, err := s.Aggregator.Run(r.Context(), isDryRun)
		if err != nil {
			log.Error("Aggregation failed", "error", err)
			http.Error(w, "Aggregation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			log.Error("Failed to encode summary to JSON", "error", err)
		}
	}
}

// ScheduleHandler tops up the upcoming tournaments of every configured series.
func (s *Server) ScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Starting scheduling pass...")

		summary, err := s.Scheduler.EnsureUpcoming(r.Context())
		if err != nil {
			log.Error("Scheduling pass failed", "error", err, "created", summary.Created)
			http.Error(w, "Scheduling failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			log.Error("Failed to encode summary to JSON", "error", err)
		}
	}
}

// JoinHandler joins the bot account to its own created and running arenas.
func (s *Server) JoinHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Starting join pass...")

		summary, err := s.Joiner.JoinAll(r.Context())
		if err != nil {
			log.Error("Join pass failed", "error", err)
			http.Error(w, "Join failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			log.Error("Failed to encode summary to JSON", "error", err)
		}
	}
}

// LeaderboardHandler serves the currently persisted ranking. With
// notify=true it also posts the ranking through the configured notifier.
func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := s.Aggregator.Snapshot()
		if err != nil {
			log.Error("Failed to build ranking snapshot", "error", err)
			http.Error(w, "Failed to get leaderboard", http.StatusInternalServerError)
			return
		}

		if r.URL.Query().Get("notify") == "true" {
			if err := s.Notifier.SendLeaderboard(report, isDryRunFromContext(r)); err != nil {
				log.Error("Failed to send leaderboard notification", "error", err)
				http.Error(w, "Failed to send leaderboard", http.StatusInternalServerError)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			log.Error("Failed to encode leaderboard to JSON", "error", err)
		}
	}
}

// SeedCheckpointHandler creates or overwrites the checkpoint row. The
// aggregator refuses to run against an unseeded store, so this is the
// one-time bootstrap surface.
func (s *Server) SeedCheckpointHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		tournamentID := r.URL.Query().Get("tournament")
		if tournamentID == "" {
			http.Error(w, "'tournament' parameter is required", http.StatusBadRequest)
			return
		}
		finishedAt := int64(0)
		if raw := r.URL.Query().Get("finished_at"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "Invalid 'finished_at' parameter", http.StatusBadRequest)
				return
			}
			finishedAt = parsed
		}

		cp := stats.Checkpoint{TournamentID: tournamentID, FinishedAt: finishedAt}
		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would seed checkpoint", "tournament", cp.TournamentID)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, "Dry run, checkpoint not seeded.")
			return
		}

		if err := s.Store.SeedCheckpoint(cp); err != nil {
			log.Error("Failed to seed checkpoint", "error", err)
			http.Error(w, "Failed to seed checkpoint", http.StatusInternalServerError)
			return
		}
		log.Info("Seeded checkpoint", "tournament", cp.TournamentID, "finished_at", cp.FinishedAt)

		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Checkpoint seeded at %s", cp.TournamentID)
	}
}
