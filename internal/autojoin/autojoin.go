// Package autojoin keeps the bot account enrolled in its own tournaments so
// arena pairings never wait on an absent host.
package autojoin

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/darkonteams/tourney-tools/internal/lichess"
	"github.com/darkonteams/tourney-tools/internal/metrics"
)

// Joiner joins the bot account to its created and running arenas.
type Joiner struct {
	client   lichess.Client
	metrics  metrics.Metrics
	username string
}

// Summary describes one join pass.
type Summary struct {
	Joined int `json:"joined"`
	Failed int `json:"failed"`
}

// New creates a new Joiner for the given bot account.
func New(client lichess.Client, metricsSvc metrics.Metrics, username string) *Joiner {
	return &Joiner{
		client:   client,
		metrics:  metricsSvc,
		username: username,
	}
}

// JoinAll joins every created or started arena the bot account owns,
// requesting immediate pairing. A failed join is logged and counted but does
// not stop the pass; the next poll retries it.
func (j *Joiner) JoinAll(ctx context.Context) (Summary, error) {
	arenas, err := j.client.ListMyCreatedArenas(ctx, j.username,
		[]int{lichess.ArenaStatusCreated, lichess.ArenaStatusStarted})
	if err != nil {
		return Summary{}, fmt.Errorf("listing created tournaments: %w", err)
	}
	log.Info("Found own tournaments to join", "count", len(arenas))

	var summary Summary
	for _, t := range arenas {
		if err := j.client.JoinArena(ctx, t.ID, true); err != nil {
			summary.Failed++
			log.Error("Failed to join tournament", "tournament", t.ID, "error", err)
			continue
		}
		summary.Joined++
		j.metrics.IncTournamentsJoined()
		log.Info("Joined tournament", "tournament", t.ID)
	}
	return summary, nil
}
