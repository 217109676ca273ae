// Package aggregator runs the incremental tournament points job: it pages
// through the team's finished arenas down to the stored checkpoint, merges
// each new tournament into the per-player lifetime stats, and commits the
// updated table together with the advanced checkpoint in one transaction.
package aggregator

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/darkonteams/tourney-tools/internal/lichess"
	"github.com/darkonteams/tourney-tools/internal/metrics"
	"github.com/darkonteams/tourney-tools/internal/notifier"
	"github.com/darkonteams/tourney-tools/internal/publisher"
	"github.com/darkonteams/tourney-tools/internal/sheet"
	"github.com/darkonteams/tourney-tools/internal/stats"
)

// Aggregator orchestrates one aggregation run end to end.
type Aggregator struct {
	client    lichess.Client
	store     stats.Store
	publisher publisher.Publisher
	notifier  notifier.Notifier
	metrics   metrics.Metrics
	cfg       Config
}

// New creates a new Aggregator.
func New(client lichess.Client, store stats.Store, pub publisher.Publisher, notif notifier.Notifier, metricsSvc metrics.Metrics, cfg Config) *Aggregator {
	if cfg.Strategy == "" {
		cfg.Strategy = CountBySheet
	}
	return &Aggregator{
		client:    client,
		store:     store,
		publisher: pub,
		notifier:  notif,
		metrics:   metricsSvc,
		cfg:       cfg,
	}
}

// Run executes one aggregation pass. Any fetch or decode error aborts before
// anything is persisted, so the previous checkpoint stays valid and the next
// run re-fetches the same window. Publishing happens after the store commit
// and its failure is reported through metrics only.
func (a *Aggregator) Run(ctx context.Context, dryRun bool) (Summary, error) {
	switch a.cfg.Strategy {
	case CountBySheet, CountByGames:
	default:
		// An unrecognized strategy would merge scores while leaving every
		// game counter at zero, and the checkpoint advance would make that
		// permanent. Refuse to run instead.
		return Summary{}, fmt.Errorf("unknown count strategy %q", a.cfg.Strategy)
	}

	start := time.Now()
	a.metrics.IncAggregationRuns()
	defer func() {
		a.metrics.ObserveAggregationDuration(time.Since(start).Seconds())
	}()

	cp, err := a.store.Checkpoint()
	if err != nil {
		return Summary{}, err
	}
	log.Info("Starting aggregation run", "checkpoint", cp.TournamentID, "strategy", a.cfg.Strategy)

	arenas, err := a.client.ListFinishedArenas(ctx, lichess.ListArenasParams{
		Team:      a.cfg.Team,
		Max:       a.cfg.MaxTournaments,
		CreatedBy: a.cfg.CreatedBy,
		Name:      a.cfg.TournamentName,
		Until:     cp.TournamentID,
	})
	if err != nil {
		return Summary{}, fmt.Errorf("listing finished tournaments: %w", err)
	}
	if len(arenas) == 0 {
		log.Info("No new tournaments since checkpoint, nothing to do", "checkpoint", cp.TournamentID)
		return Summary{Checkpoint: cp, DryRun: dryRun}, nil
	}
	log.Info("Found new tournaments to merge", "count", len(arenas))

	persisted, err := a.store.PlayerStats()
	if err != nil {
		return Summary{}, fmt.Errorf("loading persisted stats: %w", err)
	}
	acc := stats.NewAccumulator(persisted)

	for _, t := range arenas {
		if err := a.mergeTournament(ctx, acc, t); err != nil {
			return Summary{}, err
		}
		a.metrics.IncTournamentsProcessed()
	}

	// The listing is newest first, so the head becomes the new checkpoint.
	newCP := stats.Checkpoint{TournamentID: arenas[0].ID, FinishedAt: arenas[0].FinishesAt}
	players := acc.Players()
	summary := Summary{
		NewTournaments: len(arenas),
		Players:        len(players),
		Checkpoint:     newCP,
		DryRun:         dryRun,
	}

	if dryRun {
		log.Info("[Dry Run] Would persist stats and advance checkpoint",
			"players", len(players), "checkpoint", newCP.TournamentID)
		return summary, nil
	}

	if err := a.store.WriteAll(players, newCP, cp.TournamentID); err != nil {
		return Summary{}, err
	}
	a.metrics.SetPlayersTracked(float64(len(players)))

	report := publisher.BuildReport(players, newCP)
	if err := a.publisher.Publish(ctx, report); err != nil {
		// Stats durability takes priority over publishing; the snapshot can
		// be re-rendered from the store at any time.
		a.metrics.IncSnapshotPublishFailed()
		log.Error("Failed to publish ranking snapshot", "error", err)
	} else {
		a.metrics.IncSnapshotsPublished()
	}

	if err := a.notifier.SendAggregationSummary(report, len(arenas), false); err != nil {
		log.Error("Failed to send aggregation summary", "error", err)
	}

	log.Info("Aggregation run finished",
		"new_tournaments", len(arenas), "players", len(players), "checkpoint", newCP.TournamentID)
	return summary, nil
}

// mergeTournament merges one tournament's standings (and, with the games
// strategy, its game records) into the accumulator.
func (a *Aggregator) mergeTournament(ctx context.Context, acc *stats.Accumulator, t lichess.ArenaTournament) error {
	ref := lichess.ArenaURL(t.ID)
	withSheet := a.cfg.Strategy == CountBySheet

	results, err := a.client.TournamentResults(ctx, t.ID, a.cfg.MaxResults, withSheet)
	if err != nil {
		return fmt.Errorf("fetching results for tournament %s: %w", t.ID, err)
	}

	for _, r := range results {
		acc.AddStanding(ref, r.Rank, r.Score, r.Username)
		if !withSheet {
			continue
		}
		if r.Sheet == nil {
			return fmt.Errorf("standings row for %s in tournament %s has no scoresheet", r.Username, t.ID)
		}
		out, err := sheet.Decode(r.Sheet.Scores)
		if err != nil {
			return fmt.Errorf("decoding scoresheet for %s in tournament %s: %w", r.Username, t.ID, err)
		}
		acc.AddOutcome(r.Username, out)
	}

	if a.cfg.Strategy == CountByGames {
		games, err := a.client.TournamentGames(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("fetching games for tournament %s: %w", t.ID, err)
		}
		for _, g := range games {
			acc.CreditGame(g.Players.White.User.Name, g.Players.Black.User.Name, g.Winner)
		}
	}

	log.Debug("Merged tournament", "tournament", t.ID, "standings", len(results))
	return nil
}

// Snapshot renders the currently persisted ranking without contacting
// Lichess. Used by the leaderboard surface.
func (a *Aggregator) Snapshot() (publisher.Report, error) {
	cp, err := a.store.Checkpoint()
	if err != nil {
		return publisher.Report{}, err
	}
	players, err := a.store.PlayerStats()
	if err != nil {
		return publisher.Report{}, err
	}
	return publisher.BuildReport(players, cp), nil
}
