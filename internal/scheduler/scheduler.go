// Package scheduler keeps a fixed number of upcoming tournaments created for
// each configured series, chaining every tournament's description to link the
// one that follows it.
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/darkonteams/tourney-tools/internal/lichess"
	"github.com/darkonteams/tourney-tools/internal/metrics"
)

const startTimeLayout = "2006-01-02T15:04:05Z"

// Scheduler tops up the upcoming tournaments of all configured series.
type Scheduler struct {
	client  lichess.Client
	metrics metrics.Metrics
	// createdBy filters listings to tournaments made by the bot account, so
	// manually created tournaments don't count towards the target.
	createdBy string
	target    int
	series    []Series
}

// New creates a new Scheduler that keeps target upcoming tournaments per series.
func New(client lichess.Client, metricsSvc metrics.Metrics, createdBy string, target int, series []Series) *Scheduler {
	return &Scheduler{
		client:    client,
		metrics:   metricsSvc,
		createdBy: createdBy,
		target:    target,
		series:    series,
	}
}

// EnsureUpcoming processes every series in order. A series that fails stops
// the pass; already-created tournaments stay created, so re-running after a
// failure is safe.
func (s *Scheduler) EnsureUpcoming(ctx context.Context) (Summary, error) {
	var summary Summary
	for _, series := range s.series {
		created, err := s.ensureSeries(ctx, series)
		summary.Created += created
		if err != nil {
			return summary, fmt.Errorf("series %q: %w", series.Name, err)
		}
	}
	log.Info("Scheduling pass finished", "created", summary.Created)
	return summary, nil
}

func (s *Scheduler) ensureSeries(ctx context.Context, series Series) (int, error) {
	count, firstStart, lastID, err := s.listUpcoming(ctx, series)
	if err != nil {
		return 0, err
	}
	log.Info("Found upcoming tournaments", "series", series.Name, "count", count)

	toCreate := s.target - count
	if toCreate <= 0 {
		log.Info("Series already has enough upcoming tournaments, skipping",
			"series", series.Name, "target", s.target)
		return 0, nil
	}
	if count == 0 {
		// There is nothing to anchor the cadence on; creating from "now"
		// would drift the series. An operator has to create the first one.
		return 0, fmt.Errorf("no upcoming tournaments found to anchor the series")
	}

	created := 0
	current := firstStart
	for i := 0; i < toCreate; i++ {
		next := current.Add(time.Duration(series.HoursBetween) * time.Hour)
		next = forceParity(next, series.ForceHour)

		newID, err := s.createOne(ctx, series, next)
		if err != nil {
			return created, err
		}
		created++
		s.metrics.IncTournamentsCreated()

		if err := s.relinkPrevious(ctx, series, lastID, newID); err != nil {
			return created, err
		}
		current = next
		lastID = newID
	}
	return created, nil
}

// listUpcoming returns how many tournaments the series already has scheduled,
// plus the start time and ID of the latest-starting one (the anchor for
// spacing and description chaining). The listing order is not relied on.
func (s *Scheduler) listUpcoming(ctx context.Context, series Series) (int, time.Time, string, error) {
	switch series.Kind {
	case KindArena:
		arenas, err := s.client.ListCreatedArenas(ctx, lichess.ListArenasParams{
			Team:      series.Team,
			Max:       10,
			CreatedBy: s.createdBy,
			Name:      series.Name,
		})
		if err != nil {
			return 0, time.Time{}, "", err
		}
		if len(arenas) == 0 {
			return 0, time.Time{}, "", nil
		}
		latest := arenas[0]
		for _, t := range arenas[1:] {
			if t.StartsAt > latest.StartsAt {
				latest = t
			}
		}
		return len(arenas), time.UnixMilli(latest.StartsAt).UTC(), latest.ID, nil

	case KindSwiss:
		swisses, err := s.client.ListCreatedSwiss(ctx, series.Team, s.createdBy, series.Name, 10)
		if err != nil {
			return 0, time.Time{}, "", err
		}
		if len(swisses) == 0 {
			return 0, time.Time{}, "", nil
		}
		var latest time.Time
		var latestID string
		for _, t := range swisses {
			start, err := time.Parse(time.RFC3339, t.StartsAt)
			if err != nil {
				return 0, time.Time{}, "", fmt.Errorf("parsing swiss start time %q: %w", t.StartsAt, err)
			}
			if latestID == "" || start.After(latest) {
				latest = start
				latestID = t.ID
			}
		}
		return len(swisses), latest.UTC(), latestID, nil

	default:
		return 0, time.Time{}, "", fmt.Errorf("unknown series kind %q", series.Kind)
	}
}

func (s *Scheduler) createOne(ctx context.Context, series Series, start time.Time) (string, error) {
	switch series.Kind {
	case KindArena:
		id, err := s.client.CreateArena(ctx, lichess.CreateArenaParams{
			Name:           series.Name,
			ClockTime:      series.ClockLimit,
			ClockIncrement: series.ClockIncrement,
			Minutes:        series.Minutes,
			StartDate:      start.UnixMilli(),
			Description:    series.Description,
			TeamID:         series.Team,
		})
		if err != nil {
			return "", fmt.Errorf("creating arena at %s: %w", start.Format(startTimeLayout), err)
		}
		return id, nil

	case KindSwiss:
		id, err := s.client.CreateSwiss(ctx, series.Team, lichess.CreateSwissParams{
			Name:           series.Name,
			ClockLimit:     series.ClockLimit,
			ClockIncrement: series.ClockIncrement,
			NbRounds:       series.NbRounds,
			StartsAt:       start.UTC().Format(startTimeLayout),
			Description:    series.Description,
			PlayYourGames:  true,
			RoundInterval:  series.RoundInterval,
		})
		if err != nil {
			return "", fmt.Errorf("creating swiss at %s: %w", start.Format(startTimeLayout), err)
		}
		return id, nil

	default:
		return "", fmt.Errorf("unknown series kind %q", series.Kind)
	}
}

// relinkPrevious rewrites the previous tournament's description so its
// "next tournament" link points at the freshly created one.
func (s *Scheduler) relinkPrevious(ctx context.Context, series Series, prevID, nextID string) error {
	if prevID == "" || series.ReplaceURL == "" {
		log.Debug("No previous tournament or replace URL, skipping relink", "series", series.Name)
		return nil
	}

	switch series.Kind {
	case KindArena:
		desc := strings.ReplaceAll(series.Description, series.ReplaceURL, lichess.ArenaURL(nextID))
		err := s.client.UpdateArena(ctx, prevID, lichess.CreateArenaParams{
			Name:           series.Name,
			ClockTime:      series.ClockLimit,
			ClockIncrement: series.ClockIncrement,
			Minutes:        series.Minutes,
			Description:    desc,
			TeamID:         series.Team,
		})
		if err != nil {
			return fmt.Errorf("relinking arena %s: %w", prevID, err)
		}

	case KindSwiss:
		desc := strings.ReplaceAll(series.Description, series.ReplaceURL, lichess.SwissURL(nextID))
		err := s.client.UpdateSwiss(ctx, prevID, lichess.CreateSwissParams{
			Name:           series.Name,
			ClockLimit:     series.ClockLimit,
			ClockIncrement: series.ClockIncrement,
			NbRounds:       series.NbRounds,
			Description:    desc,
			PlayYourGames:  true,
			RoundInterval:  series.RoundInterval,
		})
		if err != nil {
			return fmt.Errorf("relinking swiss %s: %w", prevID, err)
		}
	}

	log.Info("Relinked previous tournament to the new one",
		"series", series.Name, "previous", prevID, "next", nextID)
	return nil
}

// forceParity pushes a start time one hour forward when the series is pinned
// to even or odd UTC hours.
func forceParity(t time.Time, parity HourParity) time.Time {
	switch parity {
	case EvenHour:
		if t.UTC().Hour()%2 == 1 {
			return t.Add(time.Hour)
		}
	case OddHour:
		if t.UTC().Hour()%2 == 0 {
			return t.Add(time.Hour)
		}
	}
	return t
}
