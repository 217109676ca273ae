package publisher

import (
	"fmt"
	"sort"
	"time"

	"github.com/darkonteams/tourney-tools/internal/lichess"
	"github.com/darkonteams/tourney-tools/internal/stats"
)

// Header is the fixed first row of every published snapshot.
var Header = []string{
	"Username", "Score", "Best Tourney Score", "Best Tourney",
	"Tournaments", "Tournament Wins", "Tournament Win Rate",
	"Games", "Wins", "Losses", "Draws",
	"Win Rate", "Loss Rate", "Draw Rate",
}

// Row is one rendered line of the ranking snapshot.
type Row struct {
	Username            string
	Score               int
	HighestTourneyScore int
	HighestTourneyRef   string
	NumTournaments      int
	TournamentWins      int
	TournamentWinRate   string
	Games               int
	Wins                int
	Losses              int
	Draws               int
	WinRate             string
	LossRate            string
	DrawRate            string
}

// Report is a complete, ready-to-publish snapshot of the lifetime ranking.
type Report struct {
	Rows       []Row
	Checkpoint stats.Checkpoint
}

// Rate renders n/d as a percentage with two decimals, "0.00%" when the
// denominator is zero.
func Rate(n, d int) string {
	if d == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", 100*float64(n)/float64(d))
}

// BuildReport renders the accumulator as a ranking sorted by cumulative
// score, descending. The sort is stable, so score ties keep the players'
// original order.
func BuildReport(players []stats.PlayerStats, cp stats.Checkpoint) Report {
	sorted := make([]stats.PlayerStats, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	rows := make([]Row, 0, len(sorted))
	for _, p := range sorted {
		rows = append(rows, Row{
			Username:            p.Username,
			Score:               p.Score,
			HighestTourneyScore: p.HighestTourneyScore,
			HighestTourneyRef:   p.HighestTourneyRef,
			NumTournaments:      p.NumTournaments,
			TournamentWins:      p.TournamentWins,
			TournamentWinRate:   Rate(p.TournamentWins, p.NumTournaments),
			Games:               p.Games,
			Wins:                p.Wins,
			Losses:              p.Losses,
			Draws:               p.Draws,
			WinRate:             Rate(p.Wins, p.Games),
			LossRate:            Rate(p.Losses, p.Games),
			DrawRate:            Rate(p.Draws, p.Games),
		})
	}
	return Report{Rows: rows, Checkpoint: cp}
}

// Strings renders the row in Header order.
func (r Row) Strings() []string {
	return []string{
		r.Username,
		fmt.Sprintf("%d", r.Score),
		fmt.Sprintf("%d", r.HighestTourneyScore),
		r.HighestTourneyRef,
		fmt.Sprintf("%d", r.NumTournaments),
		fmt.Sprintf("%d", r.TournamentWins),
		r.TournamentWinRate,
		fmt.Sprintf("%d", r.Games),
		fmt.Sprintf("%d", r.Wins),
		fmt.Sprintf("%d", r.Losses),
		fmt.Sprintf("%d", r.Draws),
		r.WinRate,
		r.LossRate,
		r.DrawRate,
	}
}

// CheckpointRow is the companion line pointing at the latest processed
// tournament.
func (rep Report) CheckpointRow() []string {
	return []string{
		"Last processed tournament",
		lichess.ArenaURL(rep.Checkpoint.TournamentID),
		time.UnixMilli(rep.Checkpoint.FinishedAt).UTC().Format(time.RFC3339),
	}
}
