package stats

import "github.com/darkonteams/tourney-tools/internal/sheet"

// Accumulator merges per-tournament contributions into the keyed lifetime
// stats. It remembers first-insertion order so snapshot rendering can break
// score ties deterministically. Merging is commutative across tournaments:
// every contribution is additive and tournament-local.
type Accumulator struct {
	players map[string]*PlayerStats
	order   []string
}

// NewAccumulator seeds the accumulator with previously persisted rows.
// The slice order becomes the initial iteration order.
func NewAccumulator(existing []PlayerStats) *Accumulator {
	a := &Accumulator{players: make(map[string]*PlayerStats, len(existing))}
	for i := range existing {
		p := existing[i]
		a.players[p.Username] = &p
		a.order = append(a.order, p.Username)
	}
	return a
}

// get returns the player's entry, lazily creating a zero-valued one.
func (a *Accumulator) get(username string) *PlayerStats {
	if p, ok := a.players[username]; ok {
		return p
	}
	p := &PlayerStats{Username: username}
	a.players[username] = p
	a.order = append(a.order, username)
	return p
}

// AddStanding merges one standings row: cumulative score, tournament count,
// tournament wins on rank 1, and best-single-tournament tracking. The best
// score is replaced only on strict improvement, so between equal scores the
// first tournament processed keeps the record.
func (a *Accumulator) AddStanding(tourneyRef string, rank, score int, username string) {
	p := a.get(username)
	p.Score += score
	p.NumTournaments++
	if rank == 1 {
		p.TournamentWins++
	}
	if score > p.HighestTourneyScore {
		p.HighestTourneyScore = score
		p.HighestTourneyRef = tourneyRef
	}
}

// AddOutcome merges a decoded scoresheet into the player's game counters.
func (a *Accumulator) AddOutcome(username string, out sheet.Outcome) {
	p := a.get(username)
	p.Wins += out.Wins
	p.Losses += out.Losses
	p.Draws += out.Draws
	p.Games += out.Games
}

// CreditGame credits one game to both named players. Winner is "white",
// "black", or empty for a draw. Players not already in the accumulator are
// skipped: a game record can name an account that never made the standings
// (e.g. closed after the game), and that contributes nothing.
func (a *Accumulator) CreditGame(white, black, winner string) {
	if p, ok := a.players[white]; ok {
		p.Games++
		switch winner {
		case "white":
			p.Wins++
		case "black":
			p.Losses++
		default:
			p.Draws++
		}
	}
	if p, ok := a.players[black]; ok {
		p.Games++
		switch winner {
		case "black":
			p.Wins++
		case "white":
			p.Losses++
		default:
			p.Draws++
		}
	}
}

// Players returns all entries in first-insertion order.
func (a *Accumulator) Players() []PlayerStats {
	out := make([]PlayerStats, 0, len(a.order))
	for _, username := range a.order {
		out = append(out, *a.players[username])
	}
	return out
}

// Len returns the number of tracked players.
func (a *Accumulator) Len() int {
	return len(a.players)
}
