package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darkonteams/tourney-tools/internal/sheet"
)

func TestAccumulator_AddStanding(t *testing.T) {
	acc := NewAccumulator(nil)

	acc.AddStanding("https://lichess.org/tournament/aaa", 1, 30, "alice")
	acc.AddStanding("https://lichess.org/tournament/aaa", 5, 12, "bob")

	players := acc.Players()
	assert.Len(t, players, 2)

	alice := players[0]
	assert.Equal(t, "alice", alice.Username)
	assert.Equal(t, 30, alice.Score)
	assert.Equal(t, 1, alice.NumTournaments)
	assert.Equal(t, 1, alice.TournamentWins)
	assert.Equal(t, 30, alice.HighestTourneyScore)
	assert.Equal(t, "https://lichess.org/tournament/aaa", alice.HighestTourneyRef)

	bob := players[1]
	assert.Equal(t, 12, bob.Score)
	assert.Equal(t, 0, bob.TournamentWins)
}

func TestAccumulator_HighestScoreOnlyReplacedOnStrictImprovement(t *testing.T) {
	acc := NewAccumulator(nil)

	acc.AddStanding("refX", 3, 10, "alice")
	acc.AddStanding("refY", 2, 15, "alice")
	acc.AddStanding("refZ", 4, 12, "alice")

	p := acc.Players()[0]
	assert.Equal(t, 37, p.Score)
	assert.Equal(t, 15, p.HighestTourneyScore)
	assert.Equal(t, "refY", p.HighestTourneyRef)

	// An equal score later keeps the earlier record.
	acc.AddStanding("refW", 2, 15, "alice")
	p = acc.Players()[0]
	assert.Equal(t, "refY", p.HighestTourneyRef)
}

func TestAccumulator_SeededFromPersistedRows(t *testing.T) {
	acc := NewAccumulator([]PlayerStats{
		{Username: "alice", Score: 100, NumTournaments: 7, HighestTourneyScore: 40, HighestTourneyRef: "old"},
	})

	acc.AddStanding("new", 1, 20, "alice")

	p := acc.Players()[0]
	assert.Equal(t, 120, p.Score)
	assert.Equal(t, 8, p.NumTournaments)
	assert.Equal(t, 1, p.TournamentWins)
	assert.Equal(t, 40, p.HighestTourneyScore)
	assert.Equal(t, "old", p.HighestTourneyRef)
}

func TestAccumulator_AddOutcome(t *testing.T) {
	acc := NewAccumulator(nil)

	acc.AddOutcome("alice", sheet.Outcome{Wins: 3, Losses: 1, Draws: 2, Games: 6})
	acc.AddOutcome("alice", sheet.Outcome{Wins: 1, Losses: 0, Draws: 0, Games: 1})

	p := acc.Players()[0]
	assert.Equal(t, 4, p.Wins)
	assert.Equal(t, 1, p.Losses)
	assert.Equal(t, 2, p.Draws)
	assert.Equal(t, 7, p.Games)
	assert.Equal(t, p.Games, p.Wins+p.Losses+p.Draws)
}

func TestAccumulator_CreditGame(t *testing.T) {
	acc := NewAccumulator(nil)
	acc.AddStanding("ref", 1, 10, "alice")
	acc.AddStanding("ref", 2, 8, "bob")

	acc.CreditGame("alice", "bob", "white")
	acc.CreditGame("bob", "alice", "white")
	acc.CreditGame("alice", "bob", "")

	players := acc.Players()
	alice, bob := players[0], players[1]

	assert.Equal(t, 3, alice.Games)
	assert.Equal(t, 1, alice.Wins)
	assert.Equal(t, 1, alice.Losses)
	assert.Equal(t, 1, alice.Draws)

	assert.Equal(t, 3, bob.Games)
	assert.Equal(t, 1, bob.Wins)
	assert.Equal(t, 1, bob.Losses)
	assert.Equal(t, 1, bob.Draws)
}

func TestAccumulator_CreditGameSkipsUnknownPlayers(t *testing.T) {
	acc := NewAccumulator(nil)
	acc.AddStanding("ref", 1, 10, "alice")

	// ghost never made the standings, only alice gets credited.
	acc.CreditGame("alice", "ghost", "black")

	assert.Equal(t, 1, acc.Len())
	p := acc.Players()[0]
	assert.Equal(t, 1, p.Games)
	assert.Equal(t, 1, p.Losses)
}

func TestAccumulator_MergeOrderDoesNotMatter(t *testing.T) {
	merge := func(acc *Accumulator, ref string, score int) {
		acc.AddStanding(ref, 2, score, "alice")
		acc.AddOutcome("alice", sheet.Outcome{Wins: 2, Losses: 1, Games: 3})
	}

	a := NewAccumulator(nil)
	merge(a, "t1", 10)
	merge(a, "t2", 20)

	b := NewAccumulator(nil)
	merge(b, "t2", 20)
	merge(b, "t1", 10)

	pa, pb := a.Players()[0], b.Players()[0]
	assert.Equal(t, pa.Score, pb.Score)
	assert.Equal(t, pa.Games, pb.Games)
	assert.Equal(t, pa.Wins, pb.Wins)
	assert.Equal(t, pa.HighestTourneyScore, pb.HighestTourneyScore)
}

func TestAccumulator_PlayersKeepsInsertionOrder(t *testing.T) {
	acc := NewAccumulator([]PlayerStats{{Username: "first"}})
	acc.AddStanding("ref", 2, 5, "second")
	acc.AddStanding("ref", 3, 5, "third")

	players := acc.Players()
	assert.Equal(t, "first", players[0].Username)
	assert.Equal(t, "second", players[1].Username)
	assert.Equal(t, "third", players[2].Username)
}
