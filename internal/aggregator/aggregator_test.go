package aggregator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkonteams/tourney-tools/internal/lichess"
	"github.com/darkonteams/tourney-tools/internal/metrics"
	"github.com/darkonteams/tourney-tools/internal/notifier"
	"github.com/darkonteams/tourney-tools/internal/publisher"
	"github.com/darkonteams/tourney-tools/internal/stats"
)

func testConfig() Config {
	return Config{
		Team:           "my-team",
		CreatedBy:      "botuser",
		TournamentName: "Hourly Ultrabullet",
		MaxTournaments: 100,
		MaxResults:     50,
	}
}

func seededStore(cp stats.Checkpoint, players []stats.PlayerStats) *stats.MockStore {
	store := stats.NewMockStore()
	store.CheckpointFunc = func() (stats.Checkpoint, error) { return cp, nil }
	store.PlayerStatsFunc = func() ([]stats.PlayerStats, error) { return players, nil }
	return store
}

func TestRun_MergesNewTournaments(t *testing.T) {
	client := lichess.NewMock()
	client.ListFinishedArenasFunc = func(ctx context.Context, params lichess.ListArenasParams) ([]lichess.ArenaTournament, error) {
		assert.Equal(t, "t0", params.Until)
		assert.Equal(t, "my-team", params.Team)
		return []lichess.ArenaTournament{
			{ID: "t2", FinishesAt: 2000},
			{ID: "t1", FinishesAt: 1000},
		}, nil
	}
	client.TournamentResultsFunc = func(ctx context.Context, tournamentID string, nb int, withSheet bool) ([]lichess.PlayerResult, error) {
		assert.True(t, withSheet)
		return []lichess.PlayerResult{
			{Rank: 1, Score: 20, Username: "alice", Sheet: &lichess.ResultSheet{Scores: "44"}},
			{Rank: 2, Score: 10, Username: "bob", Sheet: &lichess.ResultSheet{Scores: "20"}},
		}, nil
	}

	store := seededStore(stats.Checkpoint{TournamentID: "t0"}, nil)
	pub := publisher.NewMock()
	notif := notifier.NewMock()
	metricsSvc := metrics.NewMock()

	agg := New(client, store, pub, notif, metricsSvc, testConfig())
	summary, err := agg.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.NewTournaments)
	assert.Equal(t, 2, summary.Players)
	assert.Equal(t, "t2", summary.Checkpoint.TournamentID)
	assert.Equal(t, int64(2000), summary.Checkpoint.FinishedAt)

	require.Len(t, store.WriteAllCalls, 1)
	call := store.WriteAllCalls[0]
	assert.Equal(t, "t0", call.ExpectLastID)
	assert.Equal(t, "t2", call.CP.TournamentID)
	require.Len(t, call.Players, 2)

	alice := call.Players[0]
	assert.Equal(t, "alice", alice.Username)
	assert.Equal(t, 40, alice.Score)
	assert.Equal(t, 2, alice.NumTournaments)
	assert.Equal(t, 2, alice.TournamentWins)
	assert.Equal(t, 4, alice.Wins)
	assert.Equal(t, 4, alice.Games)

	bob := call.Players[1]
	assert.Equal(t, 20, bob.Score)
	assert.Equal(t, 2, bob.Wins)
	assert.Equal(t, 2, bob.Losses)
	assert.Equal(t, 4, bob.Games)

	assert.Len(t, pub.PublishCalls, 1)
	assert.Equal(t, []int{2}, notif.SendAggregationSummaryCalls)
	assert.Equal(t, 2, metricsSvc.TournamentsProcessed())
	assert.Equal(t, 1, metricsSvc.SnapshotsPublished())
}

func TestRun_NoNewTournamentsWritesNothing(t *testing.T) {
	client := lichess.NewMock()
	store := seededStore(stats.Checkpoint{TournamentID: "t9", FinishedAt: 500}, nil)
	pub := publisher.NewMock()

	agg := New(client, store, pub, notifier.NewMock(), metrics.NewMock(), testConfig())
	summary, err := agg.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.NewTournaments)
	assert.Equal(t, "t9", summary.Checkpoint.TournamentID)
	assert.Empty(t, store.WriteAllCalls)
	assert.Empty(t, pub.PublishCalls)
}

func TestRun_MissingCheckpointAborts(t *testing.T) {
	client := lichess.NewMock()
	store := stats.NewMockStore()

	agg := New(client, store, publisher.NewMock(), notifier.NewMock(), metrics.NewMock(), testConfig())
	_, err := agg.Run(context.Background(), false)
	assert.ErrorIs(t, err, stats.ErrMissingCheckpoint)
	assert.Empty(t, client.ListFinishedArenasCalls)
}

func TestRun_MissingSheetAborts(t *testing.T) {
	client := lichess.NewMock()
	client.ListFinishedArenasFunc = func(ctx context.Context, params lichess.ListArenasParams) ([]lichess.ArenaTournament, error) {
		return []lichess.ArenaTournament{{ID: "t1"}}, nil
	}
	client.TournamentResultsFunc = func(ctx context.Context, tournamentID string, nb int, withSheet bool) ([]lichess.PlayerResult, error) {
		return []lichess.PlayerResult{{Rank: 1, Score: 5, Username: "alice"}}, nil
	}
	store := seededStore(stats.Checkpoint{TournamentID: "t0"}, nil)

	agg := New(client, store, publisher.NewMock(), notifier.NewMock(), metrics.NewMock(), testConfig())
	_, err := agg.Run(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scoresheet")
	assert.Empty(t, store.WriteAllCalls, "nothing may be persisted after a decode failure")
}

func TestRun_GamesStrategy(t *testing.T) {
	client := lichess.NewMock()
	client.ListFinishedArenasFunc = func(ctx context.Context, params lichess.ListArenasParams) ([]lichess.ArenaTournament, error) {
		return []lichess.ArenaTournament{{ID: "t1", FinishesAt: 1000}}, nil
	}
	client.TournamentResultsFunc = func(ctx context.Context, tournamentID string, nb int, withSheet bool) ([]lichess.PlayerResult, error) {
		assert.False(t, withSheet)
		return []lichess.PlayerResult{
			{Rank: 1, Score: 20, Username: "alice"},
			{Rank: 2, Score: 10, Username: "bob"},
		}, nil
	}
	client.TournamentGamesFunc = func(ctx context.Context, tournamentID string) ([]lichess.Game, error) {
		return []lichess.Game{
			{Winner: "white", Players: lichess.GamePlayers{
				White: lichess.GamePlayer{User: lichess.GameUser{Name: "alice"}},
				Black: lichess.GamePlayer{User: lichess.GameUser{Name: "bob"}},
			}},
			{Players: lichess.GamePlayers{
				White: lichess.GamePlayer{User: lichess.GameUser{Name: "bob"}},
				Black: lichess.GamePlayer{User: lichess.GameUser{Name: "alice"}},
			}},
		}, nil
	}
	store := seededStore(stats.Checkpoint{TournamentID: "t0"}, nil)

	cfg := testConfig()
	cfg.Strategy = CountByGames
	agg := New(client, store, publisher.NewMock(), notifier.NewMock(), metrics.NewMock(), cfg)
	_, err := agg.Run(context.Background(), false)
	require.NoError(t, err)

	require.Len(t, store.WriteAllCalls, 1)
	alice := store.WriteAllCalls[0].Players[0]
	assert.Equal(t, 2, alice.Games)
	assert.Equal(t, 1, alice.Wins)
	assert.Equal(t, 1, alice.Draws)
	assert.Equal(t, []string{"t1"}, client.TournamentGamesCalls)
}

func TestRun_UnknownStrategyRefusesToRun(t *testing.T) {
	client := lichess.NewMock()
	store := seededStore(stats.Checkpoint{TournamentID: "t0"}, nil)
	pub := publisher.NewMock()

	cfg := testConfig()
	cfg.Strategy = "Sheet"
	agg := New(client, store, pub, notifier.NewMock(), metrics.NewMock(), cfg)
	_, err := agg.Run(context.Background(), false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown count strategy "Sheet"`)
	// Nothing may be fetched or persisted; a run with no counting path would
	// commit zero game counters and advance the checkpoint past the data.
	assert.Empty(t, client.ListFinishedArenasCalls)
	assert.Empty(t, store.WriteAllCalls)
	assert.Empty(t, pub.PublishCalls)
}

func TestRun_DryRunSkipsPersistenceAndPublishing(t *testing.T) {
	client := lichess.NewMock()
	client.ListFinishedArenasFunc = func(ctx context.Context, params lichess.ListArenasParams) ([]lichess.ArenaTournament, error) {
		return []lichess.ArenaTournament{{ID: "t1", FinishesAt: 1000}}, nil
	}
	client.TournamentResultsFunc = func(ctx context.Context, tournamentID string, nb int, withSheet bool) ([]lichess.PlayerResult, error) {
		return []lichess.PlayerResult{{Rank: 1, Score: 5, Username: "alice", Sheet: &lichess.ResultSheet{Scores: "2"}}}, nil
	}
	store := seededStore(stats.Checkpoint{TournamentID: "t0"}, nil)
	pub := publisher.NewMock()
	metricsSvc := metrics.NewMock()

	agg := New(client, store, pub, notifier.NewMock(), metricsSvc, testConfig())
	summary, err := agg.Run(context.Background(), true)
	require.NoError(t, err)

	assert.True(t, summary.DryRun)
	assert.Equal(t, 1, summary.NewTournaments)
	assert.Empty(t, store.WriteAllCalls)
	assert.Empty(t, pub.PublishCalls)
	assert.Len(t, metricsSvc.AggregationDurations(), 1, "dry runs still record a duration")
}

func TestRun_PublishFailureDoesNotFailRun(t *testing.T) {
	client := lichess.NewMock()
	client.ListFinishedArenasFunc = func(ctx context.Context, params lichess.ListArenasParams) ([]lichess.ArenaTournament, error) {
		return []lichess.ArenaTournament{{ID: "t1", FinishesAt: 1000}}, nil
	}
	client.TournamentResultsFunc = func(ctx context.Context, tournamentID string, nb int, withSheet bool) ([]lichess.PlayerResult, error) {
		return []lichess.PlayerResult{{Rank: 1, Score: 5, Username: "alice", Sheet: &lichess.ResultSheet{Scores: "2"}}}, nil
	}
	store := seededStore(stats.Checkpoint{TournamentID: "t0"}, nil)
	pub := publisher.NewMock()
	pub.PublishFunc = func(ctx context.Context, report publisher.Report) error {
		return errors.New("sheets unavailable")
	}
	metricsSvc := metrics.NewMock()

	agg := New(client, store, pub, notifier.NewMock(), metricsSvc, testConfig())
	_, err := agg.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Len(t, store.WriteAllCalls, 1)
	assert.Equal(t, 1, metricsSvc.SnapshotPublishFailed())
	assert.Equal(t, 0, metricsSvc.SnapshotsPublished())
}

func TestRun_SeedsFromPersistedStats(t *testing.T) {
	client := lichess.NewMock()
	client.ListFinishedArenasFunc = func(ctx context.Context, params lichess.ListArenasParams) ([]lichess.ArenaTournament, error) {
		return []lichess.ArenaTournament{{ID: "t1", FinishesAt: 1000}}, nil
	}
	client.TournamentResultsFunc = func(ctx context.Context, tournamentID string, nb int, withSheet bool) ([]lichess.PlayerResult, error) {
		return []lichess.PlayerResult{{Rank: 1, Score: 10, Username: "alice", Sheet: &lichess.ResultSheet{Scores: "22"}}}, nil
	}
	store := seededStore(stats.Checkpoint{TournamentID: "t0"}, []stats.PlayerStats{
		{Username: "alice", Score: 90, NumTournaments: 9, Games: 30, Wins: 15, Losses: 10, Draws: 5},
	})

	agg := New(client, store, publisher.NewMock(), notifier.NewMock(), metrics.NewMock(), testConfig())
	_, err := agg.Run(context.Background(), false)
	require.NoError(t, err)

	alice := store.WriteAllCalls[0].Players[0]
	assert.Equal(t, 100, alice.Score)
	assert.Equal(t, 10, alice.NumTournaments)
	assert.Equal(t, 32, alice.Games)
	assert.Equal(t, 17, alice.Wins)
}

func TestSnapshot(t *testing.T) {
	store := seededStore(stats.Checkpoint{TournamentID: "t3", FinishedAt: 1000}, []stats.PlayerStats{
		{Username: "bob", Score: 10},
		{Username: "alice", Score: 25},
	})

	agg := New(lichess.NewMock(), store, publisher.NewMock(), notifier.NewMock(), metrics.NewMock(), testConfig())
	report, err := agg.Snapshot()
	require.NoError(t, err)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "alice", report.Rows[0].Username)
	assert.Equal(t, "t3", report.Checkpoint.TournamentID)
}
