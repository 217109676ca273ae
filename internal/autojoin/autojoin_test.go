package autojoin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkonteams/tourney-tools/internal/lichess"
	"github.com/darkonteams/tourney-tools/internal/metrics"
)

func TestJoinAll(t *testing.T) {
	client := lichess.NewMock()
	client.ListMyCreatedArenasFunc = func(ctx context.Context, username string, statuses []int) ([]lichess.ArenaTournament, error) {
		assert.Equal(t, "botuser", username)
		assert.Equal(t, []int{lichess.ArenaStatusCreated, lichess.ArenaStatusStarted}, statuses)
		return []lichess.ArenaTournament{{ID: "T1"}, {ID: "T2"}}, nil
	}
	metricsSvc := metrics.NewMock()

	joiner := New(client, metricsSvc, "botuser")
	summary, err := joiner.JoinAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Joined)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, []string{"T1", "T2"}, client.JoinArenaCalls)
	assert.Equal(t, 2, metricsSvc.TournamentsJoined())
}

func TestJoinAll_FailureDoesNotStopPass(t *testing.T) {
	client := lichess.NewMock()
	client.ListMyCreatedArenasFunc = func(ctx context.Context, username string, statuses []int) ([]lichess.ArenaTournament, error) {
		return []lichess.ArenaTournament{{ID: "T1"}, {ID: "T2"}, {ID: "T3"}}, nil
	}
	client.JoinArenaFunc = func(ctx context.Context, tournamentID string, pairMeAsap bool) error {
		if tournamentID == "T2" {
			return errors.New("cannot join")
		}
		return nil
	}

	joiner := New(client, metrics.NewMock(), "botuser")
	summary, err := joiner.JoinAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Joined)
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, client.JoinArenaCalls, 3)
}

func TestJoinAll_ListFailure(t *testing.T) {
	client := lichess.NewMock()
	client.ListMyCreatedArenasFunc = func(ctx context.Context, username string, statuses []int) ([]lichess.ArenaTournament, error) {
		return nil, errors.New("api down")
	}

	joiner := New(client, metrics.NewMock(), "botuser")
	_, err := joiner.JoinAll(context.Background())
	require.Error(t, err)
	assert.Empty(t, client.JoinArenaCalls)
}

func TestJoinAll_NothingToJoin(t *testing.T) {
	client := lichess.NewMock()

	joiner := New(client, metrics.NewMock(), "botuser")
	summary, err := joiner.JoinAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
}
