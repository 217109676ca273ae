package slack

import (
	"context"
	"errors"
	"testing"

	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkonteams/tourney-tools/internal/metrics"
	"github.com/darkonteams/tourney-tools/internal/publisher"
	"github.com/darkonteams/tourney-tools/internal/stats"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func sampleReport() publisher.Report {
	return publisher.BuildReport([]stats.PlayerStats{
		{Username: "alice", Score: 40, Games: 10, Wins: 6, Losses: 3, Draws: 1},
		{Username: "bob", Score: 20, Games: 8, Wins: 3, Losses: 4, Draws: 1},
	}, stats.Checkpoint{TournamentID: "t9", FinishedAt: 1700000000000})
}

func TestSendMessage_DryRun(t *testing.T) {
	metricsSvc := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metricsSvc)

	err := notifier.SendLeaderboard(sampleReport(), true)
	require.NoError(t, err)
	assert.Equal(t, 0, metricsSvc.SlackNotifSent())
}

func TestSendAggregationSummary_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metricsSvc := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metricsSvc)

	err := notifier.SendAggregationSummary(sampleReport(), 3, false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metricsSvc.SlackNotifSent())
	assert.Equal(t, 0, metricsSvc.SlackNotifFailed())
}

func TestSendLeaderboard_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metricsSvc := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metricsSvc)

	err := notifier.SendLeaderboard(sampleReport(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metricsSvc.SlackNotifSent())
	assert.Equal(t, 1, metricsSvc.SlackNotifFailed())
}

func TestFormatTop(t *testing.T) {
	rows := sampleReport().Rows

	text := formatTop(rows, 10)
	assert.Contains(t, text, ":first_place_medal: *alice*")
	assert.Contains(t, text, ":second_place_medal: *bob*")

	truncated := formatTop(rows, 1)
	assert.Contains(t, truncated, "_...and 1 more_")

	assert.Equal(t, "_No players yet._", formatTop(nil, 10))
}
