package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"

	"github.com/darkonteams/tourney-tools/internal/metrics"
	"github.com/darkonteams/tourney-tools/internal/notifier"
	"github.com/darkonteams/tourney-tools/internal/publisher"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = (*Notifier)(nil)

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metricsSvc metrics.Metrics) *Notifier {
	return &Notifier{
		api:       slack.New(token),
		channelID: channelID,
		metrics:   metricsSvc,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metricsSvc metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metricsSvc,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

// SendAggregationSummary posts the top of the updated ranking after a run
// that merged at least one new tournament.
func (s *Notifier) SendAggregationSummary(report publisher.Report, newTournaments int, dryRun bool) error {
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, "Lifetime ranking updated :trophy:", true, false),
	)
	contextBlock := slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("Merged %d new tournament(s). Latest: <%s|%s>",
				newTournaments, report.CheckpointRow()[1], report.Checkpoint.TournamentID),
			false, false),
	)
	section := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, formatTop(report.Rows, 10), false, false),
		nil, nil,
	)

	msg := slack.NewBlockMessage(header, contextBlock, section)
	return s.sendMessage(msg, dryRun)
}

// SendLeaderboard posts the full current ranking.
func (s *Notifier) SendLeaderboard(report publisher.Report, dryRun bool) error {
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, "Lifetime ranking :chess_pawn:", true, false),
	)
	section := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, formatTop(report.Rows, 25), false, false),
		nil, nil,
	)

	msg := slack.NewBlockMessage(header, section)
	return s.sendMessage(msg, dryRun)
}

func formatTop(rows []publisher.Row, limit int) string {
	if len(rows) == 0 {
		return "_No players yet._"
	}
	var b strings.Builder
	for i, row := range rows {
		if i >= limit {
			b.WriteString(fmt.Sprintf("_...and %d more_\n", len(rows)-limit))
			break
		}
		medal := fmt.Sprintf("%d.", i+1)
		switch i {
		case 0:
			medal = ":first_place_medal:"
		case 1:
			medal = ":second_place_medal:"
		case 2:
			medal = ":third_place_medal:"
		}
		b.WriteString(fmt.Sprintf("%s *%s* - %d pts (%d games, %s wins)\n",
			medal, row.Username, row.Score, row.Games, row.WinRate))
	}
	return b.String()
}
