package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(aggregateCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(seedCheckpointCmd)
	rootCmd.AddCommand(metricsCmd)

	seedCheckpointCmd.Flags().StringVar(&seedTournament, "tournament", "", "Tournament ID to seed the checkpoint at (required)")
	seedCheckpointCmd.Flags().Int64Var(&seedFinishedAt, "finished-at", 0, "Finish time of the checkpoint tournament in unix milliseconds")
	seedCheckpointCmd.MarkFlagRequired("tournament")
}

var (
	seedTournament string
	seedFinishedAt int64
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Trigger an incremental points aggregation run",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/aggregate")
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Top up the upcoming tournaments of every series",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/schedule")
	},
}

var joinCmd = &cobra.Command{
	Use:   "join",
	Short: "Join the bot account to its own upcoming and running arenas",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/join")
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the currently persisted ranking",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/leaderboard")
	},
}

var seedCheckpointCmd = &cobra.Command{
	Use:   "seed-checkpoint",
	Short: "Seed the aggregation checkpoint at a tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		q.Set("tournament", seedTournament)
		if seedFinishedAt != 0 {
			q.Set("finished_at", fmt.Sprintf("%d", seedFinishedAt))
		}
		return performPostRequest("/seed-checkpoint", q)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	reqURL := host + endpoint
	if dryRun {
		reqURL += "?dry_run=true"
	}
	fmt.Printf("Making request to %s\n", reqURL)

	resp, err := http.Get(reqURL)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, query url.Values) error {
	if dryRun {
		query.Set("dry_run", "true")
	}
	reqURL := host + endpoint + "?" + query.Encode()
	fmt.Printf("Making request to %s\n", reqURL)

	resp, err := http.Post(reqURL, "text/plain", nil)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
