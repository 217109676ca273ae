package lichess

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/charmbracelet/log"

	"github.com/darkonteams/tourney-tools/internal/metrics"
)

// ErrRateLimited marks a 429 from Lichess. It is the only failure the client
// retries; everything else is returned to the caller as-is.
var ErrRateLimited = errors.New("rate limited by lichess")

// APIClient is the real Lichess API client.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
	token      string
	metrics    metrics.Metrics

	// newBackOff builds the retry policy for rate-limited requests. Tests
	// override it to avoid real waits.
	newBackOff func() backoff.BackOff
}

// NewClient creates a Lichess client authenticating with the given bearer token.
func NewClient(token string, metricsSvc metrics.Metrics) *APIClient {
	return &APIClient{
		// No overall timeout: NDJSON exports can stream for a while. Connect
		// timeouts are handled by the default transport.
		httpClient: &http.Client{},
		BaseURL:    "https://lichess.org",
		token:      token,
		metrics:    metricsSvc,
		newBackOff: defaultBackOff,
	}
}

// Ensure APIClient implements the Client interface.
var _ Client = (*APIClient)(nil)

// defaultBackOff mirrors the retry contract for 429s: exponential from 1s,
// individual waits capped at 20 minutes, attempts unlimited.
func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.Multiplier = 2
	b.MaxInterval = 20 * time.Minute
	b.MaxElapsedTime = 0
	return b
}

// ArenaURL returns the public page of an arena tournament.
func ArenaURL(tournamentID string) string {
	return "https://lichess.org/tournament/" + tournamentID
}

// SwissURL returns the public page of a swiss tournament.
func SwissURL(swissID string) string {
	return "https://lichess.org/swiss/" + swissID
}

// do executes a request built by build, retrying only on 429. build is called
// once per attempt so request bodies are fresh on every retry.
func (c *APIClient) do(ctx context.Context, build func() (*http.Request, error)) (*http.Response, error) {
	op := func() (*http.Response, error) {
		req, err := build()
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("request to %s failed: %w", req.URL.Path, err))
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			c.metrics.IncRateLimitRetries()
			log.Warn("Rate limited by Lichess, backing off", "path", req.URL.Path)
			return nil, ErrRateLimited
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			resp.Body.Close()
			return nil, backoff.Permanent(fmt.Errorf("lichess returned status %d for %s: %s",
				resp.StatusCode, req.URL.Path, strings.TrimSpace(string(body))))
		}
		return resp, nil
	}
	return backoff.RetryWithData(op, backoff.WithContext(c.newBackOff(), ctx))
}

// streamND fetches an NDJSON endpoint and calls each for every non-empty
// line. Returning false from each stops the stream early.
func (c *APIClient) streamND(ctx context.Context, rawURL string, each func(line []byte) (bool, error)) error {
	resp, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/x-ndjson")
		return req, nil
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		cont, err := each(line)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading ndjson stream: %w", err)
	}
	return nil
}

// postJSON sends a JSON body and decodes the JSON response into out (out may
// be nil when the response does not matter).
func (c *APIClient) postJSON(ctx context.Context, rawURL string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}
	resp, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *APIClient) arenaListingURL(params ListArenasParams, status string) string {
	q := url.Values{}
	if params.Max > 0 {
		q.Set("max", strconv.Itoa(params.Max))
	}
	if status != "" {
		q.Set("status", status)
	}
	if params.CreatedBy != "" {
		q.Set("createdBy", params.CreatedBy)
	}
	if params.Name != "" {
		q.Set("name", params.Name)
	}
	return fmt.Sprintf("%s/api/team/%s/arena?%s", c.BaseURL, params.Team, q.Encode())
}

// ListFinishedArenas streams the team's finished arenas newest first. When
// params.Until is set the listing stops just before that tournament, so the
// checkpoint tournament itself is never returned again.
func (c *APIClient) ListFinishedArenas(ctx context.Context, params ListArenasParams) ([]ArenaTournament, error) {
	var arenas []ArenaTournament
	err := c.streamND(ctx, c.arenaListingURL(params, "finished"), func(line []byte) (bool, error) {
		var t ArenaTournament
		if err := json.Unmarshal(line, &t); err != nil {
			return false, fmt.Errorf("parsing arena listing record: %w", err)
		}
		if params.Until != "" && t.ID == params.Until {
			return false, nil
		}
		arenas = append(arenas, t)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	log.Debug("Listed finished arenas", "team", params.Team, "count", len(arenas), "until", params.Until)
	return arenas, nil
}

// ListCreatedArenas returns the team's not-yet-started arenas.
func (c *APIClient) ListCreatedArenas(ctx context.Context, params ListArenasParams) ([]ArenaTournament, error) {
	var arenas []ArenaTournament
	err := c.streamND(ctx, c.arenaListingURL(params, "created"), func(line []byte) (bool, error) {
		var t ArenaTournament
		if err := json.Unmarshal(line, &t); err != nil {
			return false, fmt.Errorf("parsing arena listing record: %w", err)
		}
		arenas = append(arenas, t)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return arenas, nil
}

// ListCreatedSwiss returns the team's not-yet-started swiss tournaments.
func (c *APIClient) ListCreatedSwiss(ctx context.Context, team, createdBy, name string, max int) ([]SwissTournament, error) {
	q := url.Values{}
	if max > 0 {
		q.Set("max", strconv.Itoa(max))
	}
	q.Set("status", "created")
	if createdBy != "" {
		q.Set("createdBy", createdBy)
	}
	if name != "" {
		q.Set("name", name)
	}
	rawURL := fmt.Sprintf("%s/api/team/%s/swiss?%s", c.BaseURL, team, q.Encode())

	var swisses []SwissTournament
	err := c.streamND(ctx, rawURL, func(line []byte) (bool, error) {
		var t SwissTournament
		if err := json.Unmarshal(line, &t); err != nil {
			return false, fmt.Errorf("parsing swiss listing record: %w", err)
		}
		swisses = append(swisses, t)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return swisses, nil
}

// TournamentResults returns the final standings of an arena, best rank first.
func (c *APIClient) TournamentResults(ctx context.Context, tournamentID string, nb int, withSheet bool) ([]PlayerResult, error) {
	q := url.Values{}
	if nb > 0 {
		q.Set("nb", strconv.Itoa(nb))
	}
	if withSheet {
		q.Set("sheet", "true")
	}
	rawURL := fmt.Sprintf("%s/api/tournament/%s/results?%s", c.BaseURL, tournamentID, q.Encode())

	var results []PlayerResult
	err := c.streamND(ctx, rawURL, func(line []byte) (bool, error) {
		var r PlayerResult
		if err := json.Unmarshal(line, &r); err != nil {
			return false, fmt.Errorf("parsing standings row for tournament %s: %w", tournamentID, err)
		}
		results = append(results, r)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// TournamentGames exports the raw games of an arena.
func (c *APIClient) TournamentGames(ctx context.Context, tournamentID string) ([]Game, error) {
	rawURL := fmt.Sprintf("%s/api/tournament/%s/games?moves=false", c.BaseURL, tournamentID)

	var games []Game
	err := c.streamND(ctx, rawURL, func(line []byte) (bool, error) {
		var g Game
		if err := json.Unmarshal(line, &g); err != nil {
			return false, fmt.Errorf("parsing game record for tournament %s: %w", tournamentID, err)
		}
		games = append(games, g)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return games, nil
}

// ListMyCreatedArenas returns arenas created by username in the given
// statuses (e.g. created and started for the auto-join poller).
func (c *APIClient) ListMyCreatedArenas(ctx context.Context, username string, statuses []int) ([]ArenaTournament, error) {
	q := url.Values{}
	for _, s := range statuses {
		q.Add("status", strconv.Itoa(s))
	}
	rawURL := fmt.Sprintf("%s/api/user/%s/tournament/created?%s", c.BaseURL, username, q.Encode())

	var arenas []ArenaTournament
	err := c.streamND(ctx, rawURL, func(line []byte) (bool, error) {
		var t ArenaTournament
		if err := json.Unmarshal(line, &t); err != nil {
			return false, fmt.Errorf("parsing created tournament record: %w", err)
		}
		arenas = append(arenas, t)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return arenas, nil
}

// JoinArena joins the token's account to an arena.
func (c *APIClient) JoinArena(ctx context.Context, tournamentID string, pairMeAsap bool) error {
	form := url.Values{}
	if pairMeAsap {
		form.Set("pairMeAsap", "true")
	}
	encoded := form.Encode()

	resp, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			fmt.Sprintf("%s/api/tournament/%s/join", c.BaseURL, tournamentID),
			strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	})
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// CreateArena creates an arena tournament and returns its ID.
func (c *APIClient) CreateArena(ctx context.Context, params CreateArenaParams) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	if err := c.postJSON(ctx, c.BaseURL+"/api/tournament", params, &created); err != nil {
		return "", err
	}
	log.Info("Created arena tournament", "id", created.ID, "name", params.Name)
	return created.ID, nil
}

// CreateSwiss creates a swiss tournament for a team and returns its ID.
func (c *APIClient) CreateSwiss(ctx context.Context, team string, params CreateSwissParams) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	if err := c.postJSON(ctx, fmt.Sprintf("%s/api/swiss/new/%s", c.BaseURL, team), params, &created); err != nil {
		return "", err
	}
	log.Info("Created swiss tournament", "id", created.ID, "name", params.Name)
	return created.ID, nil
}

// UpdateArena updates an existing arena, typically to rewrite its description.
func (c *APIClient) UpdateArena(ctx context.Context, tournamentID string, params CreateArenaParams) error {
	// The arena update endpoint rejects a start date in the past.
	params.StartDate = 0
	return c.postJSON(ctx, fmt.Sprintf("%s/api/tournament/%s", c.BaseURL, tournamentID), params, nil)
}

// UpdateSwiss updates an existing swiss tournament.
func (c *APIClient) UpdateSwiss(ctx context.Context, swissID string, params CreateSwissParams) error {
	params.StartsAt = ""
	return c.postJSON(ctx, fmt.Sprintf("%s/api/swiss/%s/edit", c.BaseURL, swissID), params, nil)
}
