package stats

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// New creates a new Store backed by the given database.
func New(db *sql.DB) Store {
	return &store{db: db}
}

var _ Store = (*store)(nil)

func (s *store) Checkpoint() (Checkpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cp Checkpoint
	err := s.db.QueryRow("SELECT tournament_id, finished_at FROM checkpoint WHERE id = 1").
		Scan(&cp.TournamentID, &cp.FinishedAt)
	if err == sql.ErrNoRows {
		return Checkpoint{}, ErrMissingCheckpoint
	}
	if err != nil {
		return Checkpoint{}, fmt.Errorf("reading checkpoint: %w", err)
	}
	return cp, nil
}

func (s *store) PlayerStats() ([]PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT username, score, highest_tourney_score, highest_tourney_ref,
		       games, wins, losses, draws, num_tournaments, tournament_wins
		FROM player_stats
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying player stats: %w", err)
	}
	defer rows.Close()

	var players []PlayerStats
	for rows.Next() {
		var p PlayerStats
		err := rows.Scan(
			&p.Username, &p.Score, &p.HighestTourneyScore, &p.HighestTourneyRef,
			&p.Games, &p.Wins, &p.Losses, &p.Draws, &p.NumTournaments, &p.TournamentWins,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning player stats row: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// WriteAll replaces the player table and advances the checkpoint atomically.
// A reader never observes stats without the matching checkpoint or vice versa.
func (s *store) WriteAll(players []PlayerStats, cp Checkpoint, expectLastID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var storedID string
	err = tx.QueryRow("SELECT tournament_id FROM checkpoint WHERE id = 1").Scan(&storedID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return ErrMissingCheckpoint
	}
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("reading checkpoint for staleness check: %w", err)
	}
	if storedID != expectLastID {
		tx.Rollback()
		log.Error("Checkpoint moved since this run started", "stored", storedID, "expected", expectLastID)
		return ErrCheckpointConflict
	}

	if _, err := tx.Exec("DELETE FROM player_stats"); err != nil {
		tx.Rollback()
		return fmt.Errorf("clearing player stats: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO player_stats (username, score, highest_tourney_score, highest_tourney_ref,
			games, wins, losses, draws, num_tournaments, tournament_wins)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, p := range players {
		_, err := stmt.Exec(
			p.Username, p.Score, p.HighestTourneyScore, p.HighestTourneyRef,
			p.Games, p.Wins, p.Losses, p.Draws, p.NumTournaments, p.TournamentWins,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting stats for %s: %w", p.Username, err)
		}
	}

	if _, err := tx.Exec(
		"UPDATE checkpoint SET tournament_id = ?, finished_at = ? WHERE id = 1",
		cp.TournamentID, cp.FinishedAt,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("advancing checkpoint: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing stats write: %w", err)
	}
	log.Info("Persisted lifetime stats", "players", len(players), "checkpoint", cp.TournamentID)
	return nil
}

func (s *store) SeedCheckpoint(cp Checkpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO checkpoint (id, tournament_id, finished_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			tournament_id = excluded.tournament_id,
			finished_at = excluded.finished_at
	`, cp.TournamentID, cp.FinishedAt)
	if err != nil {
		return fmt.Errorf("seeding checkpoint: %w", err)
	}
	log.Info("Seeded checkpoint", "tournament", cp.TournamentID, "finishedAt", cp.FinishedAt)
	return nil
}
