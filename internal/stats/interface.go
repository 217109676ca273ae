package stats

import "errors"

// ErrMissingCheckpoint is returned when the checkpoint row does not exist.
// The store must be seeded once by an operator before the first run.
var ErrMissingCheckpoint = errors.New("no checkpoint row; seed one before aggregating")

// ErrCheckpointConflict is returned when WriteAll finds the stored checkpoint
// no longer matches the one the run started from, meaning a concurrent run
// committed in between.
var ErrCheckpointConflict = errors.New("checkpoint changed since run started")

// Store defines the interface for the durable stats and checkpoint state.
type Store interface {
	// Checkpoint returns the marker of the last fully-processed tournament,
	// or ErrMissingCheckpoint when the store was never seeded.
	Checkpoint() (Checkpoint, error)
	// PlayerStats loads the full player table.
	PlayerStats() ([]PlayerStats, error)
	// WriteAll replaces the whole player table and advances the checkpoint in
	// one transaction. expectLastID must match the currently stored
	// checkpoint tournament or the write fails with ErrCheckpointConflict.
	WriteAll(players []PlayerStats, cp Checkpoint, expectLastID string) error
	// SeedCheckpoint creates or overwrites the checkpoint row.
	SeedCheckpoint(cp Checkpoint) error
}
