package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	// Check if the 'player_stats' table was created
	var statsTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='player_stats'").Scan(&statsTableName)
	require.NoError(t, err, "Querying for player_stats table should not produce an error")
	assert.Equal(t, "player_stats", statsTableName, "The 'player_stats' table should be created")

	// Check if the 'checkpoint' table was created
	var checkpointTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='checkpoint'").Scan(&checkpointTableName)
	require.NoError(t, err, "Querying for checkpoint table should not produce an error")
	assert.Equal(t, "checkpoint", checkpointTableName, "The 'checkpoint' table should be created")
}

func TestInitDB_CheckpointSingleRowConstraint(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	_, err = db.Exec("INSERT INTO checkpoint (id, tournament_id, finished_at) VALUES (1, 't1', 0)")
	require.NoError(t, err)

	// Any id other than 1 violates the table's CHECK constraint.
	_, err = db.Exec("INSERT INTO checkpoint (id, tournament_id, finished_at) VALUES (2, 't2', 0)")
	assert.Error(t, err)
}
