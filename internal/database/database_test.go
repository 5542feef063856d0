package database

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func sampleRecord(id string) GameRecord {
	return GameRecord{
		ID:          id,
		CreatedAt:   "2026-08-30T12:00:00Z",
		North:       "Ann",
		East:        "Ben",
		South:       "Cal",
		West:        "Dee",
		Team1Score:  512,
		Team2Score:  318,
		WinningTeam: 1,
		Rounds:      9,
	}
}

func TestInsertAndGetByID(t *testing.T) {
	svc := newTestService(t)

	rec := sampleRecord("game-1")
	require.NoError(t, svc.Insert(rec))

	got, err := svc.GetByID("game-1")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	_, err = svc.GetByID("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestInsertRejectsDuplicateID(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.Insert(sampleRecord("game-1")))
	assert.Error(t, svc.Insert(sampleRecord("game-1")))
}

func TestGetAll(t *testing.T) {
	svc := newTestService(t)

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, svc.Insert(sampleRecord("game-1")))
	require.NoError(t, svc.Insert(sampleRecord("game-2")))

	all, err = svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetByPlayer(t *testing.T) {
	svc := newTestService(t)

	first := sampleRecord("game-1")
	require.NoError(t, svc.Insert(first))

	second := sampleRecord("game-2")
	second.West = "Eve"
	require.NoError(t, svc.Insert(second))

	// Matches any seat the player occupied.
	games, err := svc.GetByPlayer("Dee")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "game-1", games[0].ID)

	games, err = svc.GetByPlayer("Ann")
	require.NoError(t, err)
	assert.Len(t, games, 2)

	_, err = svc.GetByPlayer("nobody")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
