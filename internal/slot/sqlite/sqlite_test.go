package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"listcal/internal/slot"
)

func openTestDB(t *testing.T) *sql.DB {
	d, err := sql.Open("sqlite", "file::memory:?cache=shared&mode=rwc&_journal_mode=WAL&_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	// Create the slots table manually for test
	_, err = d.Exec(`
		CREATE TABLE slots (
			key        TEXT PRIMARY KEY,
			value      TEXT     NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
		);
	`)
	require.NoError(t, err)

	return d
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(openTestDB(t))
	ctx := context.Background()

	want := []byte(`[{"id":"1","name":"Groceries","items":[]}]`)
	require.NoError(t, s.Save(ctx, "listcal-lists", want))

	got, err := s.Load(ctx, "listcal-lists")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingKey(t *testing.T) {
	s := New(openTestDB(t))

	_, err := s.Load(context.Background(), "never-saved")
	assert.ErrorIs(t, err, slot.ErrNotFound)
}

func TestSaveUpserts(t *testing.T) {
	s := New(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "k", []byte("first")))
	require.NoError(t, s.Save(ctx, "k", []byte("second")))

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestKeysAreIndependent(t *testing.T) {
	s := New(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "a", []byte("aaa")))
	require.NoError(t, s.Save(ctx, "b", []byte("bbb")))

	got, err := s.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("aaa"), got)
}
