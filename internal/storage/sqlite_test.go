package storage

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLiteAdapter(t *testing.T) *SQLiteAdapter {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test_"+t.Name()+".db")

	adapter, err := NewSQLiteAdapter(dbPath, zerolog.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		adapter.Close()
	})
	return adapter
}

func TestSQLiteAdapter_RoundTrip(t *testing.T) {
	adapter := setupSQLiteAdapter(t)

	want := sampleSnapshot()
	require.NoError(t, adapter.Save(want))

	got := adapter.Load()

	assert.Equal(t, want, got)
}

func TestSQLiteAdapter_Load_EmptyDatabaseStartsFresh(t *testing.T) {
	adapter := setupSQLiteAdapter(t)

	got := adapter.Load()

	assert.Empty(t, got.Vocabulary)
	assert.True(t, ValidateSnapshot(got))
}

func TestSQLiteAdapter_Save_Overwrites(t *testing.T) {
	adapter := setupSQLiteAdapter(t)

	require.NoError(t, adapter.Save(sampleSnapshot()))

	updated := sampleSnapshot()
	updated.Vocabulary = updated.Vocabulary[:0]
	updated.LastUpdated = "2024-03-16T12:00:00Z"
	require.NoError(t, adapter.Save(updated))

	got := adapter.Load()

	assert.Empty(t, got.Vocabulary)
	assert.Equal(t, "2024-03-16T12:00:00Z", got.LastUpdated)
}

func TestSQLiteAdapter_Load_CorruptBlobStartsFresh(t *testing.T) {
	adapter := setupSQLiteAdapter(t)

	row := blobRow{Key: snapshotKey, Value: "{not json"}
	require.NoError(t, adapter.db.Create(&row).Error)

	got := adapter.Load()

	assert.Empty(t, got.Vocabulary)
	assert.True(t, ValidateSnapshot(got))
}
