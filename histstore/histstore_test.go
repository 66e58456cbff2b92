package histstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gemarathon/backend/histstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *histstore.Store {
	t.Helper()
	store, err := histstore.NewStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Append(ctx, "דוד כהן", histstore.ReasonDroppedTop10, "ירד מהעשירייה")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Timestamp.IsZero())

	_, err = store.Append(ctx, "יוסי לוי", histstore.ReasonAddedPoints, "")
	require.NoError(t, err)

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// newest first
	assert.Equal(t, "יוסי לוי", entries[0].StudentName)
	assert.Equal(t, "דוד כהן", entries[1].StudentName)
	assert.Equal(t, histstore.ReasonDroppedTop10, entries[1].Reason)
}

func TestListLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Append(ctx, "תלמיד", histstore.ReasonAddedPoints, "")
		require.NoError(t, err)
	}

	entries, err := store.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestListEmpty(t *testing.T) {
	store := newTestStore(t)

	entries, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
