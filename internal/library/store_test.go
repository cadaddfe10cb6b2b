package library_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slipstream/internal/library"
	"slipstream/internal/melee"
	"slipstream/internal/slp"
	"slipstream/internal/testsupport"
)

func sampleEntry(path string) *library.Entry {
	return &library.Entry{
		Path:    path,
		Size:    4096,
		ModTime: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Info: slp.GameInfo{
			Version: slp.Version{Major: 3, Minor: 16},
			Stage:   melee.FountainOfDreams,
			Low: slp.PlayerInfo{
				Port:    0,
				Fighter: melee.CharacterColour{Character: melee.Falco, Costume: 2},
			},
			High: slp.PlayerInfo{
				Port:    1,
				Fighter: melee.CharacterColour{Character: melee.Sheik, Costume: 1},
			},
		},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := testsupport.MustOpenStore(t)
	ctx := context.Background()

	entry := sampleEntry("/replays/game.slp")
	require.NoError(t, store.Upsert(ctx, entry))

	got, err := store.Get(ctx, entry.Path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.Size, got.Size)
	assert.True(t, got.ModTime.Equal(entry.ModTime))
	assert.Equal(t, entry.Info, got.Info)
	assert.False(t, got.ScannedAt.IsZero())
}

func TestStoreGetAbsent(t *testing.T) {
	store := testsupport.MustOpenStore(t)
	got, err := store.Get(context.Background(), "/nowhere.slp")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreUpsertReplaces(t *testing.T) {
	store := testsupport.MustOpenStore(t)
	ctx := context.Background()

	entry := sampleEntry("/replays/game.slp")
	require.NoError(t, store.Upsert(ctx, entry))

	entry.Size = 8192
	entry.Info.Stage = melee.PokemonStadium
	require.NoError(t, store.Upsert(ctx, entry))

	got, err := store.Get(ctx, entry.Path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(8192), got.Size)
	assert.Equal(t, melee.PokemonStadium, got.Info.Stage)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStoreAllOrdered(t *testing.T) {
	store := testsupport.MustOpenStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, sampleEntry("/replays/b.slp")))
	require.NoError(t, store.Upsert(ctx, sampleEntry("/replays/a.slp")))

	entries, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "/replays/a.slp", entries[0].Path)
	assert.Equal(t, "/replays/b.slp", entries[1].Path)
}

func TestStoreRemove(t *testing.T) {
	store := testsupport.MustOpenStore(t)
	ctx := context.Background()

	entry := sampleEntry("/replays/game.slp")
	require.NoError(t, store.Upsert(ctx, entry))
	require.NoError(t, store.Remove(ctx, entry.Path))

	got, err := store.Get(ctx, entry.Path)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreReopenKeepsRows(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "index.db")
	store, err := library.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Upsert(context.Background(), sampleEntry("/replays/game.slp")))
	require.NoError(t, store.Close())

	reopened, err := library.Open(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	n, err := reopened.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
