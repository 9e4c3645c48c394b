package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/curia/core"
	"github.com/hupe1980/curia/senator"
	"github.com/hupe1980/curia/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testSnapshot(id string, savedAt time.Time) *session.Snapshot {
	return &session.Snapshot{
		ID:      id,
		SavedAt: savedAt,
		Topics:  []core.Topic{{Text: "Grain subsidies", Category: "economic"}},
		Senators: []session.SenatorState{
			{
				Profile:       senator.Profile{Name: "Cicero", Faction: "Optimates"},
				Relationships: map[string]float64{"Caesar": -2.5},
			},
		},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	snap := testSnapshot(core.NewID(), time.Now().UTC())

	require.NoError(t, store.Save(snap))

	loaded, err := store.Load(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, loaded.ID)
	assert.Equal(t, snap.Topics, loaded.Topics)
	require.Len(t, loaded.Senators, 1)
	assert.Equal(t, "Cicero", loaded.Senators[0].Profile.Name)
	assert.InDelta(t, -2.5, loaded.Senators[0].Relationships["Caesar"], 1e-9)
}

func TestStoreSaveReplaces(t *testing.T) {
	store := openTestStore(t)
	snap := testSnapshot(core.NewID(), time.Now().UTC())

	require.NoError(t, store.Save(snap))
	snap.Topics[0].Text = "Land reform"
	require.NoError(t, store.Save(snap))

	loaded, err := store.Load(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, "Land reform", loaded.Topics[0].Text)

	ids, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{snap.ID}, ids)
}

func TestStoreLoadUnknown(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Load("no-such-id")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestStoreListOrdersByRecency(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	older := testSnapshot("older", base)
	newer := testSnapshot("newer", base.Add(time.Hour))
	require.NoError(t, store.Save(older))
	require.NoError(t, store.Save(newer))

	ids, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"newer", "older"}, ids)
}
