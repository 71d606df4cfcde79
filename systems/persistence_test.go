package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items map[string][]byte
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

func useMemStore(t *testing.T) *memStore {
	t.Helper()
	prev := runStore
	store := &memStore{items: map[string][]byte{}}
	runStore = store
	t.Cleanup(func() { runStore = prev })
	return store
}

func TestSummarizeRun(t *testing.T) {
	e := newTestECS(t)
	spawnCrowd(t, e, "Civilian", 3, 5)
	spawnCrowd(t, e, "Zombie", 1, 15)
	for i := 0; i < 30; i++ {
		tick(e, 0.5)
	}

	summary := SummarizeRun(e, "town", 99)

	assert.Equal(t, "town", summary.Scenario)
	assert.Equal(t, uint64(99), summary.Seed)
	assert.Equal(t, int64(30), summary.Ticks)
	assert.Equal(t, 15.0, summary.Seconds)
	assert.Equal(t, 3, summary.Civilians)
	assert.Equal(t, 1, summary.Zombies)
	assert.Equal(t, 75, summary.PercentCivilians)
}

func TestSaveRunKeepsBestSurvival(t *testing.T) {
	store := useMemStore(t)

	records, err := LoadRunRecords()
	require.NoError(t, err)
	assert.Nil(t, records)

	_, err = SaveRun(RunSummary{Scenario: "town", Seconds: 40, Civilians: 3})
	require.NoError(t, err)
	_, err = SaveRun(RunSummary{Scenario: "town", Seconds: 90, Civilians: 0})
	require.NoError(t, err)
	records, err = SaveRun(RunSummary{Scenario: "town", Seconds: 20, Civilians: 1})
	require.NoError(t, err)

	assert.Equal(t, 3, records.Runs)
	assert.Equal(t, 40.0, records.BestSurvival)
	assert.Equal(t, 20.0, records.Last.Seconds)
	assert.Contains(t, store.items, runRecordsKey)

	loaded, err := LoadRunRecords()
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestSaveRunWithoutStore(t *testing.T) {
	prev := runStore
	runStore = nil
	t.Cleanup(func() { runStore = prev })

	records, err := SaveRun(RunSummary{Seconds: 10, Civilians: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, records.Runs)

	loaded, err := LoadRunRecords()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
