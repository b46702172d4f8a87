package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ksrtc_booker/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportStoreSaveLoad(t *testing.T) {
	store, err := NewReportStore(t.TempDir())
	require.NoError(t, err)

	started := time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC)
	report := entities.RunReport{
		ID:       "run-1",
		Strategy: entities.StrategyURL,
		Status:   entities.StatusDegraded,
		Started:  started,
		Finished: started.Add(42 * time.Second),
		Steps: []entities.StepResult{
			{Name: "open_search", Status: entities.StatusSucceeded},
			{Name: "select_seats", Status: entities.StatusDegraded, Error: "no priority seats free"},
		},
		SelectedSeats: []int{5},
	}
	require.NoError(t, store.Save(report))

	got, err := store.Load("run-1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusDegraded, got.Status)
	assert.Equal(t, []int{5}, got.SelectedSeats)
	assert.Len(t, got.Steps, 2)
	assert.Equal(t, 42*time.Second, got.Elapsed())
}

func TestReportStoreLoadMissing(t *testing.T) {
	store, err := NewReportStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("nope")
	require.Error(t, err)
	assert.True(t, entities.IsKind(err, entities.KindNotFound))
}

func TestReportStoreListNewestFirst(t *testing.T) {
	dir := t.TempDir()
	store, err := NewReportStore(dir)
	require.NoError(t, err)

	base := time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Save(entities.RunReport{
			ID:      id,
			Started: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	// stray files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	reports, err := store.List()
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "c", reports[0].ID)
	assert.Equal(t, "a", reports[2].ID)
}

func TestReportStoreRejectsEmptyID(t *testing.T) {
	store, err := NewReportStore(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, store.Save(entities.RunReport{}))
}
