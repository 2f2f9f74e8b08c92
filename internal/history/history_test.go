package history

import (
	"path/filepath"
	"testing"
	"time"

	"verdalia/internal/models"
	"verdalia/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRecorder(t *testing.T) *Recorder {
	t.Helper()
	st := store.Open(filepath.Join(t.TempDir(), "data.json"), zap.NewNop())
	return NewRecorder(st, zap.NewNop())
}

func items(names ...string) []models.PurchaseItem {
	out := make([]models.PurchaseItem, 0, len(names))
	for _, n := range names {
		out = append(out, models.PurchaseItem{Name: n, UnitPrice: 5, Quantity: 1})
	}
	return out
}

func TestRecordStampsDateAndTime(t *testing.T) {
	r := newRecorder(t)
	r.now = func() time.Time {
		return time.Date(2026, 1, 27, 14, 32, 45, 0, time.UTC)
	}

	p := r.Record("ana", items("Rose"), 5)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "2026-01-27", p.Date)
	assert.Equal(t, "14:32:45", p.Time)
	assert.Equal(t, "ana", p.Username)
}

func TestForUserFiltersAndKeepsOrder(t *testing.T) {
	r := newRecorder(t)
	r.Record("ana", items("Rose"), 5)
	r.Record("bo", items("Tulip"), 3)
	r.Record("ana", items("Fern"), 8)
	r.Record("bo", items("Cactus"), 4)

	got := r.ForUser("ana")
	require.Len(t, got, 2)
	assert.Equal(t, "Rose", got[0].Items[0].Name)
	assert.Equal(t, "Fern", got[1].Items[0].Name)

	assert.Empty(t, r.ForUser("nobody"))
}

func TestOnDate(t *testing.T) {
	r := newRecorder(t)
	day := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return day }
	r.Record("ana", items("Rose"), 5)
	r.now = func() time.Time { return day.AddDate(0, 0, 1) }
	r.Record("ana", items("Tulip"), 3)

	got := r.OnDate("ana", "2026-03-01")
	require.Len(t, got, 1)
	assert.Equal(t, "Rose", got[0].Items[0].Name)
}

func TestPreferencesSplitsPlantsAndBouquets(t *testing.T) {
	r := newRecorder(t)
	r.Record("ana", []models.PurchaseItem{
		{Name: "Spring Bouquet", UnitPrice: 25, Quantity: 2},
		{Name: "Monstera", UnitPrice: 32, Quantity: 1},
		{Name: "Pothos", UnitPrice: 12, Quantity: 3},
	}, 120)

	plants, bouquets := r.Preferences("ana")
	assert.Equal(t, 4, plants)
	assert.Equal(t, 2, bouquets)
}

func TestLogSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	st := store.Open(path, zap.NewNop())
	NewRecorder(st, zap.NewNop()).Record("ana", items("Rose"), 5)

	r2 := NewRecorder(store.Open(path, zap.NewNop()), zap.NewNop())
	assert.Len(t, r2.ForUser("ana"), 1)
}
