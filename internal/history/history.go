// Package history keeps the append-only purchase log. Records are
// created only by checkout and are never modified or pruned.
package history

import (
	"strings"
	"time"

	"verdalia/internal/models"
	"verdalia/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const storageKey = "purchases"

// Recorder appends and queries purchase records.
type Recorder struct {
	store  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewRecorder returns a Recorder persisting through st.
func NewRecorder(st *store.Store, logger *zap.Logger) *Recorder {
	return &Recorder{store: st, logger: logger, now: time.Now}
}

func (r *Recorder) load() []models.Purchase {
	var purchases []models.Purchase
	r.store.Get(storageKey, &purchases)
	return purchases
}

// Record appends one purchase stamped with the current date and time
// and persists the full log.
func (r *Recorder) Record(username string, items []models.PurchaseItem, total float64) *models.Purchase {
	now := r.now()
	purchase := models.Purchase{
		ID:       uuid.New().String(),
		Username: username,
		Date:     now.Format("2006-01-02"),
		Time:     now.Format("15:04:05"),
		Total:    total,
		Items:    items,
	}

	purchases := append(r.load(), purchase)
	r.store.Set(storageKey, purchases)

	r.logger.Info("purchase recorded",
		zap.String("username", username),
		zap.Int("items", len(items)),
		zap.Float64("total", total))
	return &purchase
}

// ForUser returns the user's purchases in insertion order, which is
// also chronological order since the log is append-only.
func (r *Recorder) ForUser(username string) []models.Purchase {
	var matched []models.Purchase
	for _, p := range r.load() {
		if p.Username == username {
			matched = append(matched, p)
		}
	}
	return matched
}

// OnDate returns the user's purchases for one calendar day
// ("2006-01-02"), the unit the history calendar groups by.
func (r *Recorder) OnDate(username, date string) []models.Purchase {
	var matched []models.Purchase
	for _, p := range r.ForUser(username) {
		if p.Date == date {
			matched = append(matched, p)
		}
	}
	return matched
}

// Preferences counts the units a user has bought, split into plants and
// bouquets. Classification is by product name, as the original
// preference breakdown does.
func (r *Recorder) Preferences(username string) (plants, bouquets int) {
	for _, p := range r.ForUser(username) {
		for _, item := range p.Items {
			if isBouquetName(item.Name) {
				bouquets += item.Quantity
			} else {
				plants += item.Quantity
			}
		}
	}
	return plants, bouquets
}

func isBouquetName(name string) bool {
	return strings.Contains(strings.ToLower(name), "bouquet")
}
