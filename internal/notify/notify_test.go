package notify

import (
	"testing"

	"verdalia/internal/config"
	"verdalia/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDisabledMailerNeverDials(t *testing.T) {
	m := NewMailer(config.SMTP{Host: "smtp.example.com", Port: 587}, zap.NewNop())

	err := m.PurchaseRecorded(&models.Purchase{
		ID: "abc", Username: "ana", Date: "2026-01-27", Time: "14:32:45", Total: 10,
		Items: []models.PurchaseItem{{Name: "Rose", UnitPrice: 5, Quantity: 2}},
	})
	assert.NoError(t, err)
}

func TestSummaryFormat(t *testing.T) {
	got := summary(&models.Purchase{
		ID: "abc", Username: "ana", Date: "2026-01-27", Time: "14:32:45", Total: 13.25,
		Items: []models.PurchaseItem{
			{Name: "Rose", UnitPrice: 5, Quantity: 2},
			{Name: "Tulip", UnitPrice: 3.25, Quantity: 1},
		},
	})

	assert.Contains(t, got, "Customer: ana")
	assert.Contains(t, got, "2x Rose @ 5.00")
	assert.Contains(t, got, "Total: 13.25")
}
