// Package notify emails the shop a summary of each recorded purchase.
package notify

import (
	"fmt"
	"strings"

	"verdalia/internal/config"
	"verdalia/internal/models"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer sends order notifications. When SMTP credentials are not
// configured the mailer stays in log-only mode and never dials out.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
	logger *zap.Logger
}

// NewMailer builds a Mailer from the SMTP settings.
func NewMailer(cfg config.SMTP, logger *zap.Logger) *Mailer {
	if cfg.User == "" || cfg.Pass == "" || cfg.NotifyTo == "" {
		logger.Info("SMTP not configured, order notifications disabled")
		return &Mailer{logger: logger}
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:   cfg.User,
		to:     cfg.NotifyTo,
		logger: logger,
	}
}

// PurchaseRecorded mails a plain-text summary of the purchase. In
// log-only mode the summary is logged instead.
func (m *Mailer) PurchaseRecorded(p *models.Purchase) error {
	subject := fmt.Sprintf("New order from %s (%.2f)", p.Username, p.Total)

	if m.dialer == nil {
		m.logger.Info("order notification (mail disabled)",
			zap.String("subject", subject))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", summary(p))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending order notification: %w", err)
	}
	return nil
}

func summary(p *models.Purchase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s\n", p.ID)
	fmt.Fprintf(&b, "Customer: %s\n", p.Username)
	fmt.Fprintf(&b, "Placed: %s %s\n\n", p.Date, p.Time)
	for _, item := range p.Items {
		fmt.Fprintf(&b, "  %dx %s @ %.2f\n", item.Quantity, item.Name, item.UnitPrice)
	}
	fmt.Fprintf(&b, "\nTotal: %.2f\n", p.Total)
	return b.String()
}
