// Package comments keeps per-product user reviews.
package comments

import (
	"errors"
	"strings"
	"time"

	"verdalia/internal/models"
	"verdalia/internal/store"

	"go.uber.org/zap"
)

const storageKey = "comments"

var (
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrEmptyText        = errors.New("comment text must not be empty")
	ErrSpam             = errors.New("comment rejected as spam")
)

// SpamDetector flags comments containing known spam phrasing.
type SpamDetector struct {
	words []string
}

// NewSpamDetector returns a detector with the default word list.
func NewSpamDetector() *SpamDetector {
	return &SpamDetector{
		words: []string{
			"bitcoin", "crypto", "wallet", "investment", "profit",
			"earn money", "make money", "get rich", "quick money",
			"free money", "lottery", "prize", "winner", "claim",
			"limited time", "exclusive offer", "bank transfer",
		},
	}
}

// IsSpam reports whether the text contains a spam word.
func (sd *SpamDetector) IsSpam(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range sd.words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// Service stores and serves product comments.
type Service struct {
	store  *store.Store
	spam   *SpamDetector
	logger *zap.Logger
	now    func() time.Time
}

// NewService returns a Service persisting through st.
func NewService(st *store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, spam: NewSpamDetector(), logger: logger, now: time.Now}
}

func (s *Service) load() []models.Comment {
	var out []models.Comment
	s.store.Get(storageKey, &out)
	return out
}

// Add validates and appends one comment. Rating must be 1..5, text
// must be non-empty and pass the spam gate.
func (s *Service) Add(product, username string, rating int, text string) (*models.Comment, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if s.spam.IsSpam(text) {
		s.logger.Warn("spam comment rejected",
			zap.String("product", product), zap.String("username", username))
		return nil, ErrSpam
	}

	comment := models.Comment{
		Product:   product,
		Username:  username,
		Rating:    rating,
		Text:      text,
		Timestamp: s.now(),
	}
	s.store.Set(storageKey, append(s.load(), comment))
	return &comment, nil
}

// ForProduct returns the product's comments in insertion order.
func (s *Service) ForProduct(product string) []models.Comment {
	var out []models.Comment
	for _, c := range s.load() {
		if strings.EqualFold(c.Product, product) {
			out = append(out, c)
		}
	}
	return out
}
