// Package recommend scores catalog plants against quiz answers and
// picks the best match. Bouquets are never recommended.
package recommend

import (
	"math/rand"
	"strings"

	"verdalia/internal/catalog"
	"verdalia/internal/models"

	"go.uber.org/zap"
)

// Answers are the four quiz responses. Recognized values:
// Light: "lots", "little", anything else means medium.
// Time: "little", "lots", anything else means moderate.
// Budget: "low", "medium", "high".
// Space: "small", "large", anything else means medium.
type Answers struct {
	Light  string `json:"light"`
	Time   string `json:"time"`
	Budget string `json:"budget"`
	Space  string `json:"space"`
}

var shadeTolerant = []string{"pothos", "sansevieria", "zz plant", "philodendron", "bamboo", "schefflera"}
var compact = []string{"peperomia", "succulent", "haworthia", "echeveria", "jade", "tradescantia"}
var large = []string{"monstera", "ficus", "dracaena", "alocasia", "schefflera"}

// Recommender picks a plant for a set of quiz answers.
type Recommender struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
	rng     *rand.Rand
}

// New returns a Recommender over the given catalog.
func New(c *catalog.Catalog, logger *zap.Logger) *Recommender {
	return &Recommender{catalog: c, logger: logger}
}

// Recommend returns the highest-scoring plant, breaking ties uniformly
// at random. It returns nil when the catalog has no plants.
func (r *Recommender) Recommend(a Answers) *models.Product {
	plants := r.catalog.Plants()
	if len(plants) == 0 {
		return nil
	}

	best := -1
	var winners []models.Product
	for _, p := range plants {
		pts := Score(p, a)
		switch {
		case pts > best:
			best = pts
			winners = winners[:0]
			winners = append(winners, p)
		case pts == best:
			winners = append(winners, p)
		}
	}

	pick := winners[r.intn(len(winners))]
	r.logger.Info("recommendation computed",
		zap.String("product", pick.Name), zap.Int("points", best), zap.Int("tied", len(winners)))
	return &pick
}

func (r *Recommender) intn(n int) int {
	if n == 1 {
		return 0
	}
	if r.rng != nil {
		return r.rng.Intn(n)
	}
	return rand.Intn(n)
}

// Score applies the additive point rules to one plant.
func Score(p models.Product, a Answers) int {
	pts := 0
	difficulty := strings.ToLower(p.Difficulty)
	name := strings.ToLower(p.Name)
	category := strings.ToLower(p.Category)

	// Light.
	switch a.Light {
	case "lots":
		if category == "succulent" {
			pts += 3
		}
		if strings.Contains(difficulty, "easy") {
			pts++
		}
	case "little":
		if nameContainsAny(name, shadeTolerant) {
			pts += 3
		}
		if category == "shade" || category == "foliage" {
			pts += 2
		}
	default:
		if category == "indoor" {
			pts += 2
		}
	}

	// Time available for care.
	switch a.Time {
	case "little":
		if strings.Contains(difficulty, "very easy") {
			pts += 4
		} else if strings.Contains(difficulty, "easy") {
			pts += 2
		}
		if category == "succulent" {
			pts += 2
		}
	case "lots":
		if strings.Contains(difficulty, "medium") || strings.Contains(difficulty, "hard") {
			pts += 2
		}
		if category == "flowering" {
			pts += 2
		}
	default:
		if strings.Contains(difficulty, "easy") || strings.Contains(difficulty, "medium") {
			pts += 2
		}
	}

	// Budget bands.
	switch {
	case a.Budget == "low" && p.Price < 20:
		pts += 3
	case a.Budget == "medium" && p.Price >= 20 && p.Price <= 35:
		pts += 3
	case a.Budget == "high" && p.Price > 35:
		pts += 3
	}

	// Space.
	switch a.Space {
	case "small":
		if nameContainsAny(name, compact) {
			pts += 3
		}
		if p.Price < 20 {
			pts++
		}
	case "large":
		if nameContainsAny(name, large) {
			pts += 3
		}
	default:
		pts++
	}

	return pts
}

func nameContainsAny(name string, words []string) bool {
	for _, w := range words {
		if strings.Contains(name, w) {
			return true
		}
	}
	return false
}
