// Package catalog serves the static product document. It is a pure
// projection: products are loaded once and only ever read.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"verdalia/internal/models"

	"go.uber.org/zap"
)

// Filter is the conjunctive set of catalog filters. Zero values mean
// "no constraint"; Bouquet distinguishes unset from false.
type Filter struct {
	Bouquet    *bool
	Season     string
	Difficulty string
	Query      string // free-text match against the product name
}

// Catalog holds the loaded product list.
type Catalog struct {
	products []models.Product
	logger   *zap.Logger
}

// Load reads the catalog JSON document at path.
func Load(path string, logger *zap.Logger) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var doc models.CatalogDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	logger.Info("catalog loaded", zap.String("path", path), zap.Int("products", len(doc.Products)))
	return &Catalog{products: doc.Products, logger: logger}, nil
}

// New builds a catalog from an in-memory product list.
func New(products []models.Product, logger *zap.Logger) *Catalog {
	return &Catalog{products: products, logger: logger}
}

// All returns every product in document order.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByName finds a product by exact name, case-insensitively.
func (c *Catalog) ByName(name string) (*models.Product, bool) {
	for _, p := range c.products {
		if strings.EqualFold(p.Name, name) {
			return &p, true
		}
	}
	return nil, false
}

// Filter returns the products matching every set constraint, in
// document order.
func (c *Catalog) Filter(f Filter) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if f.Bouquet != nil && p.IsBouquet != *f.Bouquet {
			continue
		}
		if f.Season != "" && !strings.EqualFold(p.Season, f.Season) {
			continue
		}
		if f.Difficulty != "" && !strings.EqualFold(p.Difficulty, f.Difficulty) {
			continue
		}
		if f.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Query)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Plants returns the non-bouquet products, the pool the recommender
// scores over.
func (c *Catalog) Plants() []models.Product {
	no := false
	return c.Filter(Filter{Bouquet: &no})
}
