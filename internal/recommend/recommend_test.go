package recommend

import (
	"math/rand"
	"testing"

	"verdalia/internal/catalog"
	"verdalia/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func plants() []models.Product {
	return []models.Product{
		{Name: "Echeveria", Price: 9.50, Difficulty: "very easy", Category: "succulent"},
		{Name: "Pothos", Price: 12.00, Difficulty: "easy", Category: "shade"},
		{Name: "Monstera", Price: 32.50, Difficulty: "medium", Category: "indoor"},
		{Name: "Orchid", Price: 45.00, Difficulty: "hard", Category: "flowering"},
		{Name: "Spring Bouquet", Price: 25.00, Difficulty: "easy", IsBouquet: true},
	}
}

func newRecommender(products []models.Product) *Recommender {
	r := New(catalog.New(products, zap.NewNop()), zap.NewNop())
	r.rng = rand.New(rand.NewSource(1))
	return r
}

func TestSunnyLowEffortSmallBudgetPicksSucculent(t *testing.T) {
	r := newRecommender(plants())

	got := r.Recommend(Answers{Light: "lots", Time: "little", Budget: "low", Space: "small"})
	require.NotNil(t, got)
	assert.Equal(t, "Echeveria", got.Name)
}

func TestShadeModerateBudgetPicksShadePlant(t *testing.T) {
	r := newRecommender(plants())

	got := r.Recommend(Answers{Light: "little", Time: "little", Budget: "low", Space: "medium"})
	require.NotNil(t, got)
	assert.Equal(t, "Pothos", got.Name)
}

func TestDemandingFloweringPlantForDedicatedOwner(t *testing.T) {
	r := newRecommender(plants())

	got := r.Recommend(Answers{Light: "medium", Time: "lots", Budget: "high", Space: "medium"})
	require.NotNil(t, got)
	assert.Equal(t, "Orchid", got.Name)
}

func TestBouquetsNeverRecommended(t *testing.T) {
	r := newRecommender(plants())

	for i := 0; i < 20; i++ {
		got := r.Recommend(Answers{})
		require.NotNil(t, got)
		assert.False(t, got.IsBouquet)
	}
}

func TestEmptyCatalogReturnsNil(t *testing.T) {
	r := newRecommender(nil)
	assert.Nil(t, r.Recommend(Answers{Light: "lots"}))
}

func TestTieBrokenAmongTopScorers(t *testing.T) {
	twins := []models.Product{
		{Name: "Echeveria", Price: 9.50, Difficulty: "very easy", Category: "succulent"},
		{Name: "Haworthia", Price: 8.00, Difficulty: "very easy", Category: "succulent"},
	}
	r := newRecommender(twins)
	a := Answers{Light: "lots", Time: "little", Budget: "low", Space: "small"}
	require.Equal(t, Score(twins[0], a), Score(twins[1], a), "fixture must tie")

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		got := r.Recommend(a)
		require.NotNil(t, got)
		seen[got.Name] = true
	}
	assert.Len(t, seen, 2, "both tied plants should be picked eventually")
}

func TestScoreBudgetBands(t *testing.T) {
	cheap := models.Product{Name: "Fern", Price: 10}
	mid := models.Product{Name: "Fern", Price: 25}
	dear := models.Product{Name: "Fern", Price: 50}

	base := Answers{Space: "large"} // avoid the default space point
	low := base
	low.Budget = "low"
	high := base
	high.Budget = "high"

	assert.Equal(t, 3, Score(cheap, low)-Score(cheap, base))
	assert.Equal(t, 0, Score(mid, low)-Score(mid, base))
	assert.Equal(t, 3, Score(dear, high)-Score(dear, base))
}
