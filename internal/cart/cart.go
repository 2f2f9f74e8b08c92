// Package cart owns the shopping cart: the item list, quantity
// arithmetic, the running total, and the checkout transition into the
// purchase log. Every mutation is persisted immediately; there is no
// batching and no pending state beyond "has items / empty".
package cart

import (
	"errors"
	"fmt"
	"math"

	"verdalia/internal/history"
	"verdalia/internal/models"
	"verdalia/internal/store"

	"go.uber.org/zap"
)

const storageKey = "cart"

// ErrInvalidPrice rejects unit prices that would poison the total.
var ErrInvalidPrice = errors.New("unit price must be a non-negative number")

// Engine is the cart state machine. It holds no items itself; the
// stored value under the cart key is the single source of truth.
type Engine struct {
	store    *store.Store
	recorder *history.Recorder
	logger   *zap.Logger
}

// NewEngine returns an Engine persisting through st and emitting
// purchase records through rec on checkout.
func NewEngine(st *store.Store, rec *history.Recorder, logger *zap.Logger) *Engine {
	return &Engine{store: st, recorder: rec, logger: logger}
}

func (e *Engine) load() []models.CartItem {
	var items []models.CartItem
	e.store.Get(storageKey, &items)
	return items
}

func (e *Engine) save(items []models.CartItem) {
	e.store.Set(storageKey, items)
}

// AddItem puts one unit of the named product into the cart. If a line
// with the same name already exists its quantity is incremented;
// otherwise a new line with quantity 1 is appended, preserving
// insertion order.
func (e *Engine) AddItem(name string, unitPrice float64, image string) error {
	if math.IsNaN(unitPrice) || math.IsInf(unitPrice, 0) || unitPrice < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPrice, unitPrice)
	}

	items := e.load()
	for i := range items {
		if items[i].Name == name {
			items[i].Quantity++
			e.save(items)
			e.logger.Debug("cart quantity bumped",
				zap.String("name", name), zap.Int("quantity", items[i].Quantity))
			return nil
		}
	}

	items = append(items, models.CartItem{
		Name:      name,
		UnitPrice: unitPrice,
		Image:     image,
		Quantity:  1,
	})
	e.save(items)
	e.logger.Debug("cart item added", zap.String("name", name))
	return nil
}

// IncrementQuantity adds one unit to the line at index.
func (e *Engine) IncrementQuantity(index int) error {
	items := e.load()
	if index < 0 || index >= len(items) {
		return fmt.Errorf("no cart item at index %d", index)
	}
	items[index].Quantity++
	e.save(items)
	return nil
}

// DecrementQuantity removes one unit from the line at index. A line at
// quantity 1 is removed entirely; a zero-quantity line is never stored.
func (e *Engine) DecrementQuantity(index int) error {
	items := e.load()
	if index < 0 || index >= len(items) {
		return fmt.Errorf("no cart item at index %d", index)
	}
	if items[index].Quantity > 1 {
		items[index].Quantity--
	} else {
		items = append(items[:index], items[index+1:]...)
	}
	e.save(items)
	return nil
}

// RemoveItem deletes the line at index regardless of quantity.
func (e *Engine) RemoveItem(index int) error {
	items := e.load()
	if index < 0 || index >= len(items) {
		return fmt.Errorf("no cart item at index %d", index)
	}
	items = append(items[:index], items[index+1:]...)
	e.save(items)
	return nil
}

// Clear empties the cart.
func (e *Engine) Clear() {
	e.save([]models.CartItem{})
}

// Items returns the cart lines in insertion order.
func (e *Engine) Items() []models.CartItem {
	return e.load()
}

// Total is the sum of unit price times quantity over all lines. No
// rounding happens here; formatting to two decimals is a display
// concern.
func (e *Engine) Total() float64 {
	var total float64
	for _, item := range e.load() {
		total += item.LineTotal()
	}
	return total
}

// Count is the total number of units in the cart, the number shown on
// the cart badge.
func (e *Engine) Count() int {
	var count int
	for _, item := range e.load() {
		count += item.Quantity
	}
	return count
}

// Checkout finalizes the cart. With a signed-in user it appends exactly
// one purchase record snapshotting the items and total at the moment of
// call; with no user nothing is recorded. The cart is cleared in either
// case. The returned purchase is nil when nothing was recorded.
func (e *Engine) Checkout(user *models.User) *models.Purchase {
	items := e.load()
	total := e.Total()

	var purchase *models.Purchase
	if user != nil {
		snapshot := make([]models.PurchaseItem, 0, len(items))
		for _, item := range items {
			snapshot = append(snapshot, models.PurchaseItem{
				Name:      item.Name,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
			})
		}
		purchase = e.recorder.Record(user.Username, snapshot, total)
	} else {
		e.logger.Warn("checkout without a signed-in user, purchase not recorded",
			zap.Int("items", len(items)), zap.Float64("total", total))
	}

	e.Clear()
	return purchase
}
