package models

// CartItem is one line of the cart. Name is the unique key within the
// cart; Quantity is always >= 1 (a decrement past 1 removes the line
// instead of persisting a zero entry).
type CartItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// LineTotal is the item's contribution to the cart total.
func (ci CartItem) LineTotal() float64 {
	return ci.UnitPrice * float64(ci.Quantity)
}
