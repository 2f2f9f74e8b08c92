package models

// PurchaseItem is the immutable snapshot of a cart line at checkout.
// The image reference is not carried into history.
type PurchaseItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Purchase is one completed checkout, appended to the purchase log and
// never modified afterwards. Date and Time are split ISO fields
// ("2006-01-02" and "15:04:05") so the history view can group by day.
type Purchase struct {
	ID       string         `json:"id"`
	Username string         `json:"username"`
	Date     string         `json:"date"`
	Time     string         `json:"time"`
	Total    float64        `json:"total"`
	Items    []PurchaseItem `json:"items"`
}
