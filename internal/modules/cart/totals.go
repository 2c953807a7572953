package cart

// Totals are the derived aggregates over a cart's line items. They are
// recomputed from the full list after every mutation, never patched
// incrementally, so they cannot drift from the items they summarize.
type Totals struct {
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
}

func computeTotals(items []LineItem) Totals {
	var t Totals
	for _, it := range items {
		t.TotalItems += it.Quantity
		t.TotalPrice += it.UnitPrice * float64(it.Quantity)
	}
	return t
}
