package cart

// ItemKey is the identity tuple deciding whether two add requests refer to
// the same cart slot.
type ItemKey struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// Key returns the item's identity tuple.
func (it LineItem) Key() ItemKey {
	return ItemKey{ProductID: it.ProductID, Size: it.Size, Color: it.Color}
}

// mergeTarget returns the index of the existing slot an incoming item should
// merge into, or -1 when the item opens a new slot. Custom orders never
// merge: two custom adds can differ in ways (uploaded artwork, notes) the
// identity tuple does not capture, so each one gets its own slot.
func mergeTarget(items []LineItem, incoming LineItem) int {
	if incoming.IsCustomOrder {
		return -1
	}
	for i, it := range items {
		if !it.IsCustomOrder && it.Key() == incoming.Key() {
			return i
		}
	}
	return -1
}
