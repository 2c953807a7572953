package cart

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// snapshotRecord is the persisted shape of a line item. The field names
// match the storefront's historical snapshot layout, which predates this
// service; no version tag is stored and schema evolution is not handled.
type snapshotRecord struct {
	SlotID        string          `json:"slot,omitempty"`
	ProductID     string          `json:"_id"`
	Name          string          `json:"name"`
	Image         string          `json:"image,omitempty"`
	Price         float64         `json:"price"`
	Qty           int             `json:"qty"`
	Stock         int             `json:"stock"`
	Size          string          `json:"size,omitempty"`
	Color         string          `json:"color,omitempty"`
	IsCustomOrder bool            `json:"isCustomOrder,omitempty"`
	Customization json.RawMessage `json:"customization,omitempty"`
}

func encodeSnapshot(items []LineItem) ([]byte, error) {
	records := make([]snapshotRecord, 0, len(items))
	for _, it := range items {
		records = append(records, snapshotRecord{
			SlotID:        it.ID.String(),
			ProductID:     it.ProductID,
			Name:          it.Name,
			Image:         it.Image,
			Price:         it.UnitPrice,
			Qty:           it.Quantity,
			Stock:         it.StockHint,
			Size:          it.Size,
			Color:         it.Color,
			IsCustomOrder: it.IsCustomOrder,
			Customization: it.Customization,
		})
	}
	return json.Marshal(records)
}

func decodeSnapshot(payload []byte) ([]LineItem, error) {
	var records []snapshotRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}

	items := make([]LineItem, 0, len(records))
	for _, rec := range records {
		// Snapshots written before slot IDs existed get a fresh one.
		id, err := uuid.Parse(rec.SlotID)
		if err != nil {
			id = uuid.New()
		}
		items = append(items, LineItem{
			ID:            id,
			ProductID:     rec.ProductID,
			Name:          rec.Name,
			Image:         rec.Image,
			UnitPrice:     rec.Price,
			Quantity:      rec.Qty,
			StockHint:     rec.Stock,
			Size:          rec.Size,
			Color:         rec.Color,
			IsCustomOrder: rec.IsCustomOrder,
			Customization: rec.Customization,
		})
	}
	return items, nil
}
