package cart

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	items := []LineItem{
		{
			ID:        uuid.New(),
			ProductID: "P1",
			Name:      "Classic Tee",
			Image:     "https://cdn.example.com/tee.png",
			UnitPrice: 19.99,
			Quantity:  2,
			StockHint: 14,
			Size:      "M",
			Color:     "Black",
		},
		{
			ID:            uuid.New(),
			ProductID:     "P2",
			Name:          "Custom Hoodie",
			UnitPrice:     150,
			Quantity:      1,
			IsCustomOrder: true,
			Customization: json.RawMessage(`{"location":"back","print_size":"large","notes":"birthday gift"}`),
		},
	}

	payload, err := encodeSnapshot(items)
	require.NoError(t, err)

	decoded, err := decodeSnapshot(payload)
	require.NoError(t, err)
	assert.Equal(t, items, decoded)
}

func TestSnapshotUsesHistoricalFieldNames(t *testing.T) {
	payload, err := encodeSnapshot([]LineItem{{
		ID:        uuid.New(),
		ProductID: "P1",
		Name:      "Classic Tee",
		UnitPrice: 19.99,
		Quantity:  2,
		StockHint: 14,
	}})
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &records))
	require.Len(t, records, 1)

	assert.Equal(t, "P1", records[0]["_id"])
	assert.Equal(t, float64(19.99), records[0]["price"])
	assert.Equal(t, float64(2), records[0]["qty"])
	assert.Equal(t, float64(14), records[0]["stock"])
}

func TestDecodeSnapshotLegacyRecordsWithoutSlotIDs(t *testing.T) {
	payload := []byte(`[{"_id":"P1","name":"Classic Tee","price":19.99,"qty":2,"stock":14,"size":"M","color":"Black"}]`)

	items, err := decodeSnapshot(payload)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.NotEqual(t, uuid.Nil, items[0].ID)
	assert.Equal(t, "P1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestDecodeSnapshotRejectsCorruptPayload(t *testing.T) {
	_, err := decodeSnapshot([]byte(`{"not":"a list"`))
	require.Error(t, err)
}
