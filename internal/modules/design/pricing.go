package design

import "fmt"

// Fallback surcharges, in the storefront currency, applied when a product
// carries no override for a given option.
var (
	defaultLocationSurcharges = map[PrintLocation]float64{
		LocationFront: 50,
		LocationBack:  50,
		LocationBoth:  80,
	}
	defaultSizeSurcharges = map[PrintSize]float64{
		SizeSmall:  0,
		SizeMedium: 30,
		SizeLarge:  60,
	}
)

// QuoteInput describes one customization to price. DesignPrice is zero when
// the shopper uploads their own artwork. The override maps come from the
// product being customized and may be nil or partial.
type QuoteInput struct {
	BasePrice         float64
	DesignPrice       float64
	Location          PrintLocation
	PrintSize         PrintSize
	LocationOverrides map[string]float64
	SizeOverrides     map[string]float64
}

// Quote is the priced customization with its per-component breakdown.
type Quote struct {
	BasePrice         float64 `json:"base_price"`
	DesignPrice       float64 `json:"design_price"`
	LocationSurcharge float64 `json:"location_surcharge"`
	SizeSurcharge     float64 `json:"size_surcharge"`
	Total             float64 `json:"total"`
}

// QuoteCustomization sums base price, design fee and the two print
// surcharges. Unknown locations or sizes are rejected rather than priced at
// zero.
func QuoteCustomization(in QuoteInput) (Quote, error) {
	locDefault, ok := defaultLocationSurcharges[in.Location]
	if !ok {
		return Quote{}, fmt.Errorf("unknown print location %q", in.Location)
	}
	sizeDefault, ok := defaultSizeSurcharges[in.PrintSize]
	if !ok {
		return Quote{}, fmt.Errorf("unknown print size %q", in.PrintSize)
	}

	locSurcharge := locDefault
	if v, ok := in.LocationOverrides[string(in.Location)]; ok {
		locSurcharge = v
	}
	sizeSurcharge := sizeDefault
	if v, ok := in.SizeOverrides[string(in.PrintSize)]; ok {
		sizeSurcharge = v
	}

	q := Quote{
		BasePrice:         in.BasePrice,
		DesignPrice:       in.DesignPrice,
		LocationSurcharge: locSurcharge,
		SizeSurcharge:     sizeSurcharge,
	}
	q.Total = q.BasePrice + q.DesignPrice + q.LocationSurcharge + q.SizeSurcharge
	return q, nil
}
