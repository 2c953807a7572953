package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteCustomization(t *testing.T) {
	tests := []struct {
		name      string
		input     QuoteInput
		want      Quote
		wantError string
	}{
		{
			name: "fallback surcharges, own artwork",
			input: QuoteInput{
				BasePrice: 100,
				Location:  LocationFront,
				PrintSize: SizeSmall,
			},
			want: Quote{BasePrice: 100, LocationSurcharge: 50, SizeSurcharge: 0, Total: 150},
		},
		{
			name: "fallback surcharges, both sides large",
			input: QuoteInput{
				BasePrice: 100,
				Location:  LocationBoth,
				PrintSize: SizeLarge,
			},
			want: Quote{BasePrice: 100, LocationSurcharge: 80, SizeSurcharge: 60, Total: 240},
		},
		{
			name: "pre-made design fee added",
			input: QuoteInput{
				BasePrice:   100,
				DesignPrice: 25,
				Location:    LocationBack,
				PrintSize:   SizeMedium,
			},
			want: Quote{BasePrice: 100, DesignPrice: 25, LocationSurcharge: 50, SizeSurcharge: 30, Total: 205},
		},
		{
			name: "product overrides win over fallbacks",
			input: QuoteInput{
				BasePrice:         100,
				Location:          LocationFront,
				PrintSize:         SizeLarge,
				LocationOverrides: map[string]float64{"front": 10},
				SizeOverrides:     map[string]float64{"large": 15},
			},
			want: Quote{BasePrice: 100, LocationSurcharge: 10, SizeSurcharge: 15, Total: 125},
		},
		{
			name: "partial overrides fall back per option",
			input: QuoteInput{
				BasePrice:         200,
				Location:          LocationBoth,
				PrintSize:         SizeSmall,
				LocationOverrides: map[string]float64{"front": 10},
			},
			want: Quote{BasePrice: 200, LocationSurcharge: 80, SizeSurcharge: 0, Total: 280},
		},
		{
			name: "zero override beats non-zero fallback",
			input: QuoteInput{
				BasePrice:         100,
				Location:          LocationBack,
				PrintSize:         SizeMedium,
				LocationOverrides: map[string]float64{"back": 0},
			},
			want: Quote{BasePrice: 100, LocationSurcharge: 0, SizeSurcharge: 30, Total: 130},
		},
		{
			name: "unknown location rejected",
			input: QuoteInput{
				BasePrice: 100,
				Location:  PrintLocation("sleeve"),
				PrintSize: SizeSmall,
			},
			wantError: `unknown print location "sleeve"`,
		},
		{
			name: "unknown print size rejected",
			input: QuoteInput{
				BasePrice: 100,
				Location:  LocationFront,
				PrintSize: PrintSize("huge"),
			},
			wantError: `unknown print size "huge"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QuoteCustomization(tt.input)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// A quote never undercuts the base price while surcharges are
			// non-negative.
			assert.GreaterOrEqual(t, got.Total, got.BasePrice)
		})
	}
}
