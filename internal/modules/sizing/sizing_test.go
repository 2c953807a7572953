package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		wantSize string
	}{
		{"slim build", 180, 55, "S"},
		{"average build", 178, 74, "M"},
		{"just under medium bound", 170, 72, "M"},
		{"broad build", 175, 85, "L"},
		{"heavy build", 170, 95, "XL"},
		{"above the chart", 165, 110, "XXL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Recommend(tt.heightCm, tt.weightKg)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, rec.Size)
			assert.Greater(t, rec.BMI, 0.0)
		})
	}
}

func TestRecommendRejectsInvalidMeasurements(t *testing.T) {
	for _, tc := range [][2]float64{{0, 70}, {170, 0}, {-170, 70}, {170, -5}} {
		_, err := Recommend(tc[0], tc[1])
		require.ErrorIs(t, err, ErrInvalidMeasurements)
	}
}
