package sizing

import "errors"

// ErrInvalidMeasurements is returned when height or weight is not positive.
var ErrInvalidMeasurements = errors.New("height and weight must be positive")

// Recommendation maps a shopper's build to a garment size.
type Recommendation struct {
	Size string  `json:"size"`
	BMI  float64 `json:"bmi"`
}

// bmiChart is ordered by upper bound; the first band the BMI falls under
// wins. The chart is deliberately coarse — it is a hint shown next to the
// size picker, not a fit guarantee.
var bmiChart = []struct {
	upper float64
	size  string
}{
	{18.5, "S"},
	{25, "M"},
	{30, "L"},
	{35, "XL"},
}

// Recommend computes BMI from height in centimetres and weight in kilograms
// and maps it through the chart. Builds above the last band get XXL.
func Recommend(heightCm, weightKg float64) (Recommendation, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return Recommendation{}, ErrInvalidMeasurements
	}

	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	for _, band := range bmiChart {
		if bmi < band.upper {
			return Recommendation{Size: band.size, BMI: bmi}, nil
		}
	}
	return Recommendation{Size: "XXL", BMI: bmi}, nil
}
