// Package trend smooths history series for display.
package trend

import "planfit/internal/models"

// DefaultAlpha is the smoothing factor used by the progress views.
const DefaultAlpha = 0.3

// Fixed reference baselines for the extended calorie/protein trend views.
// These are display constants, not derived values.
const (
	BaselineKcal     = 2000.0
	BaselineProteinG = 100.0
)

// Smooth applies exponential smoothing: the first output equals the first
// input, then each output = alpha*input + (1-alpha)*previous output. An empty
// series yields an explicit empty result.
func Smooth(series []float64, alpha float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	out := make([]float64, len(series))
	out[0] = series[0]
	prev := series[0]
	for i := 1; i < len(series); i++ {
		v := alpha*series[i] + (1-alpha)*prev
		out[i] = v
		prev = v
	}
	return out
}

// SmoothWeights smooths a weight history into displayable points. The input
// is assumed already sorted ascending by date, which is how the store keeps
// it.
func SmoothWeights(entries []models.WeightEntry, alpha float64) []models.TrendPoint {
	if len(entries) == 0 {
		return nil
	}
	series := make([]float64, len(entries))
	for i, e := range entries {
		series[i] = e.WeightKg
	}
	smoothed := Smooth(series, alpha)
	out := make([]models.TrendPoint, len(entries))
	for i, e := range entries {
		out[i] = models.TrendPoint{Date: e.Date, Value: smoothed[i]}
	}
	return out
}

// SmoothNutrition smooths one nutrition dimension against its fixed baseline:
// each point is the smoothed value minus the baseline, so the display centers
// on zero. pick selects the dimension from each entry.
func SmoothNutrition(entries []models.NutritionEntry, alpha, baseline float64, pick func(models.NutritionEntry) float64) []models.TrendPoint {
	if len(entries) == 0 {
		return nil
	}
	series := make([]float64, len(entries))
	for i, e := range entries {
		series[i] = pick(e)
	}
	smoothed := Smooth(series, alpha)
	out := make([]models.TrendPoint, len(entries))
	for i, e := range entries {
		out[i] = models.TrendPoint{Date: e.Date, Value: smoothed[i] - baseline}
	}
	return out
}
