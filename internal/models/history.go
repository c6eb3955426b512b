package models

// DateLayout is the calendar-date key used by the weight and nutrition
// histories (one entry per date).
const DateLayout = "2006-01-02"

// WeightEntry is a logged body weight for a calendar date.
type WeightEntry struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weightKg"`
}

// NutritionEntry is the derived macro/calorie total for one calendar date,
// recomputed in full whenever completion state changes on that date.
type NutritionEntry struct {
	Date     string `json:"date"`
	Kcal     int    `json:"kcal"`
	ProteinG int    `json:"protein"`
	BurnKcal int    `json:"burn"`
	NetKcal  int    `json:"net"`
}

// TrendPoint is one point of a smoothed display series.
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
