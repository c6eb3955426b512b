package models

// NoEquipment is the sentinel equipment tag meaning "bodyweight / nothing on hand".
// An item qualifies under it only when its required-equipment set is empty.
const NoEquipment = "no-equipment"

// Plan size bounds for meals per day
const (
	MinMealsPerDay = 1
	MaxMealsPerDay = 6
)

// Constraints carries the user's onboarding answers that drive catalog filtering.
type Constraints struct {
	HeightCm            float64  `json:"heightCm,omitempty" yaml:"heightCm"`
	WeightKg            float64  `json:"weightKg,omitempty" yaml:"weightKg"`
	GoalWeightKg        float64  `json:"goalWeightKg,omitempty" yaml:"goalWeightKg"`
	DietaryRestrictions []string `json:"dietaryRestrictions" yaml:"dietaryRestrictions"`
	Equipment           []string `json:"equipment" yaml:"equipment"`
	MealsPerDay         int      `json:"mealsPerDay" yaml:"mealsPerDay"`
	TimePerMealMin      int      `json:"timePerMealMin" yaml:"timePerMealMin"`
	TimePerWorkoutMin   int      `json:"timePerWorkoutMin" yaml:"timePerWorkoutMin"`
}

// DefaultConstraints mirrors the onboarding defaults.
func DefaultConstraints() Constraints {
	return Constraints{
		DietaryRestrictions: []string{},
		Equipment:           []string{},
		MealsPerDay:         3,
		TimePerMealMin:      20,
		TimePerWorkoutMin:   20,
	}
}

// ClampedMeals returns MealsPerDay bounded to [MinMealsPerDay, MaxMealsPerDay].
func (c Constraints) ClampedMeals() int {
	n := c.MealsPerDay
	if n < MinMealsPerDay {
		return MinMealsPerDay
	}
	if n > MaxMealsPerDay {
		return MaxMealsPerDay
	}
	return n
}

// WantsNoEquipment reports whether the sentinel tag is present.
func (c Constraints) WantsNoEquipment() bool {
	for _, e := range c.Equipment {
		if e == NoEquipment {
			return true
		}
	}
	return false
}
