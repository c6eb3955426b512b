package models

// ItemKind discriminates the two catalog item variants.
type ItemKind string

const (
	KindMeal    ItemKind = "meal"
	KindWorkout ItemKind = "workout"
)

// Intensity levels for workouts
const (
	IntensityLow    = "low"
	IntensityMedium = "medium"
	IntensityHigh   = "high"
)

// Space requirements for workouts
const (
	SpaceTinyRoom = "tiny-room"
	SpaceNormal   = "normal"
)

// Meal represents a recipe in the catalog
type Meal struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Kcal          int      `json:"kcal" yaml:"kcal"`
	ProteinG      int      `json:"protein" yaml:"protein"`
	PrepTimeMin   int      `json:"prepTimeMin" yaml:"prepTimeMin"`
	Equipment     []string `json:"equipmentRequired" yaml:"equipmentRequired"`
	DietaryTags   []string `json:"dietaryTags" yaml:"dietaryTags"`
	CostPerServe  float64  `json:"costPerServing" yaml:"costPerServing"`
	Category      string   `json:"category" yaml:"category"`
	Ingredients   []string `json:"ingredients" yaml:"ingredients"`
	Steps         []string `json:"steps" yaml:"steps"`
	Vitamins      []string `json:"vitamins" yaml:"vitamins"`
	AllergyTags   []string `json:"allergyTags" yaml:"allergyTags"`
}

// Workout represents an exercise in the catalog
type Workout struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	DurationMin int      `json:"durationMin" yaml:"durationMin"`
	Intensity   string   `json:"intensity" yaml:"intensity"`
	Equipment   []string `json:"equipment" yaml:"equipment"`
	BurnKcal    int      `json:"burnKcal" yaml:"burnKcal"`
	BodyFocus   string   `json:"bodyFocus" yaml:"bodyFocus"`
	Space       string   `json:"space" yaml:"space"`
	Steps       []string `json:"steps" yaml:"steps"`
	Cues        []string `json:"cues" yaml:"cues"`
}

// ItemID returns the meal's unique catalog id.
func (m Meal) ItemID() string { return m.ID }

// Kind returns KindMeal.
func (m Meal) Kind() ItemKind { return KindMeal }

// ItemID returns the workout's unique catalog id.
func (w Workout) ItemID() string { return w.ID }

// Kind returns KindWorkout.
func (w Workout) Kind() ItemKind { return KindWorkout }

// CatalogItem is the tagged union over the Meal and Workout variants.
type CatalogItem interface {
	ItemID() string
	Kind() ItemKind
}
