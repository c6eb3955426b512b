package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"planfit/internal/models"
)

// CustomSource supplies user-created items layered on top of the built-ins.
// Enumeration order within the source is transient first, then durable.
type CustomSource interface {
	CustomMeals() []models.Meal
	CustomWorkouts() []models.Workout
}

// Catalog is the effective, ordered item collection: built-ins first, then
// whatever the custom source contributes. The built-in part is immutable.
type Catalog struct {
	meals    []models.Meal
	workouts []models.Workout
	custom   CustomSource
}

// New creates a catalog over the given built-in records.
func New(meals []models.Meal, workouts []models.Workout) *Catalog {
	return &Catalog{meals: meals, workouts: workouts}
}

// Default returns a catalog over the shipped sample records.
func Default() *Catalog {
	return New(BuiltinMeals(), BuiltinWorkouts())
}

// SetCustomSource attaches the user-created item source.
func (c *Catalog) SetCustomSource(src CustomSource) {
	c.custom = src
}

// Meals returns the effective meal list in enumeration order.
func (c *Catalog) Meals() []models.Meal {
	out := make([]models.Meal, 0, len(c.meals))
	out = append(out, c.meals...)
	if c.custom != nil {
		out = append(out, c.custom.CustomMeals()...)
	}
	return out
}

// Workouts returns the effective workout list in enumeration order.
func (c *Catalog) Workouts() []models.Workout {
	out := make([]models.Workout, 0, len(c.workouts))
	out = append(out, c.workouts...)
	if c.custom != nil {
		out = append(out, c.custom.CustomWorkouts()...)
	}
	return out
}

// LookupMeal finds a meal by id. A miss is a normal outcome, not an error.
func (c *Catalog) LookupMeal(id string) (models.Meal, bool) {
	for _, m := range c.Meals() {
		if m.ID == id {
			return m, true
		}
	}
	return models.Meal{}, false
}

// LookupWorkout finds a workout by id. A miss is a normal outcome, not an error.
func (c *Catalog) LookupWorkout(id string) (models.Workout, bool) {
	for _, w := range c.Workouts() {
		if w.ID == id {
			return w, true
		}
	}
	return models.Workout{}, false
}

// HasID reports whether any effective item carries the id, regardless of kind.
func (c *Catalog) HasID(id string) bool {
	if _, ok := c.LookupMeal(id); ok {
		return true
	}
	_, ok := c.LookupWorkout(id)
	return ok
}

// SearchMeals returns effective meals whose name contains the query,
// case-insensitively. An empty query matches everything.
func (c *Catalog) SearchMeals(query string) []models.Meal {
	q := strings.ToLower(query)
	var out []models.Meal
	for _, m := range c.Meals() {
		if strings.Contains(strings.ToLower(m.Name), q) {
			out = append(out, m)
		}
	}
	return out
}

// SearchWorkouts returns effective workouts whose name contains the query,
// case-insensitively. An empty query matches everything.
func (c *Catalog) SearchWorkouts(query string) []models.Workout {
	q := strings.ToLower(query)
	var out []models.Workout
	for _, w := range c.Workouts() {
		if strings.Contains(strings.ToLower(w.Name), q) {
			out = append(out, w)
		}
	}
	return out
}

// MealsInCalorieRange returns effective meals with minKcal <= kcal <= maxKcal.
func (c *Catalog) MealsInCalorieRange(minKcal, maxKcal int) []models.Meal {
	var out []models.Meal
	for _, m := range c.Meals() {
		if m.Kcal >= minKcal && m.Kcal <= maxKcal {
			out = append(out, m)
		}
	}
	return out
}

// File is the YAML document shape for an on-disk catalog.
type File struct {
	Meals    []models.Meal    `yaml:"meals"`
	Workouts []models.Workout `yaml:"workouts"`
}

// LoadFile reads a catalog from a YAML file. Order in the file is the
// catalog order.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return New(f.Meals, f.Workouts), nil
}
