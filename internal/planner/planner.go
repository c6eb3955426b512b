package planner

import (
	"fmt"

	"planfit/internal/catalog"
	"planfit/internal/models"
)

// workoutFetchLimit bounds the workout candidate pool per generation.
const workoutFetchLimit = 6

// Generator builds a fresh day plan from the effective catalog.
type Generator struct {
	catalog *catalog.Catalog
}

// NewGenerator creates a plan generator over the given catalog.
func NewGenerator(cat *catalog.Catalog) *Generator {
	return &Generator{catalog: cat}
}

// Generate produces a new plan for the given constraints: the clamped number
// of meals plus at most one workout. Candidates are over-fetched at twice the
// meal count and the first mealCount survivors are taken, so selection is
// deterministic given catalog order. A thin catalog yields a smaller plan,
// never an error.
func (g *Generator) Generate(c models.Constraints) []models.PlanItem {
	mealCount := c.ClampedMeals()

	meals := catalog.FilterMeals(g.catalog.Meals(), c, mealCount*2)
	if len(meals) > mealCount {
		meals = meals[:mealCount]
	}

	workouts := catalog.FilterWorkouts(g.catalog.Workouts(), c, workoutFetchLimit)
	if len(workouts) > 1 {
		workouts = workouts[:1]
	}

	plan := make([]models.PlanItem, 0, len(meals)+len(workouts))
	for i, m := range meals {
		plan = append(plan, models.PlanItem{
			ID:    fmt.Sprintf("meal-%d", i),
			Kind:  models.KindMeal,
			RefID: m.ID,
		})
	}
	for i, w := range workouts {
		plan = append(plan, models.PlanItem{
			ID:    fmt.Sprintf("workout-%d", i),
			Kind:  models.KindWorkout,
			RefID: w.ID,
		})
	}
	return plan
}
