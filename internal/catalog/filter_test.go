package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"planfit/internal/models"
)

func constraints(mod func(*models.Constraints)) models.Constraints {
	c := models.DefaultConstraints()
	if mod != nil {
		mod(&c)
	}
	return c
}

func TestFilterMeals_TimeBound(t *testing.T) {
	meals := BuiltinMeals()
	c := constraints(func(c *models.Constraints) { c.TimePerMealMin = 8 })

	got := FilterMeals(meals, c, 20)

	for _, m := range got {
		assert.LessOrEqual(t, m.PrepTimeMin, 8)
	}
	// oats-1 (5), eggs-quick-1 (7), yogurt-bowl-1 (3), bean-wrap-1 (8)
	assert.Len(t, got, 4)
}

func TestFilterMeals_DietaryTagsAreANDed(t *testing.T) {
	meals := BuiltinMeals()
	c := constraints(func(c *models.Constraints) {
		c.DietaryRestrictions = []string{"vegetarian", "gluten-free"}
	})

	got := FilterMeals(meals, c, 20)

	// Only yogurt-bowl-1 carries both tags; vegan items without the
	// vegetarian tag must not slip through on a partial match.
	assert.Len(t, got, 1)
	assert.Equal(t, "yogurt-bowl-1", got[0].ID)
}

func TestFilterMeals_NoEquipmentSentinelIsAbsolute(t *testing.T) {
	meals := BuiltinMeals()
	c := constraints(func(c *models.Constraints) {
		c.Equipment = []string{models.NoEquipment}
	})

	got := FilterMeals(meals, c, 20)

	for _, m := range got {
		assert.Empty(t, m.Equipment)
	}
	// wrap-1 (air-fryer) and pasta-veg-1 (oven) are excluded outright even
	// though they pass the other predicates.
	for _, m := range got {
		assert.NotEqual(t, "wrap-1", m.ID)
		assert.NotEqual(t, "pasta-veg-1", m.ID)
	}
}

func TestFilterMeals_EquipmentSubset(t *testing.T) {
	meals := BuiltinMeals()
	c := constraints(func(c *models.Constraints) {
		c.Equipment = []string{"oven"}
	})

	got := FilterMeals(meals, c, 20)

	ids := make(map[string]bool)
	for _, m := range got {
		ids[m.ID] = true
	}
	assert.True(t, ids["pasta-veg-1"], "oven meal should qualify")
	assert.False(t, ids["wrap-1"], "air-fryer meal should not qualify with only an oven")
	assert.True(t, ids["oats-1"], "equipment-free meals always qualify")
}

func TestFilterMeals_EmptyEquipmentAdmitsAll(t *testing.T) {
	meals := BuiltinMeals()
	c := constraints(func(c *models.Constraints) { c.TimePerMealMin = 30 })

	got := FilterMeals(meals, c, 20)
	assert.Len(t, got, len(meals))
}

func TestFilterMeals_LimitPreservesCatalogOrder(t *testing.T) {
	meals := BuiltinMeals()
	c := constraints(nil)

	got := FilterMeals(meals, c, 3)

	assert.Len(t, got, 3)
	assert.Equal(t, "oats-1", got[0].ID)
	assert.Equal(t, "salad-1", got[1].ID)
	assert.Equal(t, "wrap-1", got[2].ID)
}

func TestFilterWorkouts(t *testing.T) {
	workouts := BuiltinWorkouts()

	t.Run("TimeBound", func(t *testing.T) {
		c := constraints(func(c *models.Constraints) { c.TimePerWorkoutMin = 10 })
		got := FilterWorkouts(workouts, c, 20)
		for _, w := range got {
			assert.LessOrEqual(t, w.DurationMin, 10)
		}
		assert.Len(t, got, 2) // hit-10, core-8
	})

	t.Run("NoEquipmentSentinel", func(t *testing.T) {
		c := constraints(func(c *models.Constraints) {
			c.TimePerWorkoutMin = 45
			c.Equipment = []string{models.NoEquipment}
		})
		got := FilterWorkouts(workouts, c, 20)
		for _, w := range got {
			assert.Empty(t, w.Equipment)
		}
	})

	t.Run("EquipmentSubset", func(t *testing.T) {
		c := constraints(func(c *models.Constraints) {
			c.TimePerWorkoutMin = 45
			c.Equipment = []string{"bands"}
		})
		got := FilterWorkouts(workouts, c, 20)
		ids := make(map[string]bool)
		for _, w := range got {
			ids[w.ID] = true
		}
		assert.True(t, ids["bands-15"])
		assert.False(t, ids["dumbbell-15"])
	})
}

func TestVegetarianScenario(t *testing.T) {
	// {vegetarian, no equipment prefs, 3 meals, 20 min each, 20 min workout}
	c := models.Constraints{
		DietaryRestrictions: []string{"vegetarian"},
		Equipment:           []string{},
		MealsPerDay:         3,
		TimePerMealMin:      20,
		TimePerWorkoutMin:   20,
	}

	meals := FilterMeals(BuiltinMeals(), c, 20)
	for _, m := range meals {
		assert.Contains(t, m.DietaryTags, "vegetarian")
		assert.LessOrEqual(t, m.PrepTimeMin, 20)
	}
	assert.GreaterOrEqual(t, len(meals), 3)

	workouts := FilterWorkouts(BuiltinWorkouts(), c, 6)
	assert.NotEmpty(t, workouts)
	for _, w := range workouts {
		assert.LessOrEqual(t, w.DurationMin, 20)
	}
}
