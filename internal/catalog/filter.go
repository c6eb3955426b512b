package catalog

import "planfit/internal/models"

// FilterMeals applies the constraint predicates to the given meals in order,
// returning at most limit survivors in their original order. No ranking is
// applied; catalog order is the selection order.
func FilterMeals(meals []models.Meal, c models.Constraints, limit int) []models.Meal {
	var out []models.Meal
	for _, m := range meals {
		if len(out) >= limit {
			break
		}
		if m.PrepTimeMin > c.TimePerMealMin {
			continue
		}
		if !hasAllTags(m.DietaryTags, c.DietaryRestrictions) {
			continue
		}
		if !equipmentSatisfied(m.Equipment, c) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// FilterWorkouts applies the time and equipment predicates to the given
// workouts, returning at most limit survivors in their original order.
func FilterWorkouts(workouts []models.Workout, c models.Constraints, limit int) []models.Workout {
	var out []models.Workout
	for _, w := range workouts {
		if len(out) >= limit {
			break
		}
		if w.DurationMin > c.TimePerWorkoutMin {
			continue
		}
		if !equipmentSatisfied(w.Equipment, c) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// hasAllTags reports whether tags contains every entry of required (AND
// semantics). An empty required set always passes.
func hasAllTags(tags, required []string) bool {
	for _, r := range required {
		found := false
		for _, t := range tags {
			if t == r {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// equipmentSatisfied applies the equipment predicate: the no-equipment
// sentinel admits only items needing nothing, an empty constraint set admits
// everything, and otherwise the item's requirements must be a subset of what
// the user has.
func equipmentSatisfied(required []string, c models.Constraints) bool {
	if c.WantsNoEquipment() {
		return len(required) == 0
	}
	if len(c.Equipment) == 0 {
		return true
	}
	for _, r := range required {
		found := false
		for _, e := range c.Equipment {
			if e == r {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
