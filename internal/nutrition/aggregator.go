// Package nutrition derives per-date macro/calorie totals from completed
// plan items.
package nutrition

import (
	"sort"

	"planfit/internal/catalog"
	"planfit/internal/models"
)

// Recompute derives the full nutrition entry for date from the current plan.
// Only completed items count: meals contribute kcal and protein, workouts
// contribute burn. Items whose reference no longer resolves contribute
// nothing. The whole total is rebuilt every call, so repeated calls with the
// same plan state converge on the same entry.
func Recompute(plan []models.PlanItem, cat *catalog.Catalog, date string) models.NutritionEntry {
	e := models.NutritionEntry{Date: date}
	for _, p := range plan {
		if !p.Completed {
			continue
		}
		switch p.Kind {
		case models.KindMeal:
			if m, ok := cat.LookupMeal(p.RefID); ok {
				e.Kcal += m.Kcal
				e.ProteinG += m.ProteinG
			}
		case models.KindWorkout:
			if w, ok := cat.LookupWorkout(p.RefID); ok {
				e.BurnKcal += w.BurnKcal
			}
		}
	}
	e.NetKcal = e.Kcal - e.BurnKcal
	return e
}

// Upsert replaces any existing entry for the same date and keeps the history
// sorted ascending by date.
func Upsert(history []models.NutritionEntry, entry models.NutritionEntry) []models.NutritionEntry {
	out := make([]models.NutritionEntry, 0, len(history)+1)
	for _, h := range history {
		if h.Date != entry.Date {
			out = append(out, h)
		}
	}
	out = append(out, entry)
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
