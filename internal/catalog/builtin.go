package catalog

import "planfit/internal/models"

// BuiltinMeals returns the shipped recipe catalog in its canonical order.
func BuiltinMeals() []models.Meal {
	return []models.Meal{
		{
			ID:           "oats-1",
			Name:         "5-min Protein Oats",
			Kcal:         380,
			ProteinG:     28,
			PrepTimeMin:  5,
			Equipment:    []string{},
			DietaryTags:  []string{"vegetarian"},
			CostPerServe: 1.5,
			Category:     "breakfast",
			Ingredients:  []string{"oats", "milk", "protein powder", "banana"},
			Steps:        []string{"Mix", "Microwave 2 min", "Top and eat"},
			Vitamins:     []string{"B1", "Iron"},
			AllergyTags:  []string{"gluten", "dairy"},
		},
		{
			ID:           "salad-1",
			Name:         "Chickpea Crunch Salad",
			Kcal:         420,
			ProteinG:     22,
			PrepTimeMin:  10,
			Equipment:    []string{},
			DietaryTags:  []string{"vegan", "gluten-free"},
			CostPerServe: 2.2,
			Category:     "lunch",
			Ingredients:  []string{"chickpeas", "greens", "tomato", "olive oil"},
			Steps:        []string{"Rinse", "Chop", "Toss"},
			Vitamins:     []string{"C", "K"},
			AllergyTags:  []string{},
		},
		{
			ID:           "wrap-1",
			Name:         "Air-Fryer Chicken Wrap",
			Kcal:         520,
			ProteinG:     38,
			PrepTimeMin:  15,
			Equipment:    []string{"air-fryer"},
			DietaryTags:  []string{},
			CostPerServe: 3.5,
			Category:     "dinner",
			Ingredients:  []string{"tortilla", "chicken", "yogurt", "lettuce"},
			Steps:        []string{"Air-fry chicken", "Assemble wrap"},
			Vitamins:     []string{"B6"},
			AllergyTags:  []string{"gluten", "dairy"},
		},
		{
			ID:           "pasta-veg-1",
			Name:         "8-min Veg Pasta",
			Kcal:         480,
			ProteinG:     20,
			PrepTimeMin:  12,
			Equipment:    []string{"oven"},
			DietaryTags:  []string{"vegetarian"},
			CostPerServe: 2.8,
			Category:     "dinner",
			Ingredients:  []string{"pasta", "veg mix", "sauce"},
			Steps:        []string{"Boil pasta", "Heat sauce", "Combine"},
			Vitamins:     []string{"A"},
			AllergyTags:  []string{"gluten"},
		},
		{
			ID:           "tofu-bowl-1",
			Name:         "Tofu Power Bowl",
			Kcal:         510,
			ProteinG:     32,
			PrepTimeMin:  18,
			Equipment:    []string{},
			DietaryTags:  []string{"vegan", "gluten-free"},
			CostPerServe: 3.0,
			Category:     "dinner",
			Ingredients:  []string{"tofu", "rice", "broccoli", "sauce"},
			Steps:        []string{"Sear tofu", "Steam broccoli", "Assemble"},
			Vitamins:     []string{"C", "E"},
			AllergyTags:  []string{"soy"},
		},
		{
			ID:           "eggs-quick-1",
			Name:         "Quick Egg Toast",
			Kcal:         350,
			ProteinG:     21,
			PrepTimeMin:  7,
			Equipment:    []string{},
			DietaryTags:  []string{"vegetarian"},
			CostPerServe: 1.7,
			Category:     "breakfast",
			Ingredients:  []string{"eggs", "bread", "spinach"},
			Steps:        []string{"Toast", "Scramble", "Stack"},
			Vitamins:     []string{"D"},
			AllergyTags:  []string{"gluten", "eggs"},
		},
		{
			ID:           "yogurt-bowl-1",
			Name:         "Yogurt Berry Bowl",
			Kcal:         290,
			ProteinG:     20,
			PrepTimeMin:  3,
			Equipment:    []string{},
			DietaryTags:  []string{"vegetarian", "gluten-free"},
			CostPerServe: 1.9,
			Category:     "snack",
			Ingredients:  []string{"yogurt", "berries", "seeds"},
			Steps:        []string{"Combine ingredients"},
			Vitamins:     []string{"C"},
			AllergyTags:  []string{"dairy"},
		},
		{
			ID:           "bean-wrap-1",
			Name:         "No-Cook Bean Wrap",
			Kcal:         430,
			ProteinG:     24,
			PrepTimeMin:  8,
			Equipment:    []string{},
			DietaryTags:  []string{"vegan"},
			CostPerServe: 2.0,
			Category:     "lunch",
			Ingredients:  []string{"tortilla", "beans", "salsa"},
			Steps:        []string{"Assemble and roll"},
			Vitamins:     []string{"B9"},
			AllergyTags:  []string{"gluten"},
		},
	}
}

// BuiltinWorkouts returns the shipped exercise catalog in its canonical order.
func BuiltinWorkouts() []models.Workout {
	return []models.Workout{
		{
			ID:          "hit-10",
			Name:        "10-min No-Equip HIIT",
			DurationMin: 10,
			Intensity:   models.IntensityHigh,
			Equipment:   []string{},
			BurnKcal:    110,
			BodyFocus:   "full body",
			Space:       models.SpaceTinyRoom,
			Steps:       []string{"Jumping jacks", "Squats", "Lunges"},
			Cues:        []string{"Soft landings", "Neutral spine"},
		},
		{
			ID:          "walk-20",
			Name:        "20-min Brisk Walk",
			DurationMin: 20,
			Intensity:   models.IntensityLow,
			Equipment:   []string{},
			BurnKcal:    90,
			BodyFocus:   "cardio",
			Space:       models.SpaceNormal,
			Steps:       []string{"Warm up", "Brisk pace", "Cool down"},
			Cues:        []string{"Relax shoulders"},
		},
		{
			ID:          "bands-15",
			Name:        "15-min Band Circuit",
			DurationMin: 15,
			Intensity:   models.IntensityMedium,
			Equipment:   []string{"bands"},
			BurnKcal:    120,
			BodyFocus:   "upper",
			Space:       models.SpaceTinyRoom,
			Steps:       []string{"Rows", "Press", "Curls"},
			Cues:        []string{"Control tempo"},
		},
		{
			ID:          "dumbbell-15",
			Name:        "DB Full Body",
			DurationMin: 15,
			Intensity:   models.IntensityMedium,
			Equipment:   []string{"dumbbells"},
			BurnKcal:    130,
			BodyFocus:   "full body",
			Space:       models.SpaceNormal,
			Steps:       []string{"Squat press", "Row", "RDL"},
			Cues:        []string{"Flat back"},
		},
		{
			ID:          "core-8",
			Name:        "8-min Core Quickie",
			DurationMin: 8,
			Intensity:   models.IntensityMedium,
			Equipment:   []string{},
			BurnKcal:    60,
			BodyFocus:   "core",
			Space:       models.SpaceTinyRoom,
			Steps:       []string{"Plank", "Dead bug", "Side plank"},
			Cues:        []string{"Brace core"},
		},
		{
			ID:          "mobility-12",
			Name:        "12-min Mobility Flow",
			DurationMin: 12,
			Intensity:   models.IntensityLow,
			Equipment:   []string{},
			BurnKcal:    50,
			BodyFocus:   "mobility",
			Space:       models.SpaceTinyRoom,
			Steps:       []string{"Cat-cow", "World's greatest", "T-spine"},
			Cues:        []string{"Smooth breathing"},
		},
	}
}
