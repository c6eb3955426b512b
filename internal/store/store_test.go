package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"planfit/internal/catalog"
	"planfit/internal/models"
	"planfit/internal/persistence"
	"planfit/internal/registry"
)

func newTestStore() *Store {
	s := NewStore(catalog.Default(), registry.NewRegistry(persistence.NewMemoryStore()), nil, nil)
	s.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestGeneratePlan_SetsPlanAccepted(t *testing.T) {
	s := newTestStore()
	assert.False(t, s.Metrics().PlanAccepted)

	plan := s.GeneratePlan(models.DefaultConstraints())

	assert.NotEmpty(t, plan)
	assert.True(t, s.Metrics().PlanAccepted)
}

func TestGeneratePlan_ReplacesWholePlan(t *testing.T) {
	s := newTestStore()
	s.GeneratePlan(models.DefaultConstraints())
	s.ToggleComplete("meal-0")

	s.GeneratePlan(models.DefaultConstraints())

	for _, p := range s.Plan() {
		assert.False(t, p.Completed, "a regenerated plan starts fresh")
	}
}

func TestSwap_ReplacesOnlyKindAndRef(t *testing.T) {
	s := newTestStore()
	s.GeneratePlan(models.DefaultConstraints())
	s.ToggleComplete("meal-0")

	before := s.Plan()
	s.Swap("meal-0", models.Replacement{Kind: models.KindMeal, RefID: "tofu-bowl-1"})
	after := s.Plan()

	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, "tofu-bowl-1", after[0].RefID)
	assert.True(t, after[0].Completed, "swap leaves the completed flag alone")

	for i := 1; i < len(before); i++ {
		assert.Equal(t, before[i], after[i], "other items untouched")
	}
}

func TestSwap_UnknownIDIsNoOp(t *testing.T) {
	s := newTestStore()
	s.GeneratePlan(models.DefaultConstraints())
	before := s.Plan()

	s.Swap("no-such-item", models.Replacement{Kind: models.KindMeal, RefID: "oats-1"})

	assert.Equal(t, before, s.Plan())
	assert.Equal(t, 1, s.Metrics().Taps[models.TapSwap], "the attempt still counts")
}

func TestSwap_UnvalidatedReferenceIsAccepted(t *testing.T) {
	s := newTestStore()
	s.GeneratePlan(models.DefaultConstraints())

	s.Swap("meal-0", models.Replacement{Kind: models.KindMeal, RefID: "ghost-recipe"})

	assert.Equal(t, "ghost-recipe", s.Plan()[0].RefID)
	// The dangling reference only surfaces as an absent lookup downstream.
	_, ok := s.Catalog().LookupMeal("ghost-recipe")
	assert.False(t, ok)
}

func TestToggleComplete_FlipsAndRecomputesNutrition(t *testing.T) {
	s := newTestStore()
	s.GeneratePlan(models.DefaultConstraints())

	s.ToggleComplete("meal-0") // oats-1: 380 kcal, 28 g

	plan := s.Plan()
	assert.True(t, plan[0].Completed)

	history := s.NutritionHistory()
	assert.Len(t, history, 1)
	assert.Equal(t, "2026-08-31", history[0].Date)
	assert.Equal(t, 380, history[0].Kcal)
	assert.Equal(t, 28, history[0].ProteinG)
	assert.Equal(t, 380, history[0].NetKcal)
}

func TestToggleComplete_PairedTogglesConverge(t *testing.T) {
	s := newTestStore()
	s.GeneratePlan(models.DefaultConstraints())
	s.ToggleComplete("meal-1")
	baseline := s.NutritionHistory()

	s.ToggleComplete("meal-0")
	s.ToggleComplete("meal-0")

	assert.False(t, s.Plan()[0].Completed)
	assert.Equal(t, baseline, s.NutritionHistory())
}

func TestToggleComplete_WorkoutCountsBurn(t *testing.T) {
	s := newTestStore()
	s.GeneratePlan(models.DefaultConstraints())

	s.ToggleComplete("workout-0") // hit-10: 110 kcal burn

	history := s.NutritionHistory()
	assert.Len(t, history, 1)
	assert.Equal(t, 110, history[0].BurnKcal)
	assert.Equal(t, -110, history[0].NetKcal)
}

func TestToggleComplete_UnknownIDStillCountsTap(t *testing.T) {
	s := newTestStore()
	s.GeneratePlan(models.DefaultConstraints())
	before := s.Plan()

	s.ToggleComplete("no-such-item")

	assert.Equal(t, before, s.Plan())
	assert.Equal(t, 1, s.Metrics().Taps[models.TapComplete])
}

func TestStreak_IncrementsWhenPlanFullyComplete(t *testing.T) {
	s := newTestStore()
	s.GeneratePlan(models.DefaultConstraints())

	for _, p := range s.Plan() {
		s.ToggleComplete(p.ID)
	}

	assert.Equal(t, 1, s.Metrics().StreakCount)
}

func TestRecordTap_IndependentCounters(t *testing.T) {
	s := newTestStore()
	s.RecordTap(models.TapStart)
	s.RecordTap(models.TapStart)
	s.RecordTap(models.TapSwap)

	m := s.Metrics()
	assert.Equal(t, 2, m.Taps[models.TapStart])
	assert.Equal(t, 1, m.Taps[models.TapSwap])
	assert.Equal(t, 0, m.Taps[models.TapComplete])
}

func TestStart_GuestGating(t *testing.T) {
	s := newTestStore()

	assert.False(t, s.Start(), "guests get the upsell, no tap")
	assert.Equal(t, 0, s.Metrics().Taps[models.TapStart])

	s.SetGuest(false)
	assert.True(t, s.Start())
	assert.Equal(t, 1, s.Metrics().Taps[models.TapStart])
}

func TestAddWeightEntry_SameDateReplaces(t *testing.T) {
	s := newTestStore()

	s.AddWeightEntry(72.0)
	s.AddWeightEntry(71.4)

	history := s.WeightHistory()
	assert.Len(t, history, 1)
	assert.Equal(t, 71.4, history[0].WeightKg)
}

func TestAddWeightEntry_SortedAscending(t *testing.T) {
	s := newTestStore()

	day := 29
	s.now = func() time.Time { return time.Date(2026, 8, day, 12, 0, 0, 0, time.UTC) }
	s.AddWeightEntry(72.0)
	day = 31
	s.AddWeightEntry(71.0)
	day = 30
	s.AddWeightEntry(71.5)

	history := s.WeightHistory()
	assert.Len(t, history, 3)
	assert.Equal(t, "2026-08-29", history[0].Date)
	assert.Equal(t, "2026-08-30", history[1].Date)
	assert.Equal(t, "2026-08-31", history[2].Date)
}

func TestRegisterMeal_AvailableForSwap(t *testing.T) {
	s := newTestStore()
	s.GeneratePlan(models.DefaultConstraints())

	id := s.RegisterMeal(models.Meal{Name: "Leftover Stir-fry", Kcal: 450, ProteinG: 26}, false)
	s.Swap("meal-0", models.Replacement{Kind: models.KindMeal, RefID: id})

	m, ok := s.Catalog().LookupMeal(id)
	assert.True(t, ok)
	assert.Equal(t, "Leftover Stir-fry", m.Name)

	// The swapped-in custom meal feeds the nutrition totals.
	s.ToggleComplete("meal-0")
	history := s.NutritionHistory()
	assert.Equal(t, 450, history[0].Kcal)
}

func TestOnlineFlag(t *testing.T) {
	s := newTestStore()
	assert.True(t, s.Online())
	s.SetOnline(false)
	assert.False(t, s.Online())
}
