package registry

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"planfit/internal/models"
	"planfit/internal/persistence"
)

func TestRegisterMeal_TransientVsDurable(t *testing.T) {
	port := persistence.NewMemoryStore()
	reg := NewRegistry(port)

	transientID := reg.RegisterMeal(models.Meal{Name: "Session Snack"}, false)
	durableID := reg.RegisterMeal(models.Meal{Name: "Family Curry"}, true)

	ids := make(map[string]bool)
	for _, m := range reg.CustomMeals() {
		ids[m.ID] = true
	}
	assert.True(t, ids[transientID])
	assert.True(t, ids[durableID])

	// A new registry over the same port simulates a session restart: the
	// durable item survives, the transient one is gone.
	restarted := NewRegistry(port)
	ids = make(map[string]bool)
	for _, m := range restarted.CustomMeals() {
		ids[m.ID] = true
	}
	assert.False(t, ids[transientID])
	assert.True(t, ids[durableID])
}

func TestRegisterWorkout_DurableSurvivesRestart(t *testing.T) {
	port := persistence.NewMemoryStore()
	reg := NewRegistry(port)

	id := reg.RegisterWorkout(models.Workout{Name: "Stair Sprints", DurationMin: 12}, true)

	restarted := NewRegistry(port)
	workouts := restarted.CustomWorkouts()
	assert.Len(t, workouts, 1)
	assert.Equal(t, id, workouts[0].ID)
	assert.Equal(t, "Stair Sprints", workouts[0].Name)
}

func TestEnumerationOrder_TransientBeforeDurable(t *testing.T) {
	reg := NewRegistry(persistence.NewMemoryStore())

	durable := reg.RegisterMeal(models.Meal{Name: "Durable"}, true)
	transient := reg.RegisterMeal(models.Meal{Name: "Transient"}, false)

	meals := reg.CustomMeals()
	assert.Len(t, meals, 2)
	assert.Equal(t, transient, meals[0].ID)
	assert.Equal(t, durable, meals[1].ID)
}

func TestMalformedLibraryDegradesToEmpty(t *testing.T) {
	port := persistence.NewMemoryStore()
	assert.NoError(t, port.Save(persistence.KeyCustomMeals, []byte("{not json")))

	reg := NewRegistry(port)
	assert.Empty(t, reg.CustomMeals())

	// The pool is usable again after the degraded load.
	reg.RegisterMeal(models.Meal{Name: "Fresh Start"}, true)
	assert.Len(t, NewRegistry(port).CustomMeals(), 1)
}

func TestNewID_Shape(t *testing.T) {
	reg := NewRegistry(persistence.NewMemoryStore())
	reg.now = func() time.Time { return time.Unix(0, 1700000000000000000) }

	id := reg.RegisterMeal(models.Meal{Name: "X"}, false)

	assert.True(t, strings.HasPrefix(id, "custom-meal-1700000000000000000-"))
	parts := strings.Split(id, "-")
	assert.Len(t, parts[len(parts)-1], 8, "short random suffix")
}

func TestNewID_Unique(t *testing.T) {
	reg := NewRegistry(persistence.NewMemoryStore())
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := reg.RegisterMeal(models.Meal{Name: "X"}, false)
		assert.False(t, seen[id], "id collision: %s", id)
		seen[id] = true
	}
}
