// Package registry mints user-created catalog items and routes them to a
// durable, cross-session library or a transient, session-only pool.
package registry

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"planfit/internal/models"
	"planfit/internal/persistence"
)

// Registry owns the two custom-item pools per kind. The durable pools are
// written through the persistence port synchronously after every mutation;
// the transient pools die with the process.
type Registry struct {
	mu   sync.RWMutex
	port persistence.Port

	transientMeals    []models.Meal
	transientWorkouts []models.Workout
	durableMeals      []models.Meal
	durableWorkouts   []models.Workout

	now func() time.Time
}

// NewRegistry creates a registry over the given port and loads the durable
// pools. Absent or malformed persisted data degrades to empty pools.
func NewRegistry(port persistence.Port) *Registry {
	r := &Registry{port: port, now: time.Now}
	r.durableMeals = loadPool[models.Meal](port, persistence.KeyCustomMeals)
	r.durableWorkouts = loadPool[models.Workout](port, persistence.KeyCustomWorkouts)
	return r
}

// loadPool reads one library, treating every failure mode as an empty pool.
func loadPool[T any](port persistence.Port, key string) []T {
	payload, ok, err := port.Load(key)
	if err != nil {
		log.Printf("Failed to load library %q, starting empty: %v", key, err)
		return nil
	}
	if !ok {
		return nil
	}
	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		log.Printf("Malformed library %q, starting empty: %v", key, err)
		return nil
	}
	return items
}

// RegisterMeal adds a user-created meal and returns its freshly minted id.
// With persist=true the meal joins the durable pool and is written out
// immediately; otherwise it lives only for this session.
func (r *Registry) RegisterMeal(m models.Meal, persist bool) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.newID("custom-meal")
	if persist {
		r.durableMeals = append(r.durableMeals, m)
		r.savePool(persistence.KeyCustomMeals, r.durableMeals)
	} else {
		r.transientMeals = append(r.transientMeals, m)
	}
	return m.ID
}

// RegisterWorkout adds a user-created workout and returns its freshly minted
// id, routed the same way as RegisterMeal.
func (r *Registry) RegisterWorkout(w models.Workout, persist bool) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	w.ID = r.newID("custom-workout")
	if persist {
		r.durableWorkouts = append(r.durableWorkouts, w)
		r.savePool(persistence.KeyCustomWorkouts, r.durableWorkouts)
	} else {
		r.transientWorkouts = append(r.transientWorkouts, w)
	}
	return w.ID
}

// CustomMeals returns the session's custom meals, transient first then
// durable.
func (r *Registry) CustomMeals() []models.Meal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Meal, 0, len(r.transientMeals)+len(r.durableMeals))
	out = append(out, r.transientMeals...)
	out = append(out, r.durableMeals...)
	return out
}

// CustomWorkouts returns the session's custom workouts, transient first then
// durable.
func (r *Registry) CustomWorkouts() []models.Workout {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Workout, 0, len(r.transientWorkouts)+len(r.durableWorkouts))
	out = append(out, r.transientWorkouts...)
	out = append(out, r.durableWorkouts...)
	return out
}

// savePool writes one durable pool through the port. A write failure is
// logged and otherwise invisible to callers.
func (r *Registry) savePool(key string, pool interface{}) {
	payload, err := json.Marshal(pool)
	if err != nil {
		log.Printf("Failed to serialize library %q: %v", key, err)
		return
	}
	if err := r.port.Save(key, payload); err != nil {
		log.Printf("Failed to save library %q: %v", key, err)
	}
}

// newID mints a collision-resistant id: kind prefix, timestamp, short random
// suffix.
func (r *Registry) newID(prefix string) string {
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s-%d-%s", prefix, r.now().UnixNano(), suffix)
}
