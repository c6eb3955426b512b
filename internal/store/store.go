// Package store owns the live plan and all derived engine state. Every
// mutation goes through a Store operation; presentation only reads.
package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"planfit/internal/catalog"
	"planfit/internal/events"
	"planfit/internal/metrics"
	"planfit/internal/models"
	"planfit/internal/nutrition"
	"planfit/internal/planner"
	"planfit/internal/registry"
)

// Store is the plan state machine plus engagement counters, weight history
// and derived nutrition history. One logical writer; the mutex covers the
// HTTP readers.
type Store struct {
	mu sync.RWMutex

	catalog   *catalog.Catalog
	registry  *registry.Registry
	generator *planner.Generator
	collector *metrics.Collector
	hub       *events.Hub

	constraints models.Constraints
	plan        []models.PlanItem
	engagement  models.EngagementMetrics
	weights     []models.WeightEntry
	nutrition   []models.NutritionEntry

	guest  bool
	online bool

	now func() time.Time
}

// NewStore wires a store over the catalog and registry. Collector and hub
// may be nil when telemetry or notifications are not wanted.
func NewStore(cat *catalog.Catalog, reg *registry.Registry, collector *metrics.Collector, hub *events.Hub) *Store {
	cat.SetCustomSource(reg)
	return &Store{
		catalog:     cat,
		registry:    reg,
		generator:   planner.NewGenerator(cat),
		collector:   collector,
		hub:         hub,
		engagement:  models.NewEngagementMetrics(),
		constraints: models.DefaultConstraints(),
		guest:       true,
		online:      true,
		now:         time.Now,
	}
}

// SetConstraints replaces the current user constraints.
func (s *Store) SetConstraints(c models.Constraints) {
	s.mu.Lock()
	s.constraints = c
	s.mu.Unlock()
}

// Constraints returns the current user constraints.
func (s *Store) Constraints() models.Constraints {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.constraints
}

// GeneratePlan replaces the whole plan from the current constraints. Old
// plan-item ids become invalid; a thin catalog yields a smaller plan.
func (s *Store) GeneratePlan(c models.Constraints) []models.PlanItem {
	s.mu.Lock()
	s.plan = s.generator.Generate(c)
	s.engagement.PlanAccepted = true
	out := s.planCopy()
	s.mu.Unlock()

	if s.collector != nil {
		s.collector.RecordPlanGenerated()
	}
	s.publish(events.Event{Type: events.TypePlanGenerated, Title: "Plan generated", Detail: "Your day plan is ready."})
	return out
}

// Swap replaces the kind and refId of the matching plan item, leaving id and
// completed untouched. An unknown id is a silent no-op; the swap counter
// counts the attempt either way. The replacement reference is not validated
// against the catalog.
func (s *Store) Swap(planItemID string, repl models.Replacement) {
	s.mu.Lock()
	for i := range s.plan {
		if s.plan[i].ID == planItemID {
			s.plan[i].Kind = repl.Kind
			s.plan[i].RefID = repl.RefID
			break
		}
	}
	s.engagement.Taps[models.TapSwap]++
	s.mu.Unlock()

	if s.collector != nil {
		s.collector.RecordTap(string(models.TapSwap))
	}
	s.publish(events.Event{Type: events.TypeItemSwapped, Title: "Item swapped", Detail: "Updated your plan."})
}

// ToggleComplete flips the completed flag of the matching plan item and
// rebuilds today's nutrition entry from scratch. An unknown id leaves the
// plan unchanged but still counts the tap.
func (s *Store) ToggleComplete(planItemID string) {
	today := s.today()

	s.mu.Lock()
	for i := range s.plan {
		if s.plan[i].ID == planItemID {
			s.plan[i].Completed = !s.plan[i].Completed
			break
		}
	}
	s.engagement.Taps[models.TapComplete]++
	entry := nutrition.Recompute(s.plan, s.catalog, today)
	s.nutrition = nutrition.Upsert(s.nutrition, entry)
	if len(s.plan) > 0 && s.allComplete() {
		s.engagement.StreakCount++
	}
	s.mu.Unlock()

	if s.collector != nil {
		s.collector.RecordTap(string(models.TapComplete))
	}
	s.publish(events.Event{Type: events.TypeItemCompleted, Title: "Completed", Detail: "Updated status."})
}

// RecordTap counts one engagement tap without touching plan state.
func (s *Store) RecordTap(kind models.TapKind) {
	s.mu.Lock()
	s.engagement.Taps[kind]++
	s.mu.Unlock()

	if s.collector != nil {
		s.collector.RecordTap(string(kind))
	}
}

// Start records a start tap unless the session is a guest, in which case
// nothing is counted and false is returned so the caller can upsell.
func (s *Store) Start() bool {
	s.mu.RLock()
	guest := s.guest
	s.mu.RUnlock()
	if guest {
		return false
	}
	s.RecordTap(models.TapStart)
	return true
}

// AddWeightEntry logs today's body weight, replacing any earlier entry for
// the same date. History stays sorted ascending by date.
func (s *Store) AddWeightEntry(weightKg float64) {
	today := s.today()

	s.mu.Lock()
	kept := s.weights[:0]
	for _, e := range s.weights {
		if e.Date != today {
			kept = append(kept, e)
		}
	}
	s.weights = append(kept, models.WeightEntry{Date: today, WeightKg: weightKg})
	sort.Slice(s.weights, func(i, j int) bool { return s.weights[i].Date < s.weights[j].Date })
	s.mu.Unlock()

	if s.collector != nil {
		s.collector.RecordWeightEntry()
	}
	s.publish(events.Event{
		Type:   events.TypeWeightLogged,
		Title:  "Weight logged",
		Detail: fmt.Sprintf("%.1f kg recorded for today.", weightKg),
	})
}

// RegisterMeal mints a custom meal through the registry and returns its id,
// ready to be swapped into the plan.
func (s *Store) RegisterMeal(m models.Meal, persist bool) string {
	id := s.registry.RegisterMeal(m, persist)
	if s.collector != nil {
		s.collector.RecordItemRegistered(string(models.KindMeal), persist)
	}
	s.publish(events.Event{Type: events.TypeItemRegistered, Title: "Recipe added", Detail: m.Name})
	return id
}

// RegisterWorkout mints a custom workout through the registry and returns
// its id.
func (s *Store) RegisterWorkout(w models.Workout, persist bool) string {
	id := s.registry.RegisterWorkout(w, persist)
	if s.collector != nil {
		s.collector.RecordItemRegistered(string(models.KindWorkout), persist)
	}
	s.publish(events.Event{Type: events.TypeItemRegistered, Title: "Exercise added", Detail: w.Name})
	return id
}

// Plan returns a copy of the current plan.
func (s *Store) Plan() []models.PlanItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.planCopy()
}

// Metrics returns a copy of the engagement counters.
func (s *Store) Metrics() models.EngagementMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engagement.Clone()
}

// WeightHistory returns a copy of the weight history, ascending by date.
func (s *Store) WeightHistory() []models.WeightEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.WeightEntry, len(s.weights))
	copy(out, s.weights)
	return out
}

// NutritionHistory returns a copy of the nutrition history, ascending by
// date.
func (s *Store) NutritionHistory() []models.NutritionEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.NutritionEntry, len(s.nutrition))
	copy(out, s.nutrition)
	return out
}

// Catalog exposes the effective catalog.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// SetGuest flips the guest flag.
func (s *Store) SetGuest(v bool) {
	s.mu.Lock()
	s.guest = v
	s.mu.Unlock()
}

// Guest reports the guest flag.
func (s *Store) Guest() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.guest
}

// SetOnline records a connectivity change. Presentation-only state; the
// engine never reads it.
func (s *Store) SetOnline(v bool) {
	s.mu.Lock()
	s.online = v
	s.mu.Unlock()
}

// Online reports the connectivity flag.
func (s *Store) Online() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.online
}

func (s *Store) planCopy() []models.PlanItem {
	out := make([]models.PlanItem, len(s.plan))
	copy(out, s.plan)
	return out
}

func (s *Store) allComplete() bool {
	for _, p := range s.plan {
		if !p.Completed {
			return false
		}
	}
	return true
}

func (s *Store) today() string {
	return s.now().Format(models.DateLayout)
}

func (s *Store) publish(e events.Event) {
	if s.hub != nil {
		s.hub.Publish(e)
	}
}
