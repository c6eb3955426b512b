package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"planfit/internal/models"
	"planfit/internal/trend"
)

// Plan lifecycle handlers

func (s *Server) GetPlan(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plan": s.store.Plan()})
}

func (s *Server) GeneratePlan(c *gin.Context) {
	// An explicit body replaces the stored constraints first.
	if c.Request.ContentLength > 0 {
		var constraints models.Constraints
		if err := c.ShouldBindJSON(&constraints); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.store.SetConstraints(constraints)
	}

	plan := s.store.GeneratePlan(s.store.Constraints())
	s.monitor.RecordOperation("generate")
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (s *Server) SwapItem(c *gin.Context) {
	var repl models.Replacement
	if err := c.ShouldBindJSON(&repl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Unknown ids are a silent no-op by contract.
	s.store.Swap(c.Param("id"), repl)
	s.monitor.RecordOperation("swap")
	c.JSON(http.StatusOK, gin.H{"plan": s.store.Plan()})
}

func (s *Server) CompleteItem(c *gin.Context) {
	s.store.ToggleComplete(c.Param("id"))
	s.monitor.RecordOperation("complete")
	c.JSON(http.StatusOK, gin.H{"plan": s.store.Plan()})
}

// Constraint handlers

func (s *Server) GetConstraints(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Constraints())
}

func (s *Server) SetConstraints(c *gin.Context) {
	var constraints models.Constraints
	if err := c.ShouldBindJSON(&constraints); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.store.SetConstraints(constraints)
	c.JSON(http.StatusOK, constraints)
}

// Catalog handlers

func (s *Server) GetMeals(c *gin.Context) {
	cat := s.store.Catalog()
	meals := cat.SearchMeals(c.Query("q"))

	if c.Query("minKcal") != "" || c.Query("maxKcal") != "" {
		minKcal := intQuery(c, "minKcal", 0)
		maxKcal := intQuery(c, "maxKcal", 10000)
		filtered := meals[:0]
		for _, m := range meals {
			if m.Kcal >= minKcal && m.Kcal <= maxKcal {
				filtered = append(filtered, m)
			}
		}
		meals = filtered
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (s *Server) GetWorkouts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"workouts": s.store.Catalog().SearchWorkouts(c.Query("q"))})
}

type registerMealRequest struct {
	models.Meal
	Persist bool `json:"persist"`
}

func (s *Server) RegisterMeal(c *gin.Context) {
	var req registerMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := s.store.RegisterMeal(req.Meal, req.Persist)
	s.monitor.RecordOperation("register_meal")
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type registerWorkoutRequest struct {
	models.Workout
	Persist bool `json:"persist"`
}

func (s *Server) RegisterWorkout(c *gin.Context) {
	var req registerWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := s.store.RegisterWorkout(req.Workout, req.Persist)
	s.monitor.RecordOperation("register_workout")
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Engagement handlers

type tapRequest struct {
	Kind models.TapKind `json:"kind"`
}

func (s *Server) RecordTap(c *gin.Context) {
	var req tapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Kind {
	case models.TapStart, models.TapSwap, models.TapComplete:
		s.store.RecordTap(req.Kind)
		c.JSON(http.StatusOK, s.store.Metrics())
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tap kind"})
	}
}

func (s *Server) Start(c *gin.Context) {
	started := s.store.Start()
	c.JSON(http.StatusOK, gin.H{"started": started, "upsell": !started})
}

func (s *Server) GetEngagement(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Metrics())
}

// History and trend handlers

func (s *Server) GetWeightHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": s.store.WeightHistory()})
}

type weightRequest struct {
	WeightKg float64 `json:"weightKg"`
}

func (s *Server) AddWeightEntry(c *gin.Context) {
	var req weightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.store.AddWeightEntry(req.WeightKg)
	s.monitor.RecordOperation("weight")
	c.JSON(http.StatusOK, gin.H{"entries": s.store.WeightHistory()})
}

func (s *Server) GetNutritionHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": s.store.NutritionHistory()})
}

func (s *Server) GetWeightTrend(c *gin.Context) {
	alpha := floatQuery(c, "alpha", trend.DefaultAlpha)
	points := trend.SmoothWeights(s.store.WeightHistory(), alpha)
	c.JSON(http.StatusOK, gin.H{"points": points})
}

func (s *Server) GetNutritionTrend(c *gin.Context) {
	alpha := floatQuery(c, "alpha", trend.DefaultAlpha)
	entries := s.store.NutritionHistory()

	var points []models.TrendPoint
	switch c.DefaultQuery("dimension", "kcal") {
	case "kcal":
		points = trend.SmoothNutrition(entries, alpha, trend.BaselineKcal,
			func(e models.NutritionEntry) float64 { return float64(e.Kcal) })
	case "protein":
		points = trend.SmoothNutrition(entries, alpha, trend.BaselineProteinG,
			func(e models.NutritionEntry) float64 { return float64(e.ProteinG) })
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown dimension"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": points})
}

// Session flag handlers

type guestRequest struct {
	Guest bool `json:"guest"`
}

func (s *Server) SetGuest(c *gin.Context) {
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.store.SetGuest(req.Guest)
	c.JSON(http.StatusOK, gin.H{"guest": req.Guest})
}

type onlineRequest struct {
	Online bool `json:"online"`
}

func (s *Server) SetOnline(c *gin.Context) {
	var req onlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.store.SetOnline(req.Online)
	c.JSON(http.StatusOK, gin.H{"online": req.Online})
}

func (s *Server) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.Snapshot())
}

// Query helpers

func intQuery(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func floatQuery(c *gin.Context, name string, fallback float64) float64 {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
