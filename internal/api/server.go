// Package api is the HTTP presentation boundary over the engine. Handlers
// invoke store operations and read state; they hold no logic of their own.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planfit/internal/events"
	"planfit/internal/monitoring"
	"planfit/internal/store"
)

// Server wires the engine to a gin router.
type Server struct {
	Router  *gin.Engine
	store   *store.Store
	hub     *events.Hub
	monitor *monitoring.Monitor
	secret  string
}

// NewServer creates the API server. An empty secret disables authentication.
func NewServer(st *store.Store, hub *events.Hub, secret string) *Server {
	router := gin.Default()

	s := &Server{
		Router:  router,
		store:   st,
		hub:     hub,
		monitor: monitoring.NewMonitor(),
		secret:  secret,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	// Health check
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "online": s.store.Online()})
	})

	v1 := s.Router.Group("/api/v1")
	if s.secret != "" {
		v1.Use(AuthMiddleware(s.secret))
	}
	{
		// Plan lifecycle
		v1.GET("/plan", s.GetPlan)
		v1.POST("/plan/generate", s.GeneratePlan)
		v1.POST("/plan/:id/swap", s.SwapItem)
		v1.POST("/plan/:id/complete", s.CompleteItem)

		// Constraints
		v1.GET("/constraints", s.GetConstraints)
		v1.PUT("/constraints", s.SetConstraints)

		// Catalog
		v1.GET("/catalog/meals", s.GetMeals)
		v1.GET("/catalog/workouts", s.GetWorkouts)
		v1.POST("/catalog/meals", s.RegisterMeal)
		v1.POST("/catalog/workouts", s.RegisterWorkout)

		// Engagement
		v1.POST("/taps", s.RecordTap)
		v1.POST("/start", s.Start)
		v1.GET("/metrics/engagement", s.GetEngagement)

		// Histories and trends
		v1.GET("/history/weight", s.GetWeightHistory)
		v1.POST("/history/weight", s.AddWeightEntry)
		v1.GET("/history/nutrition", s.GetNutritionHistory)
		v1.GET("/trends/weight", s.GetWeightTrend)
		v1.GET("/trends/nutrition", s.GetNutritionTrend)

		// Session flags and status
		v1.PUT("/session/guest", s.SetGuest)
		v1.PUT("/session/online", s.SetOnline)
		v1.GET("/status", s.GetStatus)
	}

	// Event stream for presentation notices
	s.Router.GET("/ws", s.handleWebSocket)
}
