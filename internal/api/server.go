// Package api exposes the campaign workflow over HTTP for the dashboard.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promoboard/internal/campaigns"
	"promoboard/internal/monitoring"
)

// Server represents the main API handler for the staff campaign portal
type Server struct {
	Router  *gin.Engine
	service *campaigns.Service
	monitor *monitoring.Monitor
	hub     *Hub
}

// NewServer creates the API server and wires all routes
func NewServer(service *campaigns.Service, monitor *monitoring.Monitor) *Server {
	router := gin.Default()

	s := &Server{
		Router:  router,
		service: service,
		monitor: monitor,
		hub:     NewHub(),
	}

	go s.hub.Run()
	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	// Health check
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "PromoBoard API is running"})
	})

	// Live leaderboard feed for dashboards
	s.Router.GET("/ws/leaderboard", s.handleWebSocket)

	v1 := s.Router.Group("/api/v1")
	{
		// Campaign submission and lookup
		v1.POST("/campaigns", s.SubmitCampaign)
		v1.GET("/campaigns/:staff", s.GetCampaign)

		// Scoring and rankings
		v1.POST("/scoring/run", s.RunScoringSweep)
		v1.GET("/leaderboard", s.GetLeaderboard)

		// Kitchen reference data
		v1.GET("/dishes", s.GetFeasibleDishes)
		v1.GET("/menu", s.GetMenu)
		v1.GET("/inventory", s.GetInventory)

		// Operational status
		v1.GET("/status", s.GetStatus)
	}
}
