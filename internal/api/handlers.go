package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"promoboard/internal/campaigns"
	"promoboard/internal/models"
)

// LeaderboardEntry is one ranked row in the leaderboard response
type LeaderboardEntry struct {
	Rank     int             `json:"rank"`
	Campaign models.Campaign `json:"campaign"`
}

// LeaderboardResponse carries the ranked entries plus the summary figures
// the dashboard header shows.
type LeaderboardResponse struct {
	Month        string             `json:"month"`
	Entries      []LeaderboardEntry `json:"entries"`
	Total        int                `json:"total"`
	AverageScore float64            `json:"average_score"`
	TopScore     float64            `json:"top_score"`
}

// SubmitCampaign handles POST /api/v1/campaigns
func (s *Server) SubmitCampaign(c *gin.Context) {
	var req campaigns.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := s.service.Submit(c.Request.Context(), req)
	switch {
	case errors.Is(err, campaigns.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{
			"error":    err.Error(),
			"campaign": campaign,
		})
	case errors.Is(err, campaigns.ErrInfeasible):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "No dishes can be prepared today based on current inventory. Please contact the kitchen manager.",
		})
	case errors.Is(err, campaigns.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, campaigns.ErrGenerationFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate campaign. Please try again."})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		s.broadcastLeaderboard()
		c.JSON(http.StatusCreated, campaign)
	}
}

// GetCampaign handles GET /api/v1/campaigns/:staff
func (s *Server) GetCampaign(c *gin.Context) {
	campaign, err := s.service.CampaignForStaff(c.Param("staff"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if campaign == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No campaign submitted this month"})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// RunScoringSweep handles POST /api/v1/scoring/run
func (s *Server) RunScoringSweep(c *gin.Context) {
	summary, err := s.service.RunScoringSweep(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if summary.Scored > 0 {
		s.broadcastLeaderboard()
	}
	c.JSON(http.StatusOK, summary)
}

// GetLeaderboard handles GET /api/v1/leaderboard
func (s *Server) GetLeaderboard(c *gin.Context) {
	resp, err := s.buildLeaderboard(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetFeasibleDishes handles GET /api/v1/dishes
func (s *Server) GetFeasibleDishes(c *gin.Context) {
	dishes, err := s.service.FeasibleDishes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dishes": dishes})
}

// GetMenu handles GET /api/v1/menu
func (s *Server) GetMenu(c *gin.Context) {
	menu, err := s.service.Menu()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

// GetInventory handles GET /api/v1/inventory
func (s *Server) GetInventory(c *gin.Context) {
	items, err := s.service.Inventory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": items})
}

// GetStatus handles GET /api/v1/status
func (s *Server) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}

func (s *Server) buildLeaderboard(month string) (*LeaderboardResponse, error) {
	if month == "" {
		month = s.service.CurrentMonth()
	}
	ranked, err := s.service.Leaderboard(month)
	if err != nil {
		return nil, err
	}

	resp := &LeaderboardResponse{
		Month:   month,
		Entries: make([]LeaderboardEntry, 0, len(ranked)),
		Total:   len(ranked),
	}

	var sum float64
	for i, campaign := range ranked {
		resp.Entries = append(resp.Entries, LeaderboardEntry{Rank: i + 1, Campaign: campaign})
		sum += *campaign.AIScore
	}
	if len(ranked) > 0 {
		resp.AverageScore = sum / float64(len(ranked))
		resp.TopScore = *ranked[0].AIScore
	}
	return resp, nil
}
