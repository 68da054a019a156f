package llm

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ezrarag/Stamped-in-style/internal/trip"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// POST /ai/trip-breakdown
// --------------------------------------------------
//

type breakdownRequest struct {
	Destination string          `json:"destination"`
	Duration    string          `json:"duration"`
	Budget      string          `json:"budget"`
	Experiences json.RawMessage `json:"experiences"`
	Notes       string          `json:"notes"`
}

func (h *Handler) TripBreakdown() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req breakdownRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if req.Destination == "" || req.Duration == "" || req.Budget == "" || len(req.Experiences) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Missing required fields: destination, duration, budget, experiences",
			})
			return
		}

		// experiences must be a list even when empty
		var experiences []string
		if err := json.Unmarshal(req.Experiences, &experiences); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Experiences must be an array"})
			return
		}

		duration, err := trip.ParseDuration(req.Duration)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		budget, err := trip.ParseBudget(req.Budget)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		analysis, err := h.service.GenerateTripBreakdown(c.Request.Context(), BreakdownInput{
			Destination: req.Destination,
			Duration:    duration,
			Budget:      budget,
			Experiences: experiences,
			Notes:       req.Notes,
		})
		if errors.Is(err, ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, ErrUpstreamUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate trip breakdown"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate trip breakdown"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": analysis})
	}
}

//
// --------------------------------------------------
// POST /ai/recommendations
// --------------------------------------------------
//

type recommendationsRequest struct {
	Destination   string   `json:"destination"`
	Budget        string   `json:"budget"`
	Experiences   []string `json:"experiences"`
	PreviousTrips []string `json:"previousTrips"`
}

func (h *Handler) Recommendations() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req recommendationsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		budget, err := trip.ParseBudget(req.Budget)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		recs, err := h.service.GenerateRecommendations(c.Request.Context(), RecommendationsInput{
			Destination:   req.Destination,
			Budget:        budget,
			Experiences:   req.Experiences,
			PreviousTrips: req.PreviousTrips,
		})
		if errors.Is(err, ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, ErrUpstreamUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate recommendations"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recommendations"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": recs})
	}
}
