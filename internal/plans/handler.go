package plans

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ezrarag/Stamped-in-style/internal/llm"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

//
// --------------------------------------------------
// POST /trip-plans (client)
// --------------------------------------------------
//

type saveRequest struct {
	Destination string           `json:"destination"`
	Analysis    llm.TripAnalysis `json:"analysis"`
}

func (h *Handler) Save() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req saveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.Destination == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "destination is required"})
			return
		}

		plan := &TripPlan{
			ClientID:    userID.(string),
			Destination: req.Destination,
			Analysis:    req.Analysis,
		}
		if err := h.repo.Save(c.Request.Context(), plan); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save plan"})
			return
		}
		c.JSON(http.StatusCreated, plan)
	}
}

//
// --------------------------------------------------
// GET /trip-plans (client)
// --------------------------------------------------
//

func (h *Handler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		items, err := h.repo.ListByClient(c.Request.Context(), userID.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plans"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"plans": items})
	}
}
