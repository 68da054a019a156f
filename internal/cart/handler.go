package cart

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ezrarag/Stamped-in-style/internal/trip"
)

// StoreFactory resolves the cart store for one traveler session.
type StoreFactory func(sessionID string) *Store

type Handler struct {
	stores StoreFactory
}

func NewHandler(stores StoreFactory) *Handler {
	return &Handler{stores: stores}
}

func (h *Handler) store(c *gin.Context) (*Store, bool) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-ID header"})
		return nil, false
	}
	return h.stores(sessionID), true
}

//
// --------------------------------------------------
// GET /cart
// --------------------------------------------------
//

func (h *Handler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := h.store(c)
		if !ok {
			return
		}

		items := store.Items(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"trips":      items,
			"count":      len(items),
			"isFull":     len(items) >= MaxTrips,
			"totalPrice": store.TotalPrice(c.Request.Context()),
		})
	}
}

//
// --------------------------------------------------
// POST /cart/items
// --------------------------------------------------
//

type addItemRequest struct {
	Destination trip.Destination `json:"destination"`
	Budget      string           `json:"budget"`
	Duration    string           `json:"duration"`
	Experiences []string         `json:"experiences"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Notes       string           `json:"notes"`
}

func (h *Handler) Add() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := h.store(c)
		if !ok {
			return
		}

		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		budget, err := trip.ParseBudget(req.Budget)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		duration, err := trip.ParseDuration(req.Duration)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Destination.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "destination is required"})
			return
		}

		candidate := trip.Candidate{
			Destination: req.Destination,
			Budget:      budget,
			Duration:    duration,
			Experiences: req.Experiences,
			Name:        req.Name,
			Email:       req.Email,
			Notes:       req.Notes,
			TotalPrice:  trip.EstimatePrice(budget, duration, len(req.Experiences)),
		}

		item, err := store.Add(c.Request.Context(), candidate)
		if errors.Is(err, ErrCartFull) {
			c.JSON(http.StatusConflict, gin.H{"error": "trip cart is full (5 trips max)"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"trip": item})
	}
}

//
// --------------------------------------------------
// PATCH /cart/items/:id
// --------------------------------------------------
//

func (h *Handler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := h.store(c)
		if !ok {
			return
		}

		var updates ItemUpdate
		if err := c.ShouldBindJSON(&updates); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if err := store.Update(c.Request.Context(), c.Param("id"), updates); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"trips": store.Items(c.Request.Context())})
	}
}

//
// --------------------------------------------------
// DELETE /cart/items/:id  |  DELETE /cart
// --------------------------------------------------
//

func (h *Handler) Remove() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := h.store(c)
		if !ok {
			return
		}

		if err := store.Remove(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": store.Count(c.Request.Context())})
	}
}

func (h *Handler) Clear() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := h.store(c)
		if !ok {
			return
		}

		if err := store.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

//
// --------------------------------------------------
// GET /cart/events (SSE refresh signal)
// --------------------------------------------------
//

// Events streams a "changed" event whenever the cart is written from another
// session, so an open tab can reload its view. Best effort only.
func (h *Handler) Events() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := h.store(c)
		if !ok {
			return
		}

		changes := store.Watch(c.Request.Context())

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")

		c.Stream(func(w io.Writer) bool {
			_, open := <-changes
			if !open {
				return false
			}
			c.SSEvent("cart", "changed")
			return true
		})
	}
}
