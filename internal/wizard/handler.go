package wizard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ezrarag/Stamped-in-style/internal/cart"
	"github.com/ezrarag/Stamped-in-style/internal/places"
)

type Handler struct {
	registry *Registry
	stores   cart.StoreFactory
}

func NewHandler(registry *Registry, stores cart.StoreFactory) *Handler {
	return &Handler{registry: registry, stores: stores}
}

func (h *Handler) session(c *gin.Context) (*Session, bool) {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "wizard session not found"})
		return nil, false
	}
	return session, true
}

//
// --------------------------------------------------
// POST /wizard/sessions
// --------------------------------------------------
//

func (h *Handler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := h.registry.Create()
		c.JSON(http.StatusCreated, gin.H{
			"session":  session.Snapshot(),
			"featured": places.Featured(),
		})
	}
}

//
// --------------------------------------------------
// GET /wizard/sessions/:id
// --------------------------------------------------
//

func (h *Handler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"session":  session.Snapshot(),
			"featured": places.Featured(),
		})
	}
}

//
// --------------------------------------------------
// DELETE /wizard/sessions/:id
// --------------------------------------------------
//

func (h *Handler) Close() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.registry.Delete(c.Param("id"))
		c.Status(http.StatusNoContent)
	}
}

//
// --------------------------------------------------
// POST /wizard/sessions/:id/next
// --------------------------------------------------
//

func (h *Handler) Next() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}

		cartKey := c.GetHeader("X-Session-ID")
		if cartKey == "" {
			cartKey = session.ID
		}
		store := h.stores(cartKey)

		var in NextInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		added, err := session.Next(c.Request.Context(), in, store)

		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
			return
		case errors.Is(err, cart.ErrCartFull):
			c.JSON(http.StatusConflict, gin.H{"error": "trip cart is full (5 trips max)"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save trip"})
			return
		}

		resp := gin.H{"session": session.Snapshot()}
		if added != nil {
			resp["trip"] = added
		}
		c.JSON(http.StatusOK, resp)
	}
}

//
// --------------------------------------------------
// POST /wizard/sessions/:id/back
// --------------------------------------------------
//

func (h *Handler) Back() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}

		if err := session.Back(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": session.Snapshot()})
	}
}

//
// --------------------------------------------------
// PUT /wizard/sessions/:id/destination-query
// --------------------------------------------------
//

type queryRequest struct {
	Query string `json:"query"`
}

// DestinationQuery records a keystroke. Results arrive in the session
// snapshot once the debounce window closes; superseded lookups are
// discarded on arrival.
func (h *Handler) DestinationQuery() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}

		var req queryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		session.Search(req.Query)
		c.JSON(http.StatusAccepted, gin.H{"session": session.Snapshot()})
	}
}

//
// --------------------------------------------------
// PUT /wizard/sessions/:id/destination
// --------------------------------------------------
//

type pickRequest struct {
	PlaceID string `json:"placeId"`
}

// PickDestination resolves a selected prediction to full details and
// records it on the session. The traveler still confirms via /next.
func (h *Handler) PickDestination() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}

		var req pickRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.PlaceID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "placeId is required"})
			return
		}

		dest, err := h.registry.ResolvePlace(c.Request.Context(), req.PlaceID)
		if errors.Is(err, places.ErrUpstreamUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "place lookup unavailable"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "place lookup failed"})
			return
		}

		session.SetDestination(dest)
		c.JSON(http.StatusOK, gin.H{"session": session.Snapshot()})
	}
}
