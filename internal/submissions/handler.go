package submissions

import (
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
// POST /trip-submissions
// --------------------------------------------------
//

type submitRequest struct {
	Trip              trip.TripItem `json:"trip"`
	Phone             string        `json:"phone"`
	ContactPreference string        `json:"contactPreference"`
}

func (h *Handler) Submit() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if req.Trip.Destination.Name == "" || req.Trip.Name == "" || req.Trip.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "destination, name and email are required"})
			return
		}

		result, err := h.service.Submit(c.Request.Context(), SubmitInput{
			Item:              req.Trip,
			Phone:             req.Phone,
			ContactPreference: req.ContactPreference,
		})

		var pErr *PersistenceError
		if errors.As(err, &pErr) {
			c.JSON(pErr.Status, gin.H{"error": pErr.Message})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if result.PaymentErr != nil {
			// saved, payment setup failed; return both so the client can
			// offer a payment-only retry
			c.JSON(http.StatusBadGateway, gin.H{
				"success":      false,
				"id":           result.SubmissionID,
				"clientId":     result.ClientID,
				"paymentError": result.PaymentErr.Message,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"id":       result.SubmissionID,
			"clientId": result.ClientID,
			"url":      result.CheckoutURL,
		})
	}
}

//
// --------------------------------------------------
// GET /trip-submissions (admin)
// --------------------------------------------------
//

func (h *Handler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		trips, err := h.service.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"trips": trips})
	}
}

//
// --------------------------------------------------
// GET /trip-submissions/mine (client dashboard)
// --------------------------------------------------
//

func (h *Handler) ListMine() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		trips, err := h.service.ListByClient(c.Request.Context(), userID.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"trips": trips})
	}
}
