package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ezrarag/Stamped-in-style/internal/auth"
	"github.com/ezrarag/Stamped-in-style/internal/cart"
	"github.com/ezrarag/Stamped-in-style/internal/curated"
	"github.com/ezrarag/Stamped-in-style/internal/llm"
	"github.com/ezrarag/Stamped-in-style/internal/middleware"
	"github.com/ezrarag/Stamped-in-style/internal/places"
	"github.com/ezrarag/Stamped-in-style/internal/plans"
	"github.com/ezrarag/Stamped-in-style/internal/submissions"
	"github.com/ezrarag/Stamped-in-style/internal/wizard"
)

// Deps collects every handler the API exposes.
type Deps struct {
	Auth        *auth.Handler
	Cart        *cart.Handler
	Wizard      *wizard.Handler
	AI          *llm.Handler
	Submissions *submissions.Handler
	Curated     *curated.Handler
	Plans       *plans.Handler
}

func New(allowedOrigins []string, deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Metrics())

	// ───────────────────────── HEALTH + METRICS ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", deps.Auth.Register)
		authGroup.POST("/login", deps.Auth.Login)
	}

	// ───────────────────────── DESTINATIONS ─────────────────────────
	r.GET("/destinations/featured", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"destinations": places.Featured()})
	})

	// ───────────────────────── CART ─────────────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", deps.Cart.List())
		cartGroup.POST("/items", deps.Cart.Add())
		cartGroup.PATCH("/items/:id", deps.Cart.Update())
		cartGroup.DELETE("/items/:id", deps.Cart.Remove())
		cartGroup.DELETE("", deps.Cart.Clear())
		cartGroup.GET("/events", deps.Cart.Events())
	}

	// ───────────────────────── WIZARD ─────────────────────────
	sessions := r.Group("/wizard/sessions")
	{
		sessions.POST("", deps.Wizard.Create())
		sessions.GET("/:id", deps.Wizard.Get())
		sessions.DELETE("/:id", deps.Wizard.Close())
		sessions.POST("/:id/next", deps.Wizard.Next())
		sessions.POST("/:id/back", deps.Wizard.Back())
		sessions.PUT("/:id/destination-query", deps.Wizard.DestinationQuery())
		sessions.PUT("/:id/destination", deps.Wizard.PickDestination())
	}

	// ───────────────────────── AI ─────────────────────────
	ai := r.Group("/ai")
	{
		ai.POST("/trip-breakdown", deps.AI.TripBreakdown())
		ai.POST("/recommendations", deps.AI.Recommendations())
	}

	// ───────────────────────── SUBMISSIONS ─────────────────────────
	requireAdmin := []gin.HandlerFunc{
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	}

	r.POST("/trip-submissions", deps.Submissions.Submit())
	r.GET("/trip-submissions", append(requireAdmin, deps.Submissions.List())...)
	r.GET("/trip-submissions/mine", middleware.AuthMiddleware(), deps.Submissions.ListMine())

	// ───────────────────────── CURATED ─────────────────────────
	r.GET("/curated-items", deps.Curated.List())
	r.POST("/curated-items", append(requireAdmin, deps.Curated.Create())...)
	r.POST("/curated-items/:id/image", append(requireAdmin, deps.Curated.UploadImage())...)

	// ───────────────────────── TRIP PLANS ─────────────────────────
	plansGroup := r.Group("/trip-plans")
	plansGroup.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleClient),
	)
	{
		plansGroup.POST("", deps.Plans.Save())
		plansGroup.GET("", deps.Plans.List())
	}

	return r
}
