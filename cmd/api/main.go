package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/ezrarag/Stamped-in-style/internal/auth"
	"github.com/ezrarag/Stamped-in-style/internal/cart"
	"github.com/ezrarag/Stamped-in-style/internal/config"
	"github.com/ezrarag/Stamped-in-style/internal/curated"
	"github.com/ezrarag/Stamped-in-style/internal/db"
	"github.com/ezrarag/Stamped-in-style/internal/llm"
	"github.com/ezrarag/Stamped-in-style/internal/payments"
	"github.com/ezrarag/Stamped-in-style/internal/places"
	"github.com/ezrarag/Stamped-in-style/internal/plans"
	"github.com/ezrarag/Stamped-in-style/internal/router"
	"github.com/ezrarag/Stamped-in-style/internal/storage"
	"github.com/ezrarag/Stamped-in-style/internal/submissions"
	"github.com/ezrarag/Stamped-in-style/internal/wizard"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"OPENAI_API_KEY",
		"STRIPE_SECRET_KEY",
		"GOOGLE_MAPS_API_KEY",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Config load failed:", err)
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres(cfg.DatabaseURL)
	defer pgDB.Close()

	// ───────────────────────── REDIS (CART BACKEND) ─────────────────────────
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("❌ Redis ping failed:", err)
	}

	cartStores := cart.StoreFactory(func(sessionID string) *cart.Store {
		return cart.NewStore(cart.NewRedisBackend(rdb, sessionID))
	})

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── UPSTREAM CLIENTS ─────────────────────────
	llmClient := llm.NewOpenAIClient()
	placesClient := places.NewGoogleClient()

	stripeClient, err := payments.NewStripeClient()
	if err != nil {
		log.Fatal("❌ Stripe init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	submissionRepo := submissions.NewPostgresRepository(pgDB)
	curatedRepo := curated.NewRepository(pgDB)
	planRepo := plans.NewRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	aiService := llm.NewService(llmClient)

	submissionService := submissions.NewService(
		submissionRepo,
		stripeClient,
		cfg.Checkout.SuccessURL,
		cfg.Checkout.CancelURL,
	)

	// ───────────────────────── WIZARD SESSIONS ─────────────────────────
	registry := wizard.NewRegistry(placesClient, wizard.DefaultDebounce)

	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			registry.Sweep()
		}
	}()

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(cfg.AllowedOrigins, router.Deps{
		Auth:        auth.NewHandler(authService),
		Cart:        cart.NewHandler(cartStores),
		Wizard:      wizard.NewHandler(registry, cartStores),
		AI:          llm.NewHandler(aiService),
		Submissions: submissions.NewHandler(submissionService),
		Curated:     curated.NewHandler(curatedRepo, r2Client),
		Plans:       plans.NewHandler(planRepo),
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", cfg.Port)
	r.Run(":" + cfg.Port)
}
