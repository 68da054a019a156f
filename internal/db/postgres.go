package db

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres(dsn string) *pgxpool.Pool {
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS (dashboard accounts)
	// -------------------------------
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CLIENT',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, usersSQL); err != nil {
		return err
	}

	// -------------------------------
	// CLIENTS (contact records)
	// -------------------------------
	clientsSQL := `
		CREATE TABLE IF NOT EXISTS clients (
			id UUID PRIMARY KEY,
			full_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(50),
			contact_preference VARCHAR(50),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, clientsSQL); err != nil {
		return err
	}

	// -------------------------------
	// TRIP SUBMISSIONS
	// -------------------------------
	submissionsSQL := `
		CREATE TABLE IF NOT EXISTS trip_submissions (
			id UUID PRIMARY KEY,
			client_id UUID NOT NULL REFERENCES clients(id),
			destination VARCHAR(255) NOT NULL,
			budget VARCHAR(50) NOT NULL,
			duration VARCHAR(50) NOT NULL,
			experiences TEXT[] NOT NULL DEFAULT '{}',
			notes TEXT,
			total_price INTEGER NOT NULL DEFAULT 0,
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, submissionsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CURATED ITEMS
	// -------------------------------
	curatedSQL := `
		CREATE TABLE IF NOT EXISTS curated_items (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category VARCHAR(100) NOT NULL DEFAULT '',
			type VARCHAR(100) NOT NULL DEFAULT '',
			price_range VARCHAR(50) NOT NULL DEFAULT '',
			distance VARCHAR(50) NOT NULL DEFAULT '',
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, curatedSQL); err != nil {
		return err
	}

	// -------------------------------
	// TRIP PLANS (saved AI itineraries)
	// -------------------------------
	plansSQL := `
		CREATE TABLE IF NOT EXISTS trip_plans (
			id UUID PRIMARY KEY,
			client_id UUID NOT NULL,
			destination VARCHAR(255) NOT NULL,
			analysis JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, plansSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
