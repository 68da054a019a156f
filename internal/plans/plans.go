package plans

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ezrarag/Stamped-in-style/internal/llm"
)

// TripPlan is a saved AI itinerary, kept for the client dashboard. The
// analysis itself is stored as JSON since its shape follows the model's
// output, not the schema.
type TripPlan struct {
	ID          string           `json:"id"`
	ClientID    string           `json:"client_id"`
	Destination string           `json:"destination"`
	Analysis    llm.TripAnalysis `json:"analysis"`
	CreatedAt   time.Time        `json:"created_at"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Save(ctx context.Context, plan *TripPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO trip_plans (id, client_id, destination, analysis)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`,
		plan.ID,
		plan.ClientID,
		plan.Destination,
		plan.Analysis,
	).Scan(&plan.CreatedAt)
}

func (r *Repository) ListByClient(ctx context.Context, clientID string) ([]*TripPlan, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, client_id, destination, analysis, created_at
		FROM trip_plans
		WHERE client_id = $1
		ORDER BY created_at DESC
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []*TripPlan{}
	for rows.Next() {
		var p TripPlan
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Destination, &p.Analysis, &p.CreatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, &p)
	}
	return plans, rows.Err()
}
