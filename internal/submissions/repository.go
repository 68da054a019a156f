package submissions

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the data-access contract. Service depends ONLY on this
// interface.
type Repository interface {
	CreateClient(ctx context.Context, client *ClientRecord) error
	CreateSubmission(ctx context.Context, submission *TripSubmission) error
	ListSubmissions(ctx context.Context) ([]*TripSubmission, error)
	ListByClient(ctx context.Context, clientID string) ([]*TripSubmission, error)
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateClient(ctx context.Context, client *ClientRecord) error {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO clients (id, full_name, email, phone, contact_preference)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`,
		client.ID,
		client.FullName,
		client.Email,
		client.Phone,
		client.ContactPreference,
	).Scan(&client.CreatedAt)
}

func (r *PostgresRepository) CreateSubmission(ctx context.Context, submission *TripSubmission) error {
	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	if submission.Status == "" {
		submission.Status = StatusPending
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO trip_submissions (
			id,
			client_id,
			destination,
			budget,
			duration,
			experiences,
			notes,
			total_price,
			status
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at
	`,
		submission.ID,
		submission.ClientID,
		submission.Destination,
		submission.Budget,
		submission.Duration,
		submission.Experiences,
		submission.Notes,
		submission.TotalPrice,
		submission.Status,
	).Scan(&submission.CreatedAt)
}

func (r *PostgresRepository) ListSubmissions(ctx context.Context) ([]*TripSubmission, error) {
	return r.list(ctx, `
		SELECT id, client_id, destination, budget, duration, experiences, notes, total_price, status, created_at
		FROM trip_submissions
		ORDER BY created_at DESC
	`)
}

func (r *PostgresRepository) ListByClient(ctx context.Context, clientID string) ([]*TripSubmission, error) {
	return r.list(ctx, `
		SELECT id, client_id, destination, budget, duration, experiences, notes, total_price, status, created_at
		FROM trip_submissions
		WHERE client_id = $1
		ORDER BY created_at DESC
	`, clientID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*TripSubmission, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*TripSubmission
	for rows.Next() {
		var s TripSubmission
		if err := rows.Scan(
			&s.ID,
			&s.ClientID,
			&s.Destination,
			&s.Budget,
			&s.Duration,
			&s.Experiences,
			&s.Notes,
			&s.TotalPrice,
			&s.Status,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
