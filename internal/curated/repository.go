package curated

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// buildListQuery assembles the filtered listing. Equality filters apply as
// given; search matches title, description, or category case-insensitively.
func buildListQuery(f Filters) (string, []any) {
	var conditions []string
	var args []any

	add := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.Type != "" {
		add("type = $%d", f.Type)
	}
	if f.Cost != "" {
		add("price_range = $%d", f.Cost)
	}
	if f.Distance != "" {
		add("distance = $%d", f.Distance)
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d)", n, n, n))
	}

	query := `
		SELECT id, title, description, category, type, price_range, distance, image_url, created_at
		FROM curated_items
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	return query, args
}

func (r *Repository) List(ctx context.Context, filters Filters) ([]*Item, error) {
	query, args := buildListQuery(filters)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID,
			&it.Title,
			&it.Description,
			&it.Category,
			&it.Type,
			&it.PriceRange,
			&it.Distance,
			&it.ImageURL,
			&it.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *Repository) Create(ctx context.Context, item *Item) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO curated_items (title, description, category, type, price_range, distance, image_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at
	`,
		item.Title,
		item.Description,
		item.Category,
		item.Type,
		item.PriceRange,
		item.Distance,
		item.ImageURL,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *Repository) SetImageURL(ctx context.Context, id int, url string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE curated_items SET image_url = $1 WHERE id = $2
	`, url, id)
	return err
}
