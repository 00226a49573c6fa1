package activity

import (
	"context"
	"fmt"

	"pathport/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, entry entities.ActivityEntry) (*entities.ActivityEntry, error) {
	query := `
		INSERT INTO activity_log (title, description, category, icon, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, description, category, icon, created_at
	`

	var stored entities.ActivityEntry
	var category string
	err := r.querier.QueryRow(
		ctx,
		query,
		entry.Title,
		entry.Description,
		entry.Category.String(),
		entry.Icon,
		entry.CreatedAt,
	).Scan(
		&stored.ID,
		&stored.Title,
		&stored.Description,
		&category,
		&stored.Icon,
		&stored.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected activity repository append error: %w", err)
	}
	stored.Category = entities.ActivityCategory(category)

	return &stored, nil
}

func (r *Repository) Recent(ctx context.Context, limit int) ([]entities.ActivityEntry, error) {
	query := `
		SELECT id, title, description, category, icon, created_at
		FROM activity_log
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected activity repository recent error: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.ActivityEntry, 0, limit)
	for rows.Next() {
		var entry entities.ActivityEntry
		var category string
		err := rows.Scan(
			&entry.ID,
			&entry.Title,
			&entry.Description,
			&category,
			&entry.Icon,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected activity repository recent error: %w", err)
		}
		entry.Category = entities.ActivityCategory(category)
		entries = append(entries, entry)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected activity repository recent error: %w", err)
	}

	return entries, nil
}
