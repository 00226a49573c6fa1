package report

import (
	"context"
	"fmt"
	"time"

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

func (r *Repository) CountUsersByRole(ctx context.Context) (map[entities.UserRole]int64, error) {
	query := `
		SELECT role, COUNT(*)
		FROM users
		WHERE deleted_at IS NULL
		GROUP BY role
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository users by role error: %w", err)
	}
	defer rows.Close()

	result := map[entities.UserRole]int64{
		entities.RoleSender:  0,
		entities.RolePartner: 0,
		entities.RoleAdmin:   0,
	}
	for rows.Next() {
		var role string
		var count int64
		if err := rows.Scan(&role, &count); err != nil {
			return nil, fmt.Errorf("unexpected report repository users by role error: %w", err)
		}
		result[entities.UserRole(role)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository users by role error: %w", err)
	}

	return result, nil
}

func (r *Repository) CountActivePartners(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM users
		WHERE role = 'delivery_partner' AND verified AND NOT suspended AND deleted_at IS NULL
	`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected report repository active partners error: %w", err)
	}
	return count, nil
}

func (r *Repository) CountParcelsByStatus(ctx context.Context) (map[entities.ParcelStatusType]int64, error) {
	query := `SELECT status, COUNT(*) FROM parcels GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository parcels by status error: %w", err)
	}
	defer rows.Close()

	// нулевые статусы тоже нужны, иначе gauge застрянет на старом значении
	result := make(map[entities.ParcelStatusType]int64, len(entities.AllParcelStatuses))
	for _, status := range entities.AllParcelStatuses {
		result[status] = 0
	}
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected report repository parcels by status error: %w", err)
		}
		result[entities.ParcelStatusType(status)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository parcels by status error: %w", err)
	}

	return result, nil
}

func (r *Repository) CountDeliveredSince(ctx context.Context, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM parcels WHERE status = 'delivered' AND delivered_at >= $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected report repository delivered since error: %w", err)
	}
	return count, nil
}

func (r *Repository) SumRewardPointsPaid(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(SUM(reward_points), 0)::BIGINT FROM parcels WHERE status = 'delivered'`

	var sum int64
	err := r.querier.QueryRow(ctx, query).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("unexpected report repository reward points error: %w", err)
	}
	return sum, nil
}
