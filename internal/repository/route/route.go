package route

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"pathport/internal/entities"
	"pathport/internal/service/route"
)

const routeColumns = `id, partner_id, name, from_location, to_location, departure_time,
	frequency, capacity, transport_mode, active, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error) {
	routeModifyModel := FromDomainModify(&routeModify)

	query := `
		INSERT INTO routes (partner_id, name, from_location, to_location, departure_time, frequency, capacity, transport_mode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + routeColumns

	routeModel, err := scanRoute(r.querier.QueryRow(
		ctx,
		query,
		routeModifyModel.PartnerID,
		routeModifyModel.Name,
		routeModifyModel.FromLocation,
		routeModifyModel.ToLocation,
		routeModifyModel.DepartureTime,
		routeModifyModel.Frequency,
		routeModifyModel.Capacity,
		routeModifyModel.TransportMode,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository create error: %w", err)
	}

	return ToDomain(routeModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = $1`

	routeModel, err := scanRoute(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository getbyid error: %w", err)
	}

	return ToDomain(routeModel), nil
}

func (r *Repository) ListByPartner(ctx context.Context, partnerID int64) ([]entities.Route, error) {
	query := `SELECT ` + routeColumns + `
		FROM routes
		WHERE partner_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, partnerID)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository list error: %w", err)
	}
	defer rows.Close()

	routeModels := make([]RouteDB, 0, 8)
	for rows.Next() {
		routeModel, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository list error: %w", err)
		}
		routeModels = append(routeModels, *routeModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository list error: %w", err)
	}

	return ToDomainList(routeModels), nil
}

func (r *Repository) Toggle(ctx context.Context, id int64) (*entities.Route, error) {
	query := `
		UPDATE routes SET active = NOT active
		WHERE id = $1
		RETURNING ` + routeColumns

	routeModel, err := scanRoute(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository toggle error: %w", err)
	}

	return ToDomain(routeModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected route repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return route.ErrRouteNotFound
	}
	return nil
}

func (r *Repository) DeleteByPartner(ctx context.Context, partnerID int64) (int64, error) {
	result, err := r.querier.Exec(ctx, `DELETE FROM routes WHERE partner_id = $1`, partnerID)
	if err != nil {
		return 0, fmt.Errorf("unexpected route repository delete by partner error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanRoute(row pgx.Row) (*RouteDB, error) {
	var routeModel RouteDB
	err := row.Scan(
		&routeModel.ID,
		&routeModel.PartnerID,
		&routeModel.Name,
		&routeModel.FromLocation,
		&routeModel.ToLocation,
		&routeModel.DepartureTime,
		&routeModel.Frequency,
		&routeModel.Capacity,
		&routeModel.TransportMode,
		&routeModel.Active,
		&routeModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &routeModel, nil
}
