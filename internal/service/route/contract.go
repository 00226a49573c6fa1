//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"

	"pathport/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error)
	GetByID(ctx context.Context, id int64) (*entities.Route, error)
	ListByPartner(ctx context.Context, partnerID int64) ([]entities.Route, error)
	Toggle(ctx context.Context, id int64) (*entities.Route, error)
	Delete(ctx context.Context, id int64) error
	DeleteByPartner(ctx context.Context, partnerID int64) (int64, error)
}
