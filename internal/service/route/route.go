package route

import (
	"context"
	"fmt"

	"pathport/internal/entities"
	"pathport/internal/pkg/access"
)

type Route struct {
	repository Repository
}

func New(repository Repository) *Route {
	return &Route{
		repository: repository,
	}
}

func (s *Route) CreateRoute(ctx context.Context, actor entities.Actor, routeModify entities.RouteModify) (*entities.Route, error) {
	if err := access.Require(actor, access.RouteManage); err != nil {
		return nil, err
	}
	if err := validateRouteModify(&routeModify); err != nil {
		return nil, err
	}

	routeModify.PartnerID = &actor.UserID

	route, err := s.repository.Create(ctx, routeModify)
	if err != nil {
		return nil, fmt.Errorf("create route: %w", err)
	}
	return route, nil
}

func (s *Route) ListRoutes(ctx context.Context, actor entities.Actor) ([]entities.Route, error) {
	if err := access.Require(actor, access.RouteManage); err != nil {
		return nil, err
	}

	routes, err := s.repository.ListByPartner(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	return routes, nil
}

func (s *Route) ToggleRoute(ctx context.Context, actor entities.Actor, id int64) (*entities.Route, error) {
	if err := s.requireOwner(ctx, actor, id); err != nil {
		return nil, err
	}

	route, err := s.repository.Toggle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle route: %w", err)
	}
	return route, nil
}

func (s *Route) DeleteRoute(ctx context.Context, actor entities.Actor, id int64) error {
	if err := s.requireOwner(ctx, actor, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete route: %w", err)
	}
	return nil
}

// DeleteByPartner каскад при удалении партнера, права проверяет вызывающий
func (s *Route) DeleteByPartner(ctx context.Context, partnerID int64) (int64, error) {
	deleted, err := s.repository.DeleteByPartner(ctx, partnerID)
	if err != nil {
		return 0, fmt.Errorf("delete partner routes: %w", err)
	}
	return deleted, nil
}

func (s *Route) requireOwner(ctx context.Context, actor entities.Actor, id int64) error {
	if err := access.Require(actor, access.RouteManage); err != nil {
		return err
	}

	route, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get route: %w", err)
	}
	if route.PartnerID != actor.UserID {
		return ErrNotRouteOwner
	}
	return nil
}
