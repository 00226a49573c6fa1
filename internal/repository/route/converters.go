package route

import (
	"pathport/internal/entities"
)

func ToDomain(r *RouteDB) *entities.Route {
	if r == nil {
		return nil
	}

	return &entities.Route{
		ID:            r.ID,
		PartnerID:     r.PartnerID,
		Name:          r.Name,
		FromLocation:  r.FromLocation,
		ToLocation:    r.ToLocation,
		DepartureTime: r.DepartureTime,
		Frequency:     entities.RouteFrequency(r.Frequency),
		Capacity:      r.Capacity,
		TransportMode: entities.TransportMode(r.TransportMode),
		Active:        r.Active,
		CreatedAt:     r.CreatedAt,
	}
}

func FromDomainModify(routeModify *entities.RouteModify) *RouteModifyDB {
	if routeModify == nil {
		return nil
	}
	routeDB := &RouteModifyDB{
		PartnerID:     routeModify.PartnerID,
		Name:          routeModify.Name,
		FromLocation:  routeModify.FromLocation,
		ToLocation:    routeModify.ToLocation,
		DepartureTime: routeModify.DepartureTime,
		Capacity:      routeModify.Capacity,
	}

	if routeModify.Frequency != nil {
		frequency := routeModify.Frequency.String()
		routeDB.Frequency = &frequency
	}
	if routeModify.TransportMode != nil {
		mode := routeModify.TransportMode.String()
		routeDB.TransportMode = &mode
	}

	return routeDB
}

func ToDomainList(routesDB []RouteDB) []entities.Route {
	if len(routesDB) == 0 {
		return []entities.Route{}
	}

	result := make([]entities.Route, len(routesDB))
	for i, routeDB := range routesDB {
		result[i] = *ToDomain(&routeDB)
	}
	return result
}
