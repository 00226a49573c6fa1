package converters

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"pathport/internal/entities"
	"pathport/internal/generated/dto"
)

func ToUserDTO(u *entities.User) dto.User {
	return dto.User{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Phone:            u.Phone,
		Role:             u.Role.String(),
		Status:           u.AccountStatus().String(),
		TotalParcels:     u.TotalParcels,
		DeliveredParcels: u.DeliveredParcels,
		PointsEarned:     u.PointsEarned,
		Rating:           u.Rating,
		CreatedAt:        u.CreatedAt,
	}
}

func ToUserDTOs(users []entities.User) []dto.User {
	userDTOs := make([]dto.User, len(users))
	for i := range users {
		userDTOs[i] = ToUserDTO(&users[i])
	}
	return userDTOs
}

// ToParcelDTO коды попадают в ответ только если сервис их не вычистил
func ToParcelDTO(p *entities.Parcel) dto.Parcel {
	parcelDTO := dto.Parcel{
		ID:                p.ID,
		OrderID:           p.OrderID,
		SenderID:          p.SenderID,
		DeliveryPartnerID: p.DeliveryPartnerID,
		Title:             p.Title,
		Description:       p.Description,
		PickupLocation:    p.PickupLocation,
		DeliveryLocation:  p.DeliveryLocation,
		ReceiverName:      p.ReceiverName,
		ReceiverPhone:     p.ReceiverPhone,
		ReceiverEmail:     p.ReceiverEmail,
		Weight:            p.Weight,
		Size:              p.Size.String(),
		Urgency:           p.Urgency.String(),
		Status:            p.Status.String(),
		RewardPoints:      p.RewardPoints,
		TrackingHistory:   ToTrackingEntryDTOs(p.TrackingHistory),
		CreatedAt:         p.CreatedAt,
		AssignedAt:        p.AssignedAt,
		PickedUpAt:        p.PickedUpAt,
		DeliveredAt:       p.DeliveredAt,
		CancelledAt:       p.CancelledAt,
	}
	if p.PickupCode != "" {
		pickupCode := p.PickupCode
		parcelDTO.PickupCode = &pickupCode
	}
	if p.DeliveryCode != "" {
		deliveryCode := p.DeliveryCode
		parcelDTO.DeliveryCode = &deliveryCode
	}
	return parcelDTO
}

func ToParcelDTOs(parcels []entities.Parcel) []dto.Parcel {
	parcelDTOs := make([]dto.Parcel, len(parcels))
	for i := range parcels {
		parcelDTOs[i] = ToParcelDTO(&parcels[i])
	}
	return parcelDTOs
}

func ToTrackingEntryDTOs(entries []entities.TrackingEntry) []dto.TrackingEntry {
	entryDTOs := make([]dto.TrackingEntry, len(entries))
	for i, entry := range entries {
		entryDTOs[i] = dto.TrackingEntry{
			Status:      entry.Status.String(),
			Timestamp:   entry.Timestamp,
			Description: entry.Description,
		}
	}
	return entryDTOs
}

// ToTrackingDTO публичное представление: без внутренних id, контактов и кодов
func ToTrackingDTO(p *entities.Parcel) dto.Tracking {
	return dto.Tracking{
		OrderID:          p.OrderID,
		Title:            p.Title,
		Status:           p.Status.String(),
		PickupLocation:   p.PickupLocation,
		DeliveryLocation: p.DeliveryLocation,
		TrackingHistory:  ToTrackingEntryDTOs(p.TrackingHistory),
		CreatedAt:        p.CreatedAt,
		DeliveredAt:      p.DeliveredAt,
	}
}

func ToRouteDTO(r *entities.Route) dto.Route {
	return dto.Route{
		ID:            r.ID,
		Name:          r.Name,
		FromLocation:  r.FromLocation,
		ToLocation:    r.ToLocation,
		DepartureTime: r.DepartureTime,
		Frequency:     r.Frequency.String(),
		Capacity:      r.Capacity,
		TransportMode: r.TransportMode.String(),
		Active:        r.Active,
		CreatedAt:     r.CreatedAt,
	}
}

func ToRouteDTOs(routes []entities.Route) []dto.Route {
	routeDTOs := make([]dto.Route, len(routes))
	for i := range routes {
		routeDTOs[i] = ToRouteDTO(&routes[i])
	}
	return routeDTOs
}

func ToActivityDTOs(entries []entities.ActivityEntry) []dto.ActivityEntry {
	entryDTOs := make([]dto.ActivityEntry, len(entries))
	for i, entry := range entries {
		entryDTOs[i] = dto.ActivityEntry{
			ID:          entry.ID,
			Title:       entry.Title,
			Description: entry.Description,
			Category:    entry.Category.String(),
			Icon:        entry.Icon,
			CreatedAt:   entry.CreatedAt,
		}
	}
	return entryDTOs
}

func ToStatsDTO(s *entities.DashboardStats) dto.DashboardStats {
	usersByRole := make(map[string]int64, len(s.UsersByRole))
	for role, count := range s.UsersByRole {
		usersByRole[role.String()] = count
	}
	parcelsByStatus := make(map[string]int64, len(s.ParcelsByStatus))
	for status, count := range s.ParcelsByStatus {
		parcelsByStatus[status.String()] = count
	}

	return dto.DashboardStats{
		UsersByRole:      usersByRole,
		ActivePartners:   s.ActivePartners,
		ParcelsByStatus:  parcelsByStatus,
		ActiveParcels:    s.ActiveParcels,
		DeliveredToday:   s.DeliveredToday,
		RewardPointsPaid: s.RewardPointsPaid,
	}
}

func ToEarningsDTO(e *entities.Earnings) dto.Earnings {
	return dto.Earnings{
		DeliveredParcels: e.DeliveredParcels,
		PointsEarned:     e.PointsEarned,
		Parcels:          ToParcelDTOs(e.Parcels),
	}
}

// UserFilterFromQuery фильтр поиска пользователей из query: q, role, status, limit
func UserFilterFromQuery(query url.Values) (entities.UserFilter, error) {
	filter := entities.UserFilter{
		Query: strings.TrimSpace(query.Get("q")),
	}
	if raw := query.Get("role"); raw != "" {
		role := entities.UserRole(raw)
		filter.Role = &role
	}
	if raw := query.Get("status"); raw != "" {
		status := entities.UserAccountStatus(raw)
		filter.Status = &status
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return entities.UserFilter{}, fmt.Errorf("invalid limit %q: %w", raw, err)
		}
		filter.Limit = limit
	}
	return filter, nil
}
