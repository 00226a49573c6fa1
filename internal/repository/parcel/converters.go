package parcel

import (
	"encoding/json"
	"fmt"

	"pathport/internal/entities"
)

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	return &entities.Parcel{
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
		Size:              entities.ParcelSize(p.Size),
		Urgency:           entities.ParcelUrgency(p.Urgency),
		PickupCode:        p.PickupCode,
		DeliveryCode:      p.DeliveryCode,
		Status:            entities.ParcelStatusType(p.Status),
		RewardPoints:      p.RewardPoints,
		TrackingHistory:   historyToDomain(p.TrackingHistory),
		CreatedAt:         p.CreatedAt,
		AssignedAt:        p.AssignedAt,
		PickedUpAt:        p.PickedUpAt,
		DeliveredAt:       p.DeliveredAt,
		CancelledAt:       p.CancelledAt,
	}
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i, parcelDB := range parcelsDB {
		result[i] = *ToDomain(&parcelDB)
	}
	return result
}

func historyToDomain(history []TrackingEntryDB) []entities.TrackingEntry {
	result := make([]entities.TrackingEntry, len(history))
	for i, entry := range history {
		result[i] = entities.TrackingEntry{
			Status:      entities.ParcelStatusType(entry.Status),
			Timestamp:   entry.Timestamp,
			Description: entry.Description,
		}
	}
	return result
}

// historyJSON готовит JSONB массив для INSERT или для конкатенации tracking_history || $n
func historyJSON(entries ...entities.TrackingEntry) ([]byte, error) {
	history := make([]TrackingEntryDB, len(entries))
	for i, entry := range entries {
		history[i] = TrackingEntryDB{
			Status:      entry.Status.String(),
			Timestamp:   entry.Timestamp.UTC(),
			Description: entry.Description,
		}
	}

	raw, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("marshal tracking history: %w", err)
	}
	return raw, nil
}

func statusStrings(statuses []entities.ParcelStatusType) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = s.String()
	}
	return result
}
