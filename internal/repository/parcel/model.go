package parcel

import "time"

type ParcelDB struct {
	ID                int64
	OrderID           string
	SenderID          int64
	DeliveryPartnerID *int64
	Title             string
	Description       string
	PickupLocation    string
	DeliveryLocation  string
	ReceiverName      string
	ReceiverPhone     string
	ReceiverEmail     string
	Weight            float64
	Size              string
	Urgency           string
	PickupCode        string
	DeliveryCode      string
	Status            string
	RewardPoints      int64
	TrackingHistory   []TrackingEntryDB
	CreatedAt         time.Time
	AssignedAt        *time.Time
	PickedUpAt        *time.Time
	DeliveredAt       *time.Time
	CancelledAt       *time.Time
}

// TrackingEntryDB элемент JSONB массива tracking_history
type TrackingEntryDB struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}
