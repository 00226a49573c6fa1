package entities

import "time"

type Parcel struct {
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
	Size              ParcelSize
	Urgency           ParcelUrgency
	PickupCode        string
	DeliveryCode      string
	Status            ParcelStatusType
	RewardPoints      int64
	TrackingHistory   []TrackingEntry
	CreatedAt         time.Time
	AssignedAt        *time.Time
	PickedUpAt        *time.Time
	DeliveredAt       *time.Time
	CancelledAt       *time.Time
}

// Redacted копия без кодов подтверждения
func (p Parcel) Redacted() Parcel {
	p.PickupCode = ""
	p.DeliveryCode = ""
	p.TrackingHistory = append([]TrackingEntry(nil), p.TrackingHistory...)
	return p
}

// AssignedTo - посылка сейчас закреплена за партнером partnerID
func (p *Parcel) AssignedTo(partnerID int64) bool {
	return p.DeliveryPartnerID != nil && *p.DeliveryPartnerID == partnerID
}

type ParcelStatusType string

const (
	ParcelPending   ParcelStatusType = "pending"
	ParcelAssigned  ParcelStatusType = "assigned"
	ParcelPickedUp  ParcelStatusType = "picked_up"
	ParcelDelivered ParcelStatusType = "delivered"
	ParcelCancelled ParcelStatusType = "cancelled"
)

func (s ParcelStatusType) String() string {
	return string(s)
}

// HasPartner статусы, в которых у посылки обязан быть партнер
func (s ParcelStatusType) HasPartner() bool {
	switch s {
	case ParcelAssigned, ParcelPickedUp, ParcelDelivered:
		return true
	default:
		return false
	}
}

func (s ParcelStatusType) Terminal() bool {
	return s == ParcelDelivered || s == ParcelCancelled
}

type ParcelSize string

const (
	SizeSmall  ParcelSize = "small"
	SizeMedium ParcelSize = "medium"
	SizeLarge  ParcelSize = "large"
)

func (s ParcelSize) String() string {
	return string(s)
}

type ParcelUrgency string

const (
	UrgencyNormal  ParcelUrgency = "normal"
	UrgencyExpress ParcelUrgency = "express"
	UrgencyUrgent  ParcelUrgency = "urgent"
)

func (u ParcelUrgency) String() string {
	return string(u)
}

const DefaultRewardPoints int64 = 10

type TrackingEntry struct {
	Status      ParcelStatusType
	Timestamp   time.Time
	Description string
}

// ParcelModify входные данные создания посылки, опциональные поля - nil
type ParcelModify struct {
	SenderID         *int64
	OrderID          *string
	Title            *string
	Description      *string
	PickupLocation   *string
	DeliveryLocation *string
	ReceiverName     *string
	ReceiverPhone    *string
	ReceiverEmail    *string
	Weight           *float64
	Size             *ParcelSize
	Urgency          *ParcelUrgency
	RewardPoints     *int64
	PickupCode       *string
	DeliveryCode     *string
	CreatedAt        *time.Time
	History          []TrackingEntry
}

// ParcelTransition один условный переход статуса.
// Применяется одним UPDATE: если статус (и партнер, если задан) не совпал - строка не меняется.
type ParcelTransition struct {
	ParcelID int64
	From     []ParcelStatusType
	To       ParcelStatusType

	// RequirePartnerID проверка что посылка закреплена за этим партнером
	RequirePartnerID *int64
	// SetPartnerID назначить партнера (claim)
	SetPartnerID *int64
	// ClearPartner снять партнера (возврат в pending, никогда вместе с SetPartnerID)
	ClearPartner bool

	At    time.Time
	Entry TrackingEntry
}

type ParcelFilter struct {
	SenderID  *int64
	PartnerID *int64
	Status    *ParcelStatusType
	Limit     uint64
}

type Earnings struct {
	Parcels          []Parcel
	DeliveredParcels int64
	PointsEarned     int64
}
