package entities

import "time"

type ActivityEntry struct {
	ID          int64
	Title       string
	Description string
	Category    ActivityCategory
	Icon        string
	CreatedAt   time.Time
}

type ActivityCategory string

const (
	ActivityParcel   ActivityCategory = "parcel"
	ActivityDelivery ActivityCategory = "delivery"
	ActivityUser     ActivityCategory = "user"
)

func (c ActivityCategory) String() string {
	return string(c)
}
