package user

import "time"

type UserDB struct {
	ID               int64
	Name             string
	Email            string
	Phone            string
	PasswordHash     string
	Role             string
	Verified         bool
	Suspended        bool
	TotalParcels     int64
	DeliveredParcels int64
	PointsEarned     int64
	Rating           float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type UserModifyDB struct {
	ID           *int64
	Name         *string
	Email        *string
	Phone        *string
	PasswordHash *string
	Role         *string
	Verified     *bool
	Suspended    *bool
}
