package entities

import "time"

type User struct {
	ID               int64
	Name             string
	Email            string
	Phone            string
	PasswordHash     string
	Role             UserRole
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

// Active - может работать с системой (не удален и не заблокирован)
func (u *User) Active() bool {
	return u.DeletedAt == nil && !u.Suspended
}

func (u *User) AccountStatus() UserAccountStatus {
	switch {
	case u.Suspended:
		return AccountSuspended
	case u.Verified:
		return AccountVerified
	default:
		return AccountPending
	}
}

type UserRole string

const (
	RoleSender  UserRole = "sender"
	RolePartner UserRole = "delivery_partner"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

type UserAccountStatus string

const (
	AccountVerified  UserAccountStatus = "verified"
	AccountPending   UserAccountStatus = "pending"
	AccountSuspended UserAccountStatus = "suspended"
)

func (s UserAccountStatus) String() string {
	return string(s)
}

const DefaultUserRating = 5.0

type UserModify struct {
	ID           *int64
	Name         *string
	Email        *string
	Phone        *string
	Password     *string // открытый пароль, до репозитория не доходит
	PasswordHash *string
	Role         *UserRole
	Verified     *bool
	Suspended    *bool
}

type UserFilter struct {
	Query  string
	Role   *UserRole
	Status *UserAccountStatus
	Limit  uint64
}
