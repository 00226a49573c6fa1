package access

import (
	"errors"
	"fmt"

	"pathport/internal/entities"
)

var ErrPermissionDenied = errors.New("permission denied")

type Capability string

const (
	ParcelCreate     Capability = "parcel:create"
	ParcelList       Capability = "parcel:list"
	ParcelRead       Capability = "parcel:read"
	ParcelClaim      Capability = "parcel:claim"
	ParcelVerifyCode Capability = "parcel:verify_code"
	ParcelCancel     Capability = "parcel:cancel"
	RouteManage      Capability = "route:manage"
	EarningsRead     Capability = "earnings:read"
	ProfileRead      Capability = "profile:read"
	UserManage       Capability = "user:manage"
	ActivityRead     Capability = "activity:read"
	StatsRead        Capability = "stats:read"
)

// единственная таблица роль -> возможности, и middleware и сервисы смотрят сюда
var capabilities = map[entities.UserRole]map[Capability]struct{}{
	entities.RoleSender: set(
		ParcelCreate,
		ParcelList,
		ParcelRead,
		ParcelCancel,
		ProfileRead,
	),
	entities.RolePartner: set(
		ParcelList,
		ParcelRead,
		ParcelClaim,
		ParcelVerifyCode,
		RouteManage,
		EarningsRead,
		ProfileRead,
	),
	entities.RoleAdmin: set(
		ParcelList,
		ParcelRead,
		ParcelCancel,
		ProfileRead,
		UserManage,
		ActivityRead,
		StatsRead,
	),
}

func set(caps ...Capability) map[Capability]struct{} {
	m := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		m[c] = struct{}{}
	}
	return m
}

func Allowed(role entities.UserRole, capability Capability) bool {
	_, ok := capabilities[role][capability]
	return ok
}

// Require возвращает ошибку, оборачивающую ErrPermissionDenied, если у роли нет возможности
func Require(actor entities.Actor, capability Capability) error {
	if !Allowed(actor.Role, capability) {
		return fmt.Errorf("%s cannot %s: %w", actor.Role, capability, ErrPermissionDenied)
	}
	return nil
}
