package app

import (
	"context"

	"pathport/internal/entities"
	"pathport/internal/handlers/rest/activity_get"
	"pathport/internal/handlers/rest/auth_login_post"
	"pathport/internal/handlers/rest/auth_logout_post"
	"pathport/internal/handlers/rest/auth_register_post"
	"pathport/internal/handlers/rest/earnings_get"
	"pathport/internal/handlers/rest/parcel_cancel_post"
	"pathport/internal/handlers/rest/parcel_claim_post"
	"pathport/internal/handlers/rest/parcel_deliver_post"
	"pathport/internal/handlers/rest/parcel_get"
	"pathport/internal/handlers/rest/parcel_pickup_post"
	"pathport/internal/handlers/rest/parcel_post"
	"pathport/internal/handlers/rest/parcels_available_get"
	"pathport/internal/handlers/rest/parcels_get"
	"pathport/internal/handlers/rest/profile_get"
	"pathport/internal/handlers/rest/profile_put"
	"pathport/internal/handlers/rest/route_delete"
	"pathport/internal/handlers/rest/route_post"
	"pathport/internal/handlers/rest/route_toggle_post"
	"pathport/internal/handlers/rest/routes_get"
	"pathport/internal/handlers/rest/stats_get"
	"pathport/internal/handlers/rest/tracking_get"
	"pathport/internal/handlers/rest/user_delete"
	"pathport/internal/handlers/rest/user_post"
	"pathport/internal/handlers/rest/user_suspend_post"
	"pathport/internal/handlers/rest/user_verify_post"
	"pathport/internal/handlers/rest/users_export_get"
	"pathport/internal/handlers/rest/users_get"
	"pathport/internal/pkg/middlewares/auth"
)

type ServiceUser interface {
	auth_register_post.Service
	profile_get.Service
	profile_put.Service
	user_post.Service
	users_get.Service
	users_export_get.Service
	user_verify_post.Service
	user_suspend_post.Service
	user_delete.Service

	EnsureAdmin(ctx context.Context, email, password, name string) (*entities.User, bool, error)
}

type ServiceAuth interface {
	auth_login_post.Service
	auth_logout_post.Service
	auth.Authenticator
}

type ServiceParcel interface {
	parcel_post.Service
	parcels_get.Service
	parcels_available_get.Service
	parcel_get.Service
	parcel_claim_post.Service
	parcel_cancel_post.Service
	parcel_pickup_post.Service
	parcel_deliver_post.Service
	tracking_get.Service
	earnings_get.Service
}

type ServiceRoute interface {
	routes_get.Service
	route_post.Service
	route_toggle_post.Service
	route_delete.Service
}

type ServiceActivity interface {
	activity_get.Service
}

type ServiceReport interface {
	stats_get.Service
}
