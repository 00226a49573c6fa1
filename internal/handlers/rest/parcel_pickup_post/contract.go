//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_pickup_post_test
package parcel_pickup_post

import (
	"context"

	"pathport/internal/entities"
	"pathport/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	VerifyPickup(ctx context.Context, actor entities.Actor, orderID string, code string) (*entities.Parcel, error)
}
