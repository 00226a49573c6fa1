//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcels_available_get_test
package parcels_available_get

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
	ListAvailable(ctx context.Context, actor entities.Actor) ([]entities.Parcel, error)
}
