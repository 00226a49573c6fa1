//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_claim_post_test
package parcel_claim_post

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
	ClaimParcel(ctx context.Context, actor entities.Actor, parcelID int64) (*entities.Parcel, error)
}
