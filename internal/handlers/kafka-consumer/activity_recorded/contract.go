//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=activity_recorded_test
package activity_recorded

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
	Append(ctx context.Context, entry entities.ActivityEntry) (*entities.ActivityEntry, error)
}
