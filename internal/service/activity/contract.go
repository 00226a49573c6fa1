//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=activity_test
package activity

import (
	"context"

	"pathport/internal/entities"
	"pathport/pkg/logger"
)

type Repository interface {
	Append(ctx context.Context, entry entities.ActivityEntry) (*entities.ActivityEntry, error)
	Recent(ctx context.Context, limit int) ([]entities.ActivityEntry, error)
}

// Publisher - kafka gateway, воркер потом пишет событие в Repository
type Publisher interface {
	Publish(ctx context.Context, entry entities.ActivityEntry) error
}

type serviceLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
