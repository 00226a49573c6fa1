//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=users_export_get_test
package users_export_get

import (
	"context"
	"io"

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
	ExportUsers(ctx context.Context, actor entities.Actor, filter entities.UserFilter, w io.Writer) error
}
