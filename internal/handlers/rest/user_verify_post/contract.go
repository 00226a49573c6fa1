//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_verify_post_test
package user_verify_post

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
	VerifyUser(ctx context.Context, actor entities.Actor, id int64) (*entities.User, error)
}
