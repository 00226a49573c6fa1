//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"pathport/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
	Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	// GetByIDForUpdate блокирует строку до конца транзакции
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Search(ctx context.Context, filter entities.UserFilter) ([]entities.User, error)
	SoftDelete(ctx context.Context, id int64) error
}

// ParcelReleaser возвращает посылки партнера в общий пул
type ParcelReleaser interface {
	ReleasePartnerParcels(ctx context.Context, partnerID int64, reason string) (int, error)
}

type RouteRemover interface {
	DeleteByPartner(ctx context.Context, partnerID int64) (int64, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type ActivityRecorder interface {
	Record(ctx context.Context, entry entities.ActivityEntry)
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
