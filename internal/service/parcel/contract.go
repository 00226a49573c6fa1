//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"pathport/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.Parcel, error)
	List(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error)

	Transition(ctx context.Context, transition entities.ParcelTransition) (*entities.Parcel, error)
	ReleaseByPartner(ctx context.Context, partnerID int64, entry entities.TrackingEntry) ([]string, error)
}

// UserRepository - счетчики Identity Store, которые двигает жизненный цикл посылки
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	// GetByIDForShare держит строку пользователя до конца транзакции
	GetByIDForShare(ctx context.Context, id int64) (*entities.User, error)
	IncrementTotalParcels(ctx context.Context, senderID int64) error
	CreditDelivery(ctx context.Context, partnerID int64, points int64) error
}

type ActivityRecorder interface {
	Record(ctx context.Context, entry entities.ActivityEntry)
}

type OrderIDFactory interface {
	NewOrderID() (string, error)
}

type CodeFactory interface {
	NewCode() (string, error)
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
