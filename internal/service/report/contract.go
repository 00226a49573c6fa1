//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"context"
	"time"

	"pathport/internal/entities"
)

type Repository interface {
	CountUsersByRole(ctx context.Context) (map[entities.UserRole]int64, error)
	CountActivePartners(ctx context.Context) (int64, error)
	CountParcelsByStatus(ctx context.Context) (map[entities.ParcelStatusType]int64, error)
	CountDeliveredSince(ctx context.Context, since time.Time) (int64, error)
	SumRewardPointsPaid(ctx context.Context) (int64, error)
}
