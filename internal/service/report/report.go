package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"pathport/internal/entities"
	"pathport/internal/pkg/access"
)

type Report struct {
	repository Repository
	now        func() time.Time
}

func New(repository Repository) *Report {
	return &Report{
		repository: repository,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Stats сводка для админки, запросы независимые и идут параллельно
func (s *Report) Stats(ctx context.Context, actor entities.Actor) (*entities.DashboardStats, error) {
	if err := access.Require(actor, access.StatsRead); err != nil {
		return nil, err
	}

	var stats entities.DashboardStats
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		stats.UsersByRole, err = s.repository.CountUsersByRole(ctx)
		return err
	})
	group.Go(func() error {
		var err error
		stats.ActivePartners, err = s.repository.CountActivePartners(ctx)
		return err
	})
	group.Go(func() error {
		var err error
		stats.ParcelsByStatus, err = s.repository.CountParcelsByStatus(ctx)
		return err
	})
	group.Go(func() error {
		var err error
		stats.DeliveredToday, err = s.repository.CountDeliveredSince(ctx, startOfDay)
		return err
	})
	group.Go(func() error {
		var err error
		stats.RewardPointsPaid, err = s.repository.SumRewardPointsPaid(ctx)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	for status, count := range stats.ParcelsByStatus {
		if !status.Terminal() {
			stats.ActiveParcels += count
		}
	}

	return &stats, nil
}

// RefreshParcelGauges для фоновой задачи, права не проверяет
func (s *Report) RefreshParcelGauges(ctx context.Context) (int64, error) {
	counts, err := s.repository.CountParcelsByStatus(ctx)
	if err != nil {
		return 0, fmt.Errorf("refresh parcel gauges: %w", err)
	}

	var total int64
	for _, status := range entities.AllParcelStatuses {
		count := counts[status]
		ParcelsByStatus.WithLabelValues(status.String()).Set(float64(count))
		total += count
	}
	return total, nil
}
