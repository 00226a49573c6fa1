package parcel_stats

import (
	"context"
	"time"

	"pathport/pkg/logger"
)

type Service interface {
	RefreshParcelGauges(ctx context.Context) (int64, error)
}

// ParcelStats обновляет gauge parcels_by_status, только чтение
type ParcelStats struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewParcelStats(log logger.Logger, service Service, interval time.Duration) *ParcelStats {
	return &ParcelStats{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *ParcelStats) TTL() time.Duration {
	return p.interval
}

func (p *ParcelStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	total, err := p.service.RefreshParcelGauges(ctxWithTimeout)
	if err != nil {
		return err
	}

	p.log.With(
		logger.NewField("parcels_total", total),
	).Debug("parcel stats refreshed")

	return nil
}

func (p *ParcelStats) Info() string {
	return "parcel stats"
}
