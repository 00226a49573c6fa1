package activity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pathport/internal/entities"
	"pathport/internal/pkg/access"
	"pathport/pkg/logger"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 100

	// запись в ленту не должна зависеть от того, что клиент уже отключился
	recordTimeout = 3 * time.Second
)

type Activity struct {
	repository Repository
	publisher  Publisher
	log        serviceLogger
	now        func() time.Time
}

// New publisher может быть nil, тогда Record пишет сразу в repository
func New(log serviceLogger, repository Repository, publisher Publisher) *Activity {
	return &Activity{
		repository: repository,
		publisher:  publisher,
		log:        log.With(logger.NewField("service", "activity")),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Record никогда не возвращает ошибку: лента информационная, на бизнес операцию она не влияет.
// Сначала kafka, при неудаче прямая запись в postgres, при неудаче только лог.
func (s *Activity) Record(ctx context.Context, entry entities.ActivityEntry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}

	entryLog := s.log.With(
		logger.NewField("title", entry.Title),
		logger.NewField("category", entry.Category.String()),
	)

	if err := validateEntry(&entry); err != nil {
		entryLog.Warn("activity entry dropped", logger.NewField("error", err))
		RecordedTotal.WithLabelValues(sinkDropped).Inc()
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	publishErr := errPublisherDisabled
	if s.publisher != nil {
		publishErr = s.publisher.Publish(ctx, entry)
	}
	if publishErr == nil {
		entryLog.Debug("activity entry published")
		RecordedTotal.WithLabelValues(sinkKafka).Inc()
		return
	}

	entryLog.Warn("activity publish failed, writing directly",
		logger.NewField("error", publishErr),
	)

	if _, err := s.repository.Append(ctx, entry); err != nil {
		entryLog.Error("activity entry lost",
			logger.NewField("publish_error", publishErr),
			logger.NewField("error", err),
		)
		RecordedTotal.WithLabelValues(sinkDropped).Inc()
		return
	}
	RecordedTotal.WithLabelValues(sinkPostgres).Inc()
}

// Append вызывается воркером для событий из топика
func (s *Activity) Append(ctx context.Context, entry entities.ActivityEntry) (*entities.ActivityEntry, error) {
	if err := validateEntry(&entry); err != nil {
		return nil, err
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}

	stored, err := s.repository.Append(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("append activity: %w", err)
	}
	return stored, nil
}

func (s *Activity) Recent(ctx context.Context, actor entities.Actor, limit int) ([]entities.ActivityEntry, error) {
	if err := access.Require(actor, access.ActivityRead); err != nil {
		return nil, err
	}

	if limit == 0 {
		limit = defaultRecentLimit
	}
	if limit < 1 || limit > maxRecentLimit {
		return nil, ErrInvalidLimit
	}

	entries, err := s.repository.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	return entries, nil
}

func validateEntry(entry *entities.ActivityEntry) error {
	entry.Title = strings.TrimSpace(entry.Title)
	entry.Description = strings.TrimSpace(entry.Description)
	if entry.Title == "" || entry.Description == "" {
		return ErrInvalidEntry
	}

	switch entry.Category {
	case entities.ActivityParcel, entities.ActivityDelivery, entities.ActivityUser:
		return nil
	default:
		return ErrInvalidEntry
	}
}
