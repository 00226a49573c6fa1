package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"pathport/internal/entities"
	retrierconfig "pathport/pkg/retrier"
	"pathport/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 50 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Gateway struct {
	producer producer
	retrier  retrier
	topic    string
}

func New(producer producer, topic string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
	}
}

// Publish ключ сообщения - категория, события одной категории идут в одну партицию
func (g *Gateway) Publish(ctx context.Context, entry entities.ActivityEntry) error {
	payload, err := json.Marshal(fromDomain(&entry))
	if err != nil {
		return fmt.Errorf("gateway activity, marshal: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     g.topic,
		Key:       sarama.StringEncoder(entry.Category.String()),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: entry.CreatedAt,
	}

	err = g.executeWithMetrics(ctx, func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _, err := g.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway activity, publish: %w", err)
	}
	return nil
}

func isRetryable(err error) bool {
	switch {
	case errors.Is(err, sarama.ErrOutOfBrokers),
		errors.Is(err, sarama.ErrNotEnoughReplicas),
		errors.Is(err, sarama.ErrNotEnoughReplicasAfterAppend),
		errors.Is(err, sarama.ErrLeaderNotAvailable),
		errors.Is(err, sarama.ErrNotLeaderForPartition),
		errors.Is(err, sarama.ErrRequestTimedOut):
		return true
	default:
		return false
	}
}

func (g *Gateway) executeWithMetrics(ctx context.Context, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	result := resultLabel(err)
	GatewayPublishDuration.WithLabelValues(g.topic, result).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(g.topic, result).Inc()
	}

	return err
}

func resultLabel(err error) string {
	if err == nil {
		return "OK"
	}

	var kerr sarama.KError
	if errors.As(err, &kerr) {
		return kerr.Error()
	}
	if errors.Is(err, sarama.ErrOutOfBrokers) {
		return "OUT_OF_BROKERS"
	}
	return "UNKNOWN"
}
