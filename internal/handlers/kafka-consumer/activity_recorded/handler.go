package activity_recorded

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	gatewayactivity "pathport/internal/gateway/kafka/activity"
	"pathport/internal/service/activity"
	"pathport/pkg/logger"
)

type Handler struct {
	activityService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, activityService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		activityService:          activityService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("activity.recorded: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("activity.recorded: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без коммита offset:
// сообщение будет перечитано после перезапуска сессии.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event gatewayactivity.Event
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("activity.recorded handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("title", event.Title),
		logger.NewField("category", event.Category),
		logger.NewField("offset", message.Offset),
	)

	entry, err := h.activityService.Append(ctx, event.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, activity.ErrValidation):
			// битое событие не станет валидным при повторе
			msgLog.With(
				logger.NewField("error", err),
			).Warn("activity.recorded handler dropped invalid entry")
			sess.MarkMessage(message, "")
			return false

		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("activity.recorded handler context cancelled, message will be reprocessed")
			return true

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("activity.recorded handler failed to store entry, message will be reprocessed")
			return true
		}
	}

	msgLog.With(
		logger.NewField("entry", entry.ID),
	).Debug("activity.recorded: processed")

	sess.MarkMessage(message, "")
	return false
}
