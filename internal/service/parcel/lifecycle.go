package parcel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pathport/internal/entities"
	"pathport/internal/pkg/access"
	"pathport/internal/pkg/factory/verification_code"
	"pathport/internal/service/user"
)

const (
	gatePickup   = "pickup"
	gateDelivery = "delivery"
)

// ClaimParcel pending -> assigned.
// Гонку двух партнеров решает условный UPDATE ... WHERE status = 'pending': проигравший получает 0 строк.
// Строка партнера под FOR SHARE до коммита, поэтому блокировка аккаунта либо ждет claim
// и потом возвращает посылку в pending, либо проходит первой и claim видит suspended.
func (p *Parcel) ClaimParcel(ctx context.Context, actor entities.Actor, parcelID int64) (parcel *entities.Parcel, err error) {
	defer func() { observeTransition(entities.ParcelAssigned.String(), err) }()

	if err := access.Require(actor, access.ParcelClaim); err != nil {
		return nil, err
	}

	var claimed *entities.Parcel
	err = p.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		partner, err := p.lockActivePartner(ctx, actor)
		if err != nil {
			return err
		}

		now := p.now()
		claimed, err = p.repository.Transition(ctx, entities.ParcelTransition{
			ParcelID:     parcelID,
			From:         []entities.ParcelStatusType{entities.ParcelPending},
			To:           entities.ParcelAssigned,
			SetPartnerID: &actor.UserID,
			At:           now,
			Entry: entities.TrackingEntry{
				Status:      entities.ParcelAssigned,
				Timestamp:   now,
				Description: "Assigned to " + partner.Name,
			},
		})
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrTransitionRejected):
			return nil, p.classifyClaimRejection(ctx, parcelID)
		case errors.Is(err, ErrPartnerNotAllowed):
			return nil, err
		default:
			return nil, fmt.Errorf("claim parcel: %w", err)
		}
	}

	redacted := claimed.Redacted()
	return &redacted, nil
}

// VerifyPickup assigned -> picked_up.
// Порядок проверок: посылка существует, партнер назначен, статус assigned, и только потом код.
// Повторное предъявление уже использованного кода дает ErrInvalidTransition.
func (p *Parcel) VerifyPickup(ctx context.Context, actor entities.Actor, orderID, code string) (parcel *entities.Parcel, err error) {
	defer func() {
		observeTransition(entities.ParcelPickedUp.String(), err)
		CodeVerificationsTotal.WithLabelValues(gatePickup, outcome(err)).Inc()
	}()

	current, partner, err := p.prepareVerification(ctx, actor, orderID, code, entities.ParcelAssigned)
	if err != nil {
		return nil, err
	}

	if !verification_code.Match(current.PickupCode, strings.TrimSpace(code)) {
		return nil, ErrCodeMismatch
	}

	now := p.now()
	pickedUp, err := p.repository.Transition(ctx, entities.ParcelTransition{
		ParcelID:         current.ID,
		From:             []entities.ParcelStatusType{entities.ParcelAssigned},
		To:               entities.ParcelPickedUp,
		RequirePartnerID: &actor.UserID,
		At:               now,
		Entry: entities.TrackingEntry{
			Status:      entities.ParcelPickedUp,
			Timestamp:   now,
			Description: fmt.Sprintf("Parcel picked up by %s.", partner.Name),
		},
	})
	if err != nil {
		if errors.Is(err, ErrTransitionRejected) {
			return nil, p.classifyVerifyRejection(ctx, actor, current.ID, entities.ParcelAssigned)
		}
		return nil, fmt.Errorf("pickup parcel: %w", err)
	}

	redacted := pickedUp.Redacted()
	return &redacted, nil
}

// VerifyDelivery picked_up -> delivered и начисление баллов партнеру.
// Начисление в той же транзакции и только если условный переход из picked_up прошел,
// поэтому повторный запрос не начислит второй раз.
func (p *Parcel) VerifyDelivery(ctx context.Context, actor entities.Actor, orderID, code string) (parcel *entities.Parcel, err error) {
	defer func() {
		observeTransition(entities.ParcelDelivered.String(), err)
		CodeVerificationsTotal.WithLabelValues(gateDelivery, outcome(err)).Inc()
	}()

	current, partner, err := p.prepareVerification(ctx, actor, orderID, code, entities.ParcelPickedUp)
	if err != nil {
		return nil, err
	}

	if !verification_code.Match(current.DeliveryCode, strings.TrimSpace(code)) {
		return nil, ErrCodeMismatch
	}

	now := p.now()
	var delivered *entities.Parcel
	err = p.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		var err error
		delivered, err = p.repository.Transition(ctx, entities.ParcelTransition{
			ParcelID:         current.ID,
			From:             []entities.ParcelStatusType{entities.ParcelPickedUp},
			To:               entities.ParcelDelivered,
			RequirePartnerID: &actor.UserID,
			At:               now,
			Entry: entities.TrackingEntry{
				Status:      entities.ParcelDelivered,
				Timestamp:   now,
				Description: fmt.Sprintf("Parcel delivered successfully to %s.", current.ReceiverName),
			},
		})
		if err != nil {
			return err
		}

		err = p.users.CreditDelivery(ctx, actor.UserID, delivered.RewardPoints)
		if err != nil {
			return fmt.Errorf("credit delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTransitionRejected) {
			return nil, p.classifyVerifyRejection(ctx, actor, current.ID, entities.ParcelPickedUp)
		}
		return nil, fmt.Errorf("deliver parcel: %w", err)
	}

	p.activity.Record(ctx, entities.ActivityEntry{
		Title:       "Parcel Delivered",
		Description: fmt.Sprintf("Parcel '%s' was delivered by %s.", delivered.OrderID, partner.Name),
		Category:    entities.ActivityDelivery,
		Icon:        "fa-check-circle",
	})

	redacted := delivered.Redacted()
	return &redacted, nil
}

// CancelParcel pending -> cancelled, отправитель-владелец или админ
func (p *Parcel) CancelParcel(ctx context.Context, actor entities.Actor, parcelID int64) (parcel *entities.Parcel, err error) {
	defer func() { observeTransition(entities.ParcelCancelled.String(), err) }()

	if err := access.Require(actor, access.ParcelCancel); err != nil {
		return nil, err
	}

	current, err := p.repository.GetByID(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	if actor.Role == entities.RoleSender && current.SenderID != actor.UserID {
		return nil, ErrNotParcelOwner
	}
	if current.Status != entities.ParcelPending {
		return nil, fmt.Errorf("%w: cannot cancel a %s parcel", ErrInvalidTransition, current.Status)
	}

	canceller := "sender"
	if actor.IsAdmin() {
		canceller = "admin"
	}

	actorUser, err := p.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}

	now := p.now()
	cancelled, err := p.repository.Transition(ctx, entities.ParcelTransition{
		ParcelID: current.ID,
		From:     []entities.ParcelStatusType{entities.ParcelPending},
		To:       entities.ParcelCancelled,
		At:       now,
		Entry: entities.TrackingEntry{
			Status:      entities.ParcelCancelled,
			Timestamp:   now,
			Description: fmt.Sprintf("Parcel cancelled by %s.", canceller),
		},
	})
	if err != nil {
		if errors.Is(err, ErrTransitionRejected) {
			// посылку успели забрать или отменить между чтением и записью
			return nil, fmt.Errorf("%w: parcel is no longer pending", ErrInvalidTransition)
		}
		return nil, fmt.Errorf("cancel parcel: %w", err)
	}

	p.activity.Record(ctx, entities.ActivityEntry{
		Title:       "Parcel Cancelled",
		Description: fmt.Sprintf("Parcel '%s' was cancelled by %s.", cancelled.OrderID, actorUser.Name),
		Category:    entities.ActivityParcel,
		Icon:        "fa-times-circle",
	})

	return cancelled, nil
}

// ReleasePartnerParcels возвращает assigned/picked_up посылки партнера в pending.
// Вызывается из каскадов блокировки и удаления пользователя, внутри их транзакции.
func (p *Parcel) ReleasePartnerParcels(ctx context.Context, partnerID int64, reason string) (int, error) {
	now := p.now()
	orderIDs, err := p.repository.ReleaseByPartner(ctx, partnerID, entities.TrackingEntry{
		Status:      entities.ParcelPending,
		Timestamp:   now,
		Description: reason,
	})
	if err != nil {
		return 0, fmt.Errorf("release partner parcels: %w", err)
	}

	ReleasedParcelsTotal.Add(float64(len(orderIDs)))
	return len(orderIDs), nil
}

// activePartner - партнер существует, не удален и не заблокирован
func (p *Parcel) activePartner(ctx context.Context, actor entities.Actor) (*entities.User, error) {
	return ensureActivePartner(p.users.GetByID(ctx, actor.UserID))
}

func (p *Parcel) lockActivePartner(ctx context.Context, actor entities.Actor) (*entities.User, error) {
	return ensureActivePartner(p.users.GetByIDForShare(ctx, actor.UserID))
}

func ensureActivePartner(partner *entities.User, err error) (*entities.User, error) {
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrPartnerNotAllowed
		}
		return nil, fmt.Errorf("get partner: %w", err)
	}

	if !partner.Active() || partner.Role != entities.RolePartner {
		return nil, ErrPartnerNotAllowed
	}
	return partner, nil
}

func (p *Parcel) prepareVerification(
	ctx context.Context,
	actor entities.Actor,
	orderID, code string,
	expected entities.ParcelStatusType,
) (*entities.Parcel, *entities.User, error) {
	if err := access.Require(actor, access.ParcelVerifyCode); err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(orderID) == "" || strings.TrimSpace(code) == "" {
		return nil, nil, ErrMissingRequiredFields
	}
	if !isValidOrderID(orderID) {
		return nil, nil, ErrInvalidOrderID
	}

	current, err := p.repository.GetByOrderID(ctx, strings.TrimSpace(orderID))
	if err != nil {
		return nil, nil, fmt.Errorf("get parcel: %w", err)
	}
	if !current.AssignedTo(actor.UserID) {
		return nil, nil, ErrNotAssignedPartner
	}
	if current.Status != expected {
		return nil, nil, fmt.Errorf("%w: parcel is %s, expected %s", ErrInvalidTransition, current.Status, expected)
	}

	partner, err := p.activePartner(ctx, actor)
	if err != nil {
		return nil, nil, err
	}

	return current, partner, nil
}

// classifyClaimRejection перечитывает посылку только чтобы выбрать ошибку, состояние не меняет
func (p *Parcel) classifyClaimRejection(ctx context.Context, parcelID int64) error {
	current, err := p.repository.GetByID(ctx, parcelID)
	if err != nil {
		return fmt.Errorf("claim parcel: %w", err)
	}

	if current.Status.Terminal() {
		return fmt.Errorf("%w: parcel is %s", ErrInvalidTransition, current.Status)
	}
	return ErrAlreadyClaimed
}

func (p *Parcel) classifyVerifyRejection(
	ctx context.Context,
	actor entities.Actor,
	parcelID int64,
	expected entities.ParcelStatusType,
) error {
	current, err := p.repository.GetByID(ctx, parcelID)
	if err != nil {
		return fmt.Errorf("verify code: %w", err)
	}

	if !current.AssignedTo(actor.UserID) {
		return ErrNotAssignedPartner
	}
	return fmt.Errorf("%w: parcel is %s, expected %s", ErrInvalidTransition, current.Status, expected)
}
