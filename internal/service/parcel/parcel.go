package parcel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pathport/internal/entities"
	"pathport/internal/pkg/access"
	retrierconfig "pathport/pkg/retrier"
	"pathport/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 10 * time.Millisecond
	maxInterval     = 100 * time.Millisecond
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Config struct {
	OrderIDAttempts     int
	DefaultRewardPoints int64
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type Parcel struct {
	repository Repository
	users      UserRepository
	activity   ActivityRecorder
	orderIDs   OrderIDFactory
	codes      CodeFactory
	txManager  TxManager
	config     Config

	// nil, если на генерацию order id дана одна попытка
	orderIDRetrier retrier
	now            func() time.Time
}

func New(
	repository Repository,
	users UserRepository,
	activity ActivityRecorder,
	orderIDs OrderIDFactory,
	codes CodeFactory,
	txManager TxManager,
	config Config,
) *Parcel {
	if config.OrderIDAttempts < 1 {
		config.OrderIDAttempts = 1
	}

	p := &Parcel{
		repository: repository,
		users:      users,
		activity:   activity,
		orderIDs:   orderIDs,
		codes:      codes,
		txManager:  txManager,
		config:     config,
		now:        func() time.Time { return time.Now().UTC() },
	}

	if config.OrderIDAttempts > 1 {
		p.orderIDRetrier = backoff_adapter.New(retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			Randomization:   randomization,
			Multiplier:      multiplier,
			MaxRetries:      uint64(config.OrderIDAttempts - 1),
			ShouldRetry: func(err error) bool {
				return errors.Is(err, ErrOrderIDConflict)
			},
		})
	}

	return p
}

func (p *Parcel) CreateParcel(ctx context.Context, actor entities.Actor, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if err := access.Require(actor, access.ParcelCreate); err != nil {
		return nil, err
	}
	if err := validateParcelModify(&parcelModify, p.config.DefaultRewardPoints); err != nil {
		return nil, err
	}

	sender, err := p.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("get sender: %w", err)
	}

	pickupCode, err := p.codes.NewCode()
	if err != nil {
		return nil, fmt.Errorf("pickup code: %w", err)
	}
	deliveryCode, err := p.codes.NewCode()
	if err != nil {
		return nil, fmt.Errorf("delivery code: %w", err)
	}

	createdAt := p.now()
	parcelModify.SenderID = &actor.UserID
	parcelModify.PickupCode = &pickupCode
	parcelModify.DeliveryCode = &deliveryCode
	parcelModify.CreatedAt = &createdAt
	parcelModify.History = []entities.TrackingEntry{{
		Status:      entities.ParcelPending,
		Timestamp:   createdAt,
		Description: "Parcel registered",
	}}

	var created *entities.Parcel

	// каждая попытка - своя транзакция, после конфликта order_id ничего не остается
	attempt := func(ctx context.Context) error {
		orderID, err := p.orderIDs.NewOrderID()
		if err != nil {
			return fmt.Errorf("order id: %w", err)
		}
		parcelModify.OrderID = &orderID

		// INSERT и инкремент счетчика - по одному выражению, serializable дал бы 40001 на двойном submit
		err = p.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
			parcel, err := p.repository.Create(ctx, parcelModify)
			if err != nil {
				return fmt.Errorf("create parcel: %w", err)
			}

			err = p.users.IncrementTotalParcels(ctx, actor.UserID)
			if err != nil {
				return fmt.Errorf("increment sender parcels: %w", err)
			}

			created = parcel
			return nil
		})
		if errors.Is(err, ErrOrderIDConflict) {
			OrderIDCollisionsTotal.Inc()
		}
		return err
	}

	if p.orderIDRetrier != nil {
		err = p.orderIDRetrier.ExecuteWithContext(ctx, attempt)
	} else {
		err = attempt(ctx)
	}
	if err != nil {
		if errors.Is(err, ErrOrderIDConflict) {
			return nil, fmt.Errorf("%w after %d attempts", ErrDuplicateIdentifier, p.config.OrderIDAttempts)
		}
		return nil, err
	}

	p.activity.Record(ctx, entities.ActivityEntry{
		Title:       "New Parcel",
		Description: fmt.Sprintf("Parcel '%s' created by %s.", created.Title, sender.Name),
		Category:    entities.ActivityParcel,
		Icon:        "fa-box",
	})

	return created, nil
}

// GetParcel - владелец-отправитель, назначенный партнер или админ.
// Партнеры видят и pending посылки (перед claim), но коды видят только отправитель и админ.
func (p *Parcel) GetParcel(ctx context.Context, actor entities.Actor, id int64) (*entities.Parcel, error) {
	if err := access.Require(actor, access.ParcelRead); err != nil {
		return nil, err
	}

	parcel, err := p.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	switch actor.Role {
	case entities.RoleAdmin:
		return parcel, nil
	case entities.RoleSender:
		if parcel.SenderID != actor.UserID {
			return nil, ErrNotParcelOwner
		}
		return parcel, nil
	case entities.RolePartner:
		if parcel.Status != entities.ParcelPending && !parcel.AssignedTo(actor.UserID) {
			return nil, ErrNotAssignedPartner
		}
		redacted := parcel.Redacted()
		return &redacted, nil
	default:
		return nil, ErrPermissionDenied
	}
}

// TrackParcel публичный трекинг по order id, коды всегда вырезаны
func (p *Parcel) TrackParcel(ctx context.Context, orderID string) (*entities.Parcel, error) {
	orderID = strings.TrimSpace(orderID)
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	parcel, err := p.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("track parcel: %w", err)
	}

	redacted := parcel.Redacted()
	return &redacted, nil
}

// ListParcels - отправитель видит свои, партнер - назначенные ему, админ - все
func (p *Parcel) ListParcels(ctx context.Context, actor entities.Actor, status *entities.ParcelStatusType) ([]entities.Parcel, error) {
	if err := access.Require(actor, access.ParcelList); err != nil {
		return nil, err
	}
	if status != nil && !isValidStatus(*status) {
		return nil, ErrInvalidStatusFilter
	}

	filter := entities.ParcelFilter{Status: status}
	switch actor.Role {
	case entities.RoleSender:
		filter.SenderID = &actor.UserID
	case entities.RolePartner:
		filter.PartnerID = &actor.UserID
	case entities.RoleAdmin:
	default:
		return nil, ErrPermissionDenied
	}

	parcels, err := p.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list parcels: %w", err)
	}

	if actor.Role == entities.RolePartner {
		redactAll(parcels)
	}
	return parcels, nil
}

func (p *Parcel) ListAvailable(ctx context.Context, actor entities.Actor) ([]entities.Parcel, error) {
	if err := access.Require(actor, access.ParcelClaim); err != nil {
		return nil, err
	}

	pending := entities.ParcelPending
	parcels, err := p.repository.List(ctx, entities.ParcelFilter{Status: &pending})
	if err != nil {
		return nil, fmt.Errorf("list available parcels: %w", err)
	}

	redactAll(parcels)
	return parcels, nil
}

func (p *Parcel) Earnings(ctx context.Context, actor entities.Actor) (*entities.Earnings, error) {
	if err := access.Require(actor, access.EarningsRead); err != nil {
		return nil, err
	}

	partner, err := p.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("get partner: %w", err)
	}

	delivered := entities.ParcelDelivered
	parcels, err := p.repository.List(ctx, entities.ParcelFilter{
		PartnerID: &actor.UserID,
		Status:    &delivered,
	})
	if err != nil {
		return nil, fmt.Errorf("list delivered parcels: %w", err)
	}

	redactAll(parcels)
	return &entities.Earnings{
		Parcels:          parcels,
		DeliveredParcels: partner.DeliveredParcels,
		PointsEarned:     partner.PointsEarned,
	}, nil
}

func redactAll(parcels []entities.Parcel) {
	for i := range parcels {
		parcels[i] = parcels[i].Redacted()
	}
}
