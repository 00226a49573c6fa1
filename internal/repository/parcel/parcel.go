package parcel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlekSi/pointer"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"pathport/internal/entities"
	"pathport/internal/repository"
	"pathport/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderIDConstraint = "parcels_order_id_key"

var parcelColumns = []string{
	"id", "order_id", "sender_id", "delivery_partner_id", "title", "description",
	"pickup_location", "delivery_location", "receiver_name", "receiver_phone", "receiver_email",
	"weight", "size", "urgency", "pickup_code", "delivery_code", "status", "reward_points",
	"tracking_history", "created_at", "assigned_at", "picked_up_at", "delivered_at", "cancelled_at",
}

var returningParcel = "RETURNING " + strings.Join(parcelColumns, ", ")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	history, err := historyJSON(parcelModify.History...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	query, args, err := qb.
		Insert("parcels").
		Columns(
			"order_id", "sender_id", "title", "description",
			"pickup_location", "delivery_location", "receiver_name", "receiver_phone", "receiver_email",
			"weight", "size", "urgency", "pickup_code", "delivery_code", "status", "reward_points",
			"tracking_history", "created_at",
		).
		Values(
			pointer.Get(parcelModify.OrderID),
			pointer.Get(parcelModify.SenderID),
			pointer.Get(parcelModify.Title),
			pointer.Get(parcelModify.Description),
			pointer.Get(parcelModify.PickupLocation),
			pointer.Get(parcelModify.DeliveryLocation),
			pointer.Get(parcelModify.ReceiverName),
			pointer.Get(parcelModify.ReceiverPhone),
			pointer.Get(parcelModify.ReceiverEmail),
			pointer.Get(parcelModify.Weight),
			pointer.Get(parcelModify.Size).String(),
			pointer.Get(parcelModify.Urgency).String(),
			pointer.Get(parcelModify.PickupCode),
			pointer.Get(parcelModify.DeliveryCode),
			entities.ParcelPending.String(),
			pointer.Get(parcelModify.RewardPoints),
			sq.Expr("?::jsonb", history),
			pointer.Get(parcelModify.CreatedAt),
		).
		Suffix(returningParcel).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsUniqueViolationOn(err, orderIDConstraint) {
			return nil, parcel.ErrOrderIDConflict
		}
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(parcelModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Parcel, error) {
	return r.getOne(ctx, sq.Eq{"order_id": orderID})
}

func (r *Repository) getOne(ctx context.Context, pred sq.Eq) (*entities.Parcel, error) {
	query, args, err := qb.
		Select(parcelColumns...).
		From("parcels").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository get error: %w", err)
	}

	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository get error: %w", err)
	}

	return ToDomain(parcelModel), nil
}

// List - посылки по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	builder := qb.
		Select(parcelColumns...).
		From("parcels")

	if filter.SenderID != nil {
		builder = builder.Where(sq.Eq{"sender_id": *filter.SenderID})
	}
	if filter.PartnerID != nil {
		builder = builder.Where(sq.Eq{"delivery_partner_id": *filter.PartnerID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	builder = builder.OrderBy("created_at DESC", "id DESC")
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 8)
	for rows.Next() {
		parcelModel, err := scanParcel(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
		}
		parcelModels = append(parcelModels, *parcelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	return ToDomainList(parcelModels), nil
}

// Transition применяет переход одним условным UPDATE.
// Статус, партнер, метка времени и запись истории меняются в одном выражении;
// если WHERE не совпал (статус уже другой, чужой партнер) - ErrTransitionRejected.
func (r *Repository) Transition(ctx context.Context, transition entities.ParcelTransition) (*entities.Parcel, error) {
	entry, err := historyJSON(transition.Entry)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository transition error: %w", err)
	}

	builder := qb.
		Update("parcels").
		Set("status", transition.To.String()).
		Set("tracking_history", sq.Expr("tracking_history || ?::jsonb", entry))

	// метка ставится один раз: после release и повторного claim остается первая
	if column, ok := timestampColumn(transition.To); ok {
		builder = builder.Set(column, sq.Expr("COALESCE("+column+", ?::timestamptz)", transition.At))
	}

	switch {
	case transition.SetPartnerID != nil:
		builder = builder.Set("delivery_partner_id", *transition.SetPartnerID)
	case transition.ClearPartner:
		builder = builder.Set("delivery_partner_id", nil)
	}

	builder = builder.Where(sq.Eq{
		"id":     transition.ParcelID,
		"status": statusStrings(transition.From),
	})
	if transition.RequirePartnerID != nil {
		builder = builder.Where(sq.Eq{"delivery_partner_id": *transition.RequirePartnerID})
	}

	query, args, err := builder.Suffix(returningParcel).ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository transition error: %w", err)
	}

	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrTransitionRejected
		}
		return nil, fmt.Errorf("unexpected parcel repository transition error: %w", err)
	}

	return ToDomain(parcelModel), nil
}

// ReleaseByPartner возвращает все незавершенные посылки партнера в pending одним выражением
func (r *Repository) ReleaseByPartner(ctx context.Context, partnerID int64, entry entities.TrackingEntry) ([]string, error) {
	raw, err := historyJSON(entry)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository release error: %w", err)
	}

	query, args, err := qb.
		Update("parcels").
		Set("status", entities.ParcelPending.String()).
		Set("delivery_partner_id", nil).
		Set("tracking_history", sq.Expr("tracking_history || ?::jsonb", raw)).
		Where(sq.Eq{
			"delivery_partner_id": partnerID,
			"status":              statusStrings([]entities.ParcelStatusType{entities.ParcelAssigned, entities.ParcelPickedUp}),
		}).
		Suffix("RETURNING order_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository release error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository release error: %w", err)
	}
	defer rows.Close()

	orderIDs := make([]string, 0)
	for rows.Next() {
		var orderID string
		if err := rows.Scan(&orderID); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository release error: %w", err)
		}
		orderIDs = append(orderIDs, orderID)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository release error: %w", err)
	}

	return orderIDs, nil
}

func timestampColumn(status entities.ParcelStatusType) (string, bool) {
	switch status {
	case entities.ParcelAssigned:
		return "assigned_at", true
	case entities.ParcelPickedUp:
		return "picked_up_at", true
	case entities.ParcelDelivered:
		return "delivered_at", true
	case entities.ParcelCancelled:
		return "cancelled_at", true
	default:
		return "", false
	}
}

func scanParcel(row pgx.Row) (*ParcelDB, error) {
	var parcelModel ParcelDB
	err := row.Scan(
		&parcelModel.ID,
		&parcelModel.OrderID,
		&parcelModel.SenderID,
		&parcelModel.DeliveryPartnerID,
		&parcelModel.Title,
		&parcelModel.Description,
		&parcelModel.PickupLocation,
		&parcelModel.DeliveryLocation,
		&parcelModel.ReceiverName,
		&parcelModel.ReceiverPhone,
		&parcelModel.ReceiverEmail,
		&parcelModel.Weight,
		&parcelModel.Size,
		&parcelModel.Urgency,
		&parcelModel.PickupCode,
		&parcelModel.DeliveryCode,
		&parcelModel.Status,
		&parcelModel.RewardPoints,
		&parcelModel.TrackingHistory,
		&parcelModel.CreatedAt,
		&parcelModel.AssignedAt,
		&parcelModel.PickedUpAt,
		&parcelModel.DeliveredAt,
		&parcelModel.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	return &parcelModel, nil
}
