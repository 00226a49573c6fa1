package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"pathport/internal/entities"
	"pathport/internal/repository"
	"pathport/internal/service/user"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const emailIndex = "users_email_active_key"

var userColumns = []string{
	"id", "name", "email", "phone", "password_hash", "role", "verified", "suspended",
	"total_parcels", "delivered_parcels", "points_earned", "rating",
	"created_at", "updated_at", "deleted_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)

	query, args, err := qb.
		Insert("users").
		Columns("name", "email", "phone", "password_hash", "role", "verified").
		Values(
			userModifyModel.Name,
			userModifyModel.Email,
			userModifyModel.Phone,
			userModifyModel.PasswordHash,
			userModifyModel.Role,
			userModifyModel.Verified,
		).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	userModel, err := scanUser(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsUniqueViolationOn(err, emailIndex) {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return ToDomain(userModel), nil
}

func (r *Repository) Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)

	builder := qb.
		Update("users")

	// опционнные поля
	if userModifyModel.Name != nil {
		builder = builder.Set("name", userModifyModel.Name)
	}
	if userModifyModel.Email != nil {
		builder = builder.Set("email", userModifyModel.Email)
	}
	if userModifyModel.Phone != nil {
		builder = builder.Set("phone", userModifyModel.Phone)
	}
	if userModifyModel.PasswordHash != nil {
		builder = builder.Set("password_hash", userModifyModel.PasswordHash)
	}
	if userModifyModel.Role != nil {
		builder = builder.Set("role", userModifyModel.Role)
	}
	if userModifyModel.Verified != nil {
		builder = builder.Set("verified", userModifyModel.Verified)
	}
	if userModifyModel.Suspended != nil {
		builder = builder.Set("suspended", userModifyModel.Suspended)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	query, args, err := builder.
		Where(sq.Eq{"id": userModifyModel.ID}).
		Where(sq.Eq{"deleted_at": nil}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	userModel, err := scanUser(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		if repository.IsUniqueViolationOn(err, emailIndex) {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(userModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, "")
}

// GetByIDForShare - claim держит строку партнера, пока не закоммитит назначение
func (r *Repository) GetByIDForShare(ctx context.Context, id int64) (*entities.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, "FOR SHARE")
}

// GetByIDForUpdate - блокировка и удаление ждут claim, держащие FOR SHARE
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, "FOR UPDATE")
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.getOne(ctx, sq.Expr("LOWER(email) = LOWER(?)", strings.TrimSpace(email)), "")
}

func (r *Repository) getOne(ctx context.Context, pred sq.Sqlizer, lock string) (*entities.User, error) {
	builder := qb.
		Select(userColumns...).
		From("users").
		Where(pred).
		Where(sq.Eq{"deleted_at": nil})
	if lock != "" {
		builder = builder.Suffix(lock)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	userModel, err := scanUser(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	return ToDomain(userModel), nil
}

func (r *Repository) Search(ctx context.Context, filter entities.UserFilter) ([]entities.User, error) {
	builder := qb.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"deleted_at": nil})

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
		})
	}
	if filter.Role != nil {
		builder = builder.Where(sq.Eq{"role": filter.Role.String()})
	}
	if filter.Status != nil {
		switch *filter.Status {
		case entities.AccountSuspended:
			builder = builder.Where(sq.Eq{"suspended": true})
		case entities.AccountVerified:
			builder = builder.Where(sq.Eq{"verified": true, "suspended": false})
		case entities.AccountPending:
			builder = builder.Where(sq.Eq{"verified": false, "suspended": false})
		}
	}

	builder = builder.OrderBy("created_at DESC", "id DESC")
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, filter.Limit)
	for rows.Next() {
		userModel, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository search error: %w", err)
		}
		userModels = append(userModels, *userModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}

	return ToDomainList(userModels), nil
}

// SoftDelete помечает аккаунт удаленным; строки остаются, FK из parcels валидны
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE users SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected user repository soft delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *Repository) IncrementTotalParcels(ctx context.Context, senderID int64) error {
	query := `
		UPDATE users SET total_parcels = total_parcels + 1, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, senderID)
	if err != nil {
		return fmt.Errorf("unexpected user repository increment total parcels error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// CreditDelivery вызывается только после успешного перехода picked_up -> delivered в той же транзакции
func (r *Repository) CreditDelivery(ctx context.Context, partnerID int64, points int64) error {
	query := `
		UPDATE users
		SET delivered_parcels = delivered_parcels + 1,
			points_earned = points_earned + $2,
			updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, partnerID, points)
	if err != nil {
		return fmt.Errorf("unexpected user repository credit delivery error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*UserDB, error) {
	var userModel UserDB
	err := row.Scan(
		&userModel.ID,
		&userModel.Name,
		&userModel.Email,
		&userModel.Phone,
		&userModel.PasswordHash,
		&userModel.Role,
		&userModel.Verified,
		&userModel.Suspended,
		&userModel.TotalParcels,
		&userModel.DeliveredParcels,
		&userModel.PointsEarned,
		&userModel.Rating,
		&userModel.CreatedAt,
		&userModel.UpdatedAt,
		&userModel.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &userModel, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
