package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pathport/internal/entities"
	"pathport/internal/pkg/access"
)

const (
	defaultSearchLimit = 50
	maxSearchLimit     = 50

	releaseOnSuspend = "Delivery partner suspended, parcel returned to pending."
	releaseOnDelete  = "Delivery partner removed, parcel returned to pending."
)

type User struct {
	repository Repository
	parcels    ParcelReleaser
	routes     RouteRemover
	hasher     PasswordHasher
	activity   ActivityRecorder
	txManager  TxManager
}

func New(
	repository Repository,
	parcels ParcelReleaser,
	routes RouteRemover,
	hasher PasswordHasher,
	activity ActivityRecorder,
	txManager TxManager,
) *User {
	return &User{
		repository: repository,
		parcels:    parcels,
		routes:     routes,
		hasher:     hasher,
		activity:   activity,
		txManager:  txManager,
	}
}

// Register самостоятельная регистрация отправителя или партнера, аккаунт ждет верификации
func (s *User) Register(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if err := validateAccount(&userModify); err != nil {
		return nil, err
	}
	if *userModify.Role == entities.RoleAdmin {
		return nil, fmt.Errorf("%w: admin accounts cannot self-register", ErrInvalidRole)
	}

	verified := false
	userModify.Verified = &verified

	created, err := s.create(ctx, userModify)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, entities.ActivityEntry{
		Title:       "New User",
		Description: fmt.Sprintf("%s registered as %s.", created.Name, roleTitle(created.Role)),
		Category:    entities.ActivityUser,
		Icon:        "fa-user-plus",
	})

	return created, nil
}

// CreateUser аккаунт, заведенный админом, сразу верифицирован
func (s *User) CreateUser(ctx context.Context, actor entities.Actor, userModify entities.UserModify) (*entities.User, error) {
	if err := access.Require(actor, access.UserManage); err != nil {
		return nil, err
	}
	if err := validateAccount(&userModify); err != nil {
		return nil, err
	}

	verified := true
	userModify.Verified = &verified

	return s.create(ctx, userModify)
}

func (s *User) create(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	hash, err := s.hasher.Hash(*userModify.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	userModify.PasswordHash = &hash
	userModify.Password = nil

	created, err := s.repository.Create(ctx, userModify)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (s *User) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateProfile пользователь меняет только свои имя и телефон
func (s *User) UpdateProfile(ctx context.Context, actor entities.Actor, userModify entities.UserModify) (*entities.User, error) {
	if err := access.Require(actor, access.ProfileRead); err != nil {
		return nil, err
	}
	if userModify.Name == nil && userModify.Phone == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	update := entities.UserModify{ID: &actor.UserID}
	if userModify.Name != nil {
		if !isValidName(*userModify.Name) {
			return nil, ErrInvalidName
		}
		name := strings.TrimSpace(*userModify.Name)
		update.Name = &name
	}
	if userModify.Phone != nil {
		if !isValidPhone(*userModify.Phone) {
			return nil, ErrInvalidPhone
		}
		phone := strings.TrimSpace(*userModify.Phone)
		update.Phone = &phone
	}

	updated, err := s.repository.Update(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return updated, nil
}

func (s *User) SearchUsers(ctx context.Context, actor entities.Actor, filter entities.UserFilter) ([]entities.User, error) {
	if err := access.Require(actor, access.UserManage); err != nil {
		return nil, err
	}
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	if filter.Limit == 0 || filter.Limit > maxSearchLimit {
		filter.Limit = defaultSearchLimit
	}

	users, err := s.repository.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

// VerifyUser снимает и блокировку, как и в админке
func (s *User) VerifyUser(ctx context.Context, actor entities.Actor, id int64) (*entities.User, error) {
	if err := access.Require(actor, access.UserManage); err != nil {
		return nil, err
	}

	verified, suspended := true, false
	user, err := s.repository.Update(ctx, entities.UserModify{
		ID:        &id,
		Verified:  &verified,
		Suspended: &suspended,
	})
	if err != nil {
		return nil, fmt.Errorf("verify user: %w", err)
	}

	s.activity.Record(ctx, entities.ActivityEntry{
		Title:       "User Verified",
		Description: fmt.Sprintf("User '%s' was verified.", user.Name),
		Category:    entities.ActivityUser,
		Icon:        "fa-user-check",
	})

	return user, nil
}

// SuspendUser блокирует аккаунт; посылки партнера в работе возвращаются в pending в той же транзакции
func (s *User) SuspendUser(ctx context.Context, actor entities.Actor, id int64) (*entities.User, error) {
	if err := access.Require(actor, access.UserManage); err != nil {
		return nil, err
	}

	var (
		suspendedUser *entities.User
		released      int
	)
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		// FOR UPDATE ждет незакоммиченные claim этого партнера, после него release видит их посылки
		target, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if target.Role == entities.RoleAdmin {
			return ErrCannotModifyAdmin
		}

		verified, suspended := false, true
		suspendedUser, err = s.repository.Update(ctx, entities.UserModify{
			ID:        &id,
			Verified:  &verified,
			Suspended: &suspended,
		})
		if err != nil {
			return err
		}

		if target.Role == entities.RolePartner {
			released, err = s.parcels.ReleasePartnerParcels(ctx, id, releaseOnSuspend)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("suspend user: %w", err)
	}

	s.activity.Record(ctx, entities.ActivityEntry{
		Title:       "User Suspended",
		Description: suspendDescription(suspendedUser.Name, released),
		Category:    entities.ActivityUser,
		Icon:        "fa-user-slash",
	})

	return suspendedUser, nil
}

// DeleteUser мягкое удаление: ссылки из посылок остаются валидными
func (s *User) DeleteUser(ctx context.Context, actor entities.Actor, id int64) error {
	if err := access.Require(actor, access.UserManage); err != nil {
		return err
	}
	if actor.UserID == id {
		return ErrCannotDeleteSelf
	}

	var target *entities.User
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		var err error
		target, err = s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if target.Role == entities.RoleAdmin {
			return ErrCannotModifyAdmin
		}

		if target.Role == entities.RolePartner {
			if _, err := s.parcels.ReleasePartnerParcels(ctx, id, releaseOnDelete); err != nil {
				return err
			}
			if _, err := s.routes.DeleteByPartner(ctx, id); err != nil {
				return err
			}
		}

		return s.repository.SoftDelete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.activity.Record(ctx, entities.ActivityEntry{
		Title:       "User Deleted",
		Description: fmt.Sprintf("User '%s' and associated data were deleted.", target.Name),
		Category:    entities.ActivityUser,
		Icon:        "fa-user-times",
	})

	return nil
}

// EnsureAdmin заводит первого админа при старте, повторный вызов ничего не меняет
func (s *User) EnsureAdmin(ctx context.Context, email, password, name string) (*entities.User, bool, error) {
	existing, err := s.repository.GetByEmail(ctx, email)
	if err == nil {
		if existing.Role != entities.RoleAdmin {
			return nil, false, fmt.Errorf("ensure admin: %s belongs to a %s account: %w", email, existing.Role, ErrEmailTaken)
		}
		return existing, false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, false, fmt.Errorf("ensure admin: %w", err)
	}

	role := entities.RoleAdmin
	verified := true
	userModify := entities.UserModify{
		Name:     &name,
		Email:    &email,
		Phone:    new(string),
		Password: &password,
		Role:     &role,
		Verified: &verified,
	}
	if !isValidEmail(email) {
		return nil, false, ErrInvalidEmail
	}
	if !isValidPassword(password) {
		return nil, false, ErrInvalidPassword
	}

	admin, err := s.create(ctx, userModify)
	if err != nil {
		return nil, false, fmt.Errorf("ensure admin: %w", err)
	}
	return admin, true, nil
}

func validateFilter(filter entities.UserFilter) error {
	if filter.Role != nil && !isValidRole(*filter.Role) {
		return ErrInvalidRole
	}
	if filter.Status != nil && !isValidStatus(*filter.Status) {
		return ErrInvalidStatus
	}
	return nil
}

func suspendDescription(name string, released int) string {
	if released == 0 {
		return fmt.Sprintf("User '%s' was suspended.", name)
	}
	return fmt.Sprintf("User '%s' was suspended, %d parcel(s) returned to pending.", name, released)
}

// roleTitle delivery_partner -> Delivery Partner
func roleTitle(role entities.UserRole) string {
	words := strings.Split(role.String(), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
