package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pathport/internal/entities"
	"pathport/internal/pkg/password"
	"pathport/internal/service/user"
)

type Auth struct {
	users   UserRepository
	hasher  PasswordComparer
	tokens  TokenIssuer
	revoked RevocationStore
	now     func() time.Time
}

func New(users UserRepository, hasher PasswordComparer, tokens TokenIssuer, revoked RevocationStore) *Auth {
	return &Auth{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		revoked: revoked,
		now:     time.Now,
	}
}

// Login неизвестный email и неверный пароль неразличимы для клиента
func (s *Auth) Login(ctx context.Context, email, pass string) (session *entities.Session, err error) {
	defer func() {
		LoginAttemptsTotal.WithLabelValues(loginOutcome(err)).Inc()
	}()

	if email == "" || pass == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	err = s.hasher.Compare(account.PasswordHash, pass)
	if err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !account.Active() {
		return nil, ErrAccountSuspended
	}

	token, actor, err := s.tokens.Issue(*account)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	account.PasswordHash = ""
	return &entities.Session{
		Token:     token,
		ExpiresAt: actor.ExpiresAt,
		User:      *account,
	}, nil
}

// Authenticate проверяет подпись, отзыв и текущее состояние аккаунта.
// Роль берется из базы, а не из токена: смена роли или блокировка действуют сразу.
func (s *Auth) Authenticate(ctx context.Context, token string) (entities.Actor, error) {
	actor, err := s.tokens.Parse(token)
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	revoked, err := s.revoked.IsRevoked(ctx, actor.TokenID)
	if err != nil {
		return entities.Actor{}, fmt.Errorf("authenticate: %w", err)
	}
	if revoked {
		return entities.Actor{}, fmt.Errorf("%w: token was revoked", ErrInvalidToken)
	}

	account, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return entities.Actor{}, fmt.Errorf("%w: account no longer exists", ErrInvalidToken)
		}
		return entities.Actor{}, fmt.Errorf("authenticate: %w", err)
	}
	if !account.Active() {
		return entities.Actor{}, ErrAccountSuspended
	}

	actor.Role = account.Role
	return actor, nil
}

// Logout отзывает токен до его естественного истечения
func (s *Auth) Logout(ctx context.Context, actor entities.Actor) error {
	ttl := actor.ExpiresAt.Sub(s.now())
	if err := s.revoked.Revoke(ctx, actor.TokenID, ttl); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func loginOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrAccountSuspended):
		return "suspended"
	default:
		return "error"
	}
}
