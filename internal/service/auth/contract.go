//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"
	"time"

	"pathport/internal/entities"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

type PasswordComparer interface {
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Issue(user entities.User) (string, entities.Actor, error)
	Parse(tokenString string) (entities.Actor, error)
}

// RevocationStore - отозванные при logout токены
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
