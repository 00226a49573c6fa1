package entities

import "time"

// Actor аутентифицированный участник запроса.
// Кладется в контекст auth middleware и явно передается в сервисы.
type Actor struct {
	UserID    int64
	Role      UserRole
	TokenID   string
	ExpiresAt time.Time
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	User      User
}
