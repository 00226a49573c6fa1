package user

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"pathport/internal/entities"
)

const (
	minPasswordLength = 8
	maxNameLength     = 100
)

func isValidName(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && utf8.RuneCountInString(name) <= maxNameLength
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+")
	if len(phone) < 7 || len(phone) > 15 {
		return false
	}

	for _, char := range phone {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidPassword(password string) bool {
	return utf8.RuneCountInString(password) >= minPasswordLength
}

func isValidRole(role entities.UserRole) bool {
	switch role {
	case entities.RoleSender, entities.RolePartner, entities.RoleAdmin:
		return true
	default:
		return false
	}
}

func isValidStatus(status entities.UserAccountStatus) bool {
	switch status {
	case entities.AccountVerified, entities.AccountPending, entities.AccountSuspended:
		return true
	default:
		return false
	}
}

// validateAccount общие проверки регистрации и создания пользователя админом
func validateAccount(m *entities.UserModify) error {
	if m.Name == nil || m.Email == nil || m.Phone == nil || m.Password == nil || m.Role == nil {
		return ErrMissingRequiredFields
	}

	if !isValidName(*m.Name) {
		return ErrInvalidName
	}
	if !isValidEmail(*m.Email) {
		return ErrInvalidEmail
	}
	if !isValidPhone(*m.Phone) {
		return ErrInvalidPhone
	}
	if !isValidPassword(*m.Password) {
		return ErrInvalidPassword
	}
	if !isValidRole(*m.Role) {
		return ErrInvalidRole
	}

	name := strings.TrimSpace(*m.Name)
	phone := strings.TrimSpace(*m.Phone)
	m.Name = &name
	m.Phone = &phone
	return nil
}
