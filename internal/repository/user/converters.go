package user

import (
	"strings"

	"pathport/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Phone:            u.Phone,
		PasswordHash:     u.PasswordHash,
		Role:             entities.UserRole(u.Role),
		Verified:         u.Verified,
		Suspended:        u.Suspended,
		TotalParcels:     u.TotalParcels,
		DeliveredParcels: u.DeliveredParcels,
		PointsEarned:     u.PointsEarned,
		Rating:           u.Rating,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
		DeletedAt:        u.DeletedAt,
	}
}

func FromDomainModify(userModify *entities.UserModify) *UserModifyDB {
	if userModify == nil {
		return nil
	}
	userDB := &UserModifyDB{
		ID:           userModify.ID,
		Name:         userModify.Name,
		Phone:        userModify.Phone,
		PasswordHash: userModify.PasswordHash,
		Verified:     userModify.Verified,
		Suspended:    userModify.Suspended,
	}

	if userModify.Email != nil {
		// уникальность email регистронезависимая, храним в нижнем регистре
		email := strings.ToLower(strings.TrimSpace(*userModify.Email))
		userDB.Email = &email
	}
	if userModify.Role != nil {
		role := userModify.Role.String()
		userDB.Role = &role
	}

	return userDB
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i, userDB := range usersDB {
		result[i] = *ToDomain(&userDB)
	}
	return result
}
