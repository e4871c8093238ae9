package user

import (
	"github.com/AlekSi/pointer"

	"freightdesk/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        entities.Role(u.Role),
		Status:      entities.UserStatusType(u.Status),
		JoinedAt:    u.JoinedAt,
		LastLogin:   pointer.Get(u.LastLogin),
		OrdersCount: u.OrdersCount,
		Rating:      u.Rating,
	}
}

func ToDomainList(usersDB []UserDB) []entities.User {
	result := make([]entities.User, len(usersDB))
	for i := range usersDB {
		result[i] = *ToDomain(&usersDB[i])
	}
	return result
}
