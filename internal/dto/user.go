package dto

import "freightdesk/internal/entities"

type User struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        Option   `json:"role"`
	Status      Option   `json:"status"`
	JoinedAt    string   `json:"joined_at"`
	LastLogin   string   `json:"last_login,omitempty"`
	OrdersCount int      `json:"orders_count"`
	Rating      *float64 `json:"rating,omitempty"`
}

func FromUsers(users []entities.User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, User{
			ID:          u.ID,
			Name:        u.Name,
			Email:       u.Email,
			Role:        Option{Value: u.Role.String(), Label: u.Role.Label()},
			Status:      Option{Value: u.Status.String(), Label: u.Status.Label()},
			JoinedAt:    formatDate(u.JoinedAt),
			LastLogin:   formatDate(u.LastLogin),
			OrdersCount: u.OrdersCount,
			Rating:      u.Rating,
		})
	}
	return out
}
