package user

import "time"

type UserDB struct {
	ID          string
	Name        string
	Email       string
	Role        string
	Status      string
	JoinedAt    time.Time
	LastLogin   *time.Time
	OrdersCount int
	Rating      *float64
}
