package user

import (
	"context"
	"fmt"

	"freightdesk/internal/entities"
	"freightdesk/internal/service/query"
)

type User struct {
	repository Repository
}

func New(repository Repository) *User {
	return &User{
		repository: repository,
	}
}

func (s *User) List(ctx context.Context, q entities.Query) ([]entities.User, error) {
	users, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	return query.Apply(users, q), nil
}
