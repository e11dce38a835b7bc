package service

import (
	"context"
	"fmt"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
	"github.com/99minutos/auction-marketplace/internal/core/ports"
)

type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetProfile returns the public profile of a user with products and bids two levels deep.
func (s *UserService) GetProfile(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.repo.FindProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}
