package services

import (
	"context"

	"github.com/hyerinam29-hash/my-face-landing/internal/model"
	"github.com/hyerinam29-hash/my-face-landing/internal/repository"
)

type OrderService struct {
	Repo *repository.OrderRepository
}

func NewOrderService(r *repository.OrderRepository) *OrderService {
	return &OrderService{Repo: r}
}

// History returns the user's completed orders, newest first.
func (s *OrderService) History(ctx context.Context, userID string) ([]model.Order, error) {
	return s.Repo.GetByUser(ctx, userID)
}
