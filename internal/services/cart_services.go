package services

import (
	"context"

	"github.com/hyerinam29-hash/my-face-landing/internal/model"
	"github.com/hyerinam29-hash/my-face-landing/internal/repository"
)

type CartService struct {
	Repo *repository.CartRepository
}

func NewCartService(r *repository.CartRepository) *CartService {
	return &CartService{Repo: r}
}

// Add puts a catalog product into the user's cart.
func (s *CartService) Add(ctx context.Context, userID string, item model.CartItem) (*model.CartItem, error) {
	item.UserID = userID
	item.ID = ""
	return s.Repo.Add(ctx, item)
}

// Get returns the cart with a running total in won.
func (s *CartService) Get(ctx context.Context, userID string) (*model.CartResponse, error) {
	items, err := s.Repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, it := range items {
		total += ParsePrice(it.Price)
	}

	return &model.CartResponse{Items: items, Total: total}, nil
}

// Remove deletes a single cart item.
func (s *CartService) Remove(ctx context.Context, cartID string) error {
	return s.Repo.Remove(ctx, cartID)
}
