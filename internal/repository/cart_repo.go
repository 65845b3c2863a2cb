package repository

import (
	"context"
	"log"

	"github.com/hyerinam29-hash/my-face-landing/external/supabase"
	"github.com/hyerinam29-hash/my-face-landing/internal/apperr"
	"github.com/hyerinam29-hash/my-face-landing/internal/model"
)

type CartRepository struct {
	Store *supabase.Client
}

func NewCartRepository(store *supabase.Client) *CartRepository {
	return &CartRepository{Store: store}
}

// Add inserts one item and returns the row with its assigned id.
func (r *CartRepository) Add(ctx context.Context, item model.CartItem) (*model.CartItem, error) {
	if item.UserID == "" || item.Name == "" || item.Price == "" {
		return nil, apperr.Validation("장바구니 항목 정보가 올바르지 않습니다.")
	}

	var rows []model.CartItem
	if err := r.Store.Insert(ctx, "cart", item, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &apperr.StorageError{Op: "cart insert", Status: 200, Body: "no representation returned"}
	}

	log.Printf("[cart] added item id=%s user=%s", rows[0].ID, rows[0].UserID)
	return &rows[0], nil
}

// GetByUser returns the user's cart, newest first. Transport trouble
// surfaces as an error rather than an empty list; the handler decides
// what to render.
func (r *CartRepository) GetByUser(ctx context.Context, userID string) ([]model.CartItem, error) {
	if userID == "" {
		return nil, apperr.Validation("user id가 필요합니다.")
	}

	q := supabase.NewQuery().Eq("user_id", userID).OrderDesc("created_at")

	items := []model.CartItem{}
	if err := r.Store.Select(ctx, "cart", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove deletes a single item by id.
func (r *CartRepository) Remove(ctx context.Context, cartID string) error {
	if cartID == "" {
		return apperr.Validation("cart id가 필요합니다.")
	}

	q := supabase.NewQuery().Eq("id", cartID)
	return r.Store.Delete(ctx, "cart", q, nil)
}
