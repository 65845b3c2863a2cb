package repository

import (
	"context"
	"log"

	"github.com/hyerinam29-hash/my-face-landing/external/supabase"
	"github.com/hyerinam29-hash/my-face-landing/internal/apperr"
	"github.com/hyerinam29-hash/my-face-landing/internal/model"
)

type LeadRepository struct {
	Store *supabase.Client
}

func NewLeadRepository(store *supabase.Client) *LeadRepository {
	return &LeadRepository{Store: store}
}

// Insert writes a signup and logs the assigned id.
func (r *LeadRepository) Insert(ctx context.Context, lead model.Lead) (*model.Lead, error) {
	if lead.Name == "" || lead.Email == "" || lead.Phone == "" {
		return nil, apperr.Validation("이름, 이메일, 전화번호를 모두 입력해주세요.")
	}

	var rows []model.Lead
	if err := r.Store.Insert(ctx, "leads", lead, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &apperr.StorageError{Op: "leads insert", Status: 200, Body: "no representation returned"}
	}

	log.Printf("[lead] inserted id=%d", rows[0].ID)
	return &rows[0], nil
}
