package services

import (
	"context"
	"log"
	"strings"

	"github.com/hyerinam29-hash/my-face-landing/internal/apperr"
	"github.com/hyerinam29-hash/my-face-landing/internal/model"
	"github.com/hyerinam29-hash/my-face-landing/internal/repository"
)

// LeadSink mirrors signups into an external CRM. Implemented by
// external/notion; nil when the CRM is not configured.
type LeadSink interface {
	CreateLead(ctx context.Context, name, email, phone string) error
}

type LeadService struct {
	Repo *repository.LeadRepository
	CRM  LeadSink
}

func NewLeadService(r *repository.LeadRepository, crm LeadSink) *LeadService {
	return &LeadService{Repo: r, CRM: crm}
}

// Submit records a free-trial signup. The store write is the source of
// truth; the CRM mirror is best effort.
func (s *LeadService) Submit(ctx context.Context, name, email, phone string) (*model.Lead, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" || email == "" || phone == "" {
		return nil, apperr.Validation("이름, 이메일, 전화번호를 모두 입력해주세요.")
	}

	lead, err := s.Repo.Insert(ctx, model.Lead{Name: name, Email: email, Phone: phone})
	if err != nil {
		return nil, err
	}

	if s.CRM != nil {
		if err := s.CRM.CreateLead(ctx, name, email, phone); err != nil {
			log.Printf("[lead] CRM mirror failed: %v", err)
		}
	}

	return lead, nil
}
