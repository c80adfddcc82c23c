package service

import (
	"context"
	"fmt"
	"strings"

	"jobconnect/internal/domain"
)

type CompanyInput struct {
	Name        string
	Description string
	Website     string
}

// CompanyService maintains the employer's single company profile.
type CompanyService struct {
	companies domain.CompanyRepository
}

func NewCompanyService(companies domain.CompanyRepository) *CompanyService {
	return &CompanyService{companies: companies}
}

// Upsert creates the company on first submission and updates it afterwards.
func (s *CompanyService) Upsert(ctx context.Context, ownerID int64, in CompanyInput) (*domain.Company, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: company name is required", domain.ErrInvalidInput)
	}
	c := &domain.Company{
		OwnerID:     ownerID,
		Name:        truncate(name),
		Description: strings.TrimSpace(in.Description),
		Website:     truncate(strings.TrimSpace(in.Website)),
	}
	if err := s.companies.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return s.companies.FindByOwner(ctx, ownerID)
}

func (s *CompanyService) Get(ctx context.Context, ownerID int64) (*domain.Company, error) {
	return s.companies.FindByOwner(ctx, ownerID)
}
