package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gestdoc/internal/domain"
	"gestdoc/internal/port"
)

// RepresentativeInput is the DTO for creating or updating a legal
// representative.
type RepresentativeInput struct {
	CompanyID     uuid.UUID `json:"company_id" binding:"required"`
	FullName      string    `json:"full_name" binding:"required"`
	BirthDate     time.Time `json:"birth_date"`
	CUI           string    `json:"cui"`
	MaritalStatus string    `json:"marital_status"`
	Profession    string    `json:"profession"`
	Nationality   string    `json:"nationality"`
	IssuedIn      string    `json:"issued_in"`
}

// RepresentativeService manages legal representatives.
type RepresentativeService interface {
	Create(ctx context.Context, input RepresentativeInput) (*domain.Representative, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Representative, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Representative, error)
	Update(ctx context.Context, id uuid.UUID, input RepresentativeInput) (*domain.Representative, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type representativeService struct {
	repo        port.RepresentativeRepository
	companyRepo port.CompanyRepository
}

// NewRepresentativeService creates a new RepresentativeService implementation.
func NewRepresentativeService(repo port.RepresentativeRepository, companyRepo port.CompanyRepository) RepresentativeService {
	return &representativeService{repo: repo, companyRepo: companyRepo}
}

func (s *representativeService) Create(ctx context.Context, input RepresentativeInput) (*domain.Representative, error) {
	if _, err := s.companyRepo.GetByID(ctx, input.CompanyID); err != nil {
		return nil, err
	}
	rep := &domain.Representative{}
	applyRepresentativeInput(rep, input)
	if err := s.repo.Create(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *representativeService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Representative, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *representativeService) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Representative, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

func (s *representativeService) Update(ctx context.Context, id uuid.UUID, input RepresentativeInput) (*domain.Representative, error) {
	rep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyRepresentativeInput(rep, input)
	if err := s.repo.Update(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *representativeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func applyRepresentativeInput(rep *domain.Representative, input RepresentativeInput) {
	rep.CompanyID = input.CompanyID
	rep.FullName = input.FullName
	rep.BirthDate = input.BirthDate
	rep.CUI = input.CUI
	rep.MaritalStatus = input.MaritalStatus
	rep.Profession = input.Profession
	rep.Nationality = input.Nationality
	rep.IssuedIn = input.IssuedIn
}
