package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gestdoc/internal/domain"
	"gestdoc/internal/port"
)

// CompanyInput is the DTO for creating or updating a company.
type CompanyInput struct {
	LegalName         string     `json:"legal_name" binding:"required"`
	AuthorizedIn      string     `json:"authorized_in"`
	AuthorizationDate *time.Time `json:"authorization_date"`
	AuthorizedBy      string     `json:"authorized_by"`
	RegisteredIn      string     `json:"registered_in"`
	RegistryNumber    string     `json:"registry_number"`
	FolioNumber       string     `json:"folio_number"`
	BookNumber        string     `json:"book_number"`
	BookType          string     `json:"book_type"`
	NoticeAddress     string     `json:"notice_address"`
	SecondNoticeAddr  string     `json:"second_notice_address"`
}

// CompanyService manages contracting companies.
type CompanyService interface {
	Create(ctx context.Context, input CompanyInput) (*domain.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	List(ctx context.Context, offset, limit int) ([]domain.Company, int, error)
	Update(ctx context.Context, id uuid.UUID, input CompanyInput) (*domain.Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type companyService struct {
	repo port.CompanyRepository
}

// NewCompanyService creates a new CompanyService implementation.
func NewCompanyService(repo port.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) Create(ctx context.Context, input CompanyInput) (*domain.Company, error) {
	company := &domain.Company{}
	applyCompanyInput(company, input)
	if err := s.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *companyService) List(ctx context.Context, offset, limit int) ([]domain.Company, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *companyService) Update(ctx context.Context, id uuid.UUID, input CompanyInput) (*domain.Company, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCompanyInput(company, input)
	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func applyCompanyInput(company *domain.Company, input CompanyInput) {
	company.LegalName = input.LegalName
	company.AuthorizedIn = input.AuthorizedIn
	company.AuthorizationDate = input.AuthorizationDate
	company.AuthorizedBy = input.AuthorizedBy
	company.RegisteredIn = input.RegisteredIn
	company.RegistryNumber = input.RegistryNumber
	company.FolioNumber = input.FolioNumber
	company.BookNumber = input.BookNumber
	company.BookType = input.BookType
	company.NoticeAddress = input.NoticeAddress
	company.SecondNoticeAddr = input.SecondNoticeAddr
}
