package port

import (
	"context"

	"github.com/google/uuid"

	"gestdoc/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompanyRepository defines the contract for contracting-company persistence.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	List(ctx context.Context, offset, limit int) ([]domain.Company, int, error)
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RepresentativeRepository defines the contract for legal-representative
// persistence.
type RepresentativeRepository interface {
	Create(ctx context.Context, rep *domain.Representative) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Representative, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Representative, error)
	Update(ctx context.Context, rep *domain.Representative) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TemplateRepository defines the contract for contract-template persistence.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *domain.Template) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	List(ctx context.Context, offset, limit int) ([]domain.Template, int, error)
	Update(ctx context.Context, tpl *domain.Template) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DocumentRepository defines the contract for the generated-document registry.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.GeneratedDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GeneratedDocument, error)
	List(ctx context.Context, filter DocumentFilter, offset, limit int) ([]domain.GeneratedDocument, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DocumentFilter narrows registry listings. Zero values mean no filtering.
type DocumentFilter struct {
	CompanyID  uuid.UUID
	TemplateID uuid.UUID
	Status     domain.DocumentStatus
	Category   string
	Search     string
}
