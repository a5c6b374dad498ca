package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gestdoc/internal/domain"
	"gestdoc/internal/port"
)

type companyRepo struct {
	db *sqlx.DB
}

// NewCompanyRepo creates a new PostgreSQL-backed CompanyRepository.
func NewCompanyRepo(db *sqlx.DB) port.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	company.ID = uuid.New()
	now := time.Now().UTC()
	company.CreatedAt = now
	company.UpdatedAt = now

	query := `INSERT INTO companies (
		id, legal_name, authorized_in, authorization_date, authorized_by, registered_in,
		registry_number, folio_number, book_number, book_type, notice_address,
		second_notice_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		company.ID, company.LegalName, company.AuthorizedIn, company.AuthorizationDate,
		company.AuthorizedBy, company.RegisteredIn, company.RegistryNumber,
		company.FolioNumber, company.BookNumber, company.BookType,
		company.NoticeAddress, company.SecondNoticeAddr,
		company.CreatedAt, company.UpdatedAt)
	if err != nil {
		return fmt.Errorf("companyRepo.Create: %w", err)
	}
	return nil
}

func (r *companyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	var company domain.Company
	err := r.db.GetContext(ctx, &company, "SELECT * FROM companies WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("companyRepo.GetByID: %w", err)
	}
	return &company, nil
}

func (r *companyRepo) List(ctx context.Context, offset, limit int) ([]domain.Company, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM companies")
	if err != nil {
		return nil, 0, fmt.Errorf("companyRepo.List count: %w", err)
	}

	var companies []domain.Company
	err = r.db.SelectContext(ctx, &companies,
		"SELECT * FROM companies ORDER BY legal_name ASC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("companyRepo.List: %w", err)
	}
	return companies, total, nil
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	company.UpdatedAt = time.Now().UTC()
	query := `UPDATE companies SET
		legal_name = $1, authorized_in = $2, authorization_date = $3, authorized_by = $4,
		registered_in = $5, registry_number = $6, folio_number = $7, book_number = $8,
		book_type = $9, notice_address = $10, second_notice_address = $11, updated_at = $12
		WHERE id = $13`
	result, err := r.db.ExecContext(ctx, query,
		company.LegalName, company.AuthorizedIn, company.AuthorizationDate,
		company.AuthorizedBy, company.RegisteredIn, company.RegistryNumber,
		company.FolioNumber, company.BookNumber, company.BookType,
		company.NoticeAddress, company.SecondNoticeAddr, company.UpdatedAt, company.ID)
	if err != nil {
		return fmt.Errorf("companyRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM companies WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("companyRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}
