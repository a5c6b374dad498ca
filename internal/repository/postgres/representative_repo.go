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

type representativeRepo struct {
	db *sqlx.DB
}

// NewRepresentativeRepo creates a new PostgreSQL-backed RepresentativeRepository.
func NewRepresentativeRepo(db *sqlx.DB) port.RepresentativeRepository {
	return &representativeRepo{db: db}
}

func (r *representativeRepo) Create(ctx context.Context, rep *domain.Representative) error {
	rep.ID = uuid.New()
	now := time.Now().UTC()
	rep.CreatedAt = now
	rep.UpdatedAt = now

	query := `INSERT INTO representatives (
		id, company_id, full_name, birth_date, cui, marital_status, profession,
		nationality, issued_in, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		rep.ID, rep.CompanyID, rep.FullName, rep.BirthDate, rep.CUI, rep.MaritalStatus,
		rep.Profession, rep.Nationality, rep.IssuedIn, rep.CreatedAt, rep.UpdatedAt)
	if err != nil {
		return fmt.Errorf("representativeRepo.Create: %w", err)
	}
	return nil
}

func (r *representativeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Representative, error) {
	var rep domain.Representative
	err := r.db.GetContext(ctx, &rep, "SELECT * FROM representatives WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRepresentativeNotFound
		}
		return nil, fmt.Errorf("representativeRepo.GetByID: %w", err)
	}
	return &rep, nil
}

func (r *representativeRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Representative, error) {
	var reps []domain.Representative
	err := r.db.SelectContext(ctx, &reps,
		"SELECT * FROM representatives WHERE company_id = $1 ORDER BY full_name ASC", companyID)
	if err != nil {
		return nil, fmt.Errorf("representativeRepo.ListByCompany: %w", err)
	}
	return reps, nil
}

func (r *representativeRepo) Update(ctx context.Context, rep *domain.Representative) error {
	rep.UpdatedAt = time.Now().UTC()
	query := `UPDATE representatives SET
		company_id = $1, full_name = $2, birth_date = $3, cui = $4, marital_status = $5,
		profession = $6, nationality = $7, issued_in = $8, updated_at = $9
		WHERE id = $10`
	result, err := r.db.ExecContext(ctx, query,
		rep.CompanyID, rep.FullName, rep.BirthDate, rep.CUI, rep.MaritalStatus,
		rep.Profession, rep.Nationality, rep.IssuedIn, rep.UpdatedAt, rep.ID)
	if err != nil {
		return fmt.Errorf("representativeRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRepresentativeNotFound
	}
	return nil
}

func (r *representativeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM representatives WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("representativeRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRepresentativeNotFound
	}
	return nil
}
