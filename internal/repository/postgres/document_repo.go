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

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.GeneratedDocument) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	doc.CreatedAt = time.Now().UTC()

	query := `INSERT INTO generated_documents (
		id, template_id, company_id, representative_id, employee_name, employee_cui,
		file_name, s3_bucket, s3_key, file_size, category, status, source_text, notes,
		created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.TemplateID, doc.CompanyID, doc.RepresentativeID,
		doc.EmployeeName, doc.EmployeeCUI, doc.FileName, doc.S3Bucket, doc.S3Key,
		doc.FileSize, doc.Category, doc.Status, doc.SourceText, doc.Notes,
		doc.CreatedBy, doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.GeneratedDocument, error) {
	var doc domain.GeneratedDocument
	err := r.db.GetContext(ctx, &doc, "SELECT * FROM generated_documents WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) List(ctx context.Context, filter port.DocumentFilter, offset, limit int) ([]domain.GeneratedDocument, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	n := 0

	add := func(cond string, val any) {
		n++
		where += fmt.Sprintf(" AND %s = $%d", cond, n)
		args = append(args, val)
	}
	if filter.CompanyID != uuid.Nil {
		add("company_id", filter.CompanyID)
	}
	if filter.TemplateID != uuid.Nil {
		add("template_id", filter.TemplateID)
	}
	if filter.Status != "" {
		add("status", filter.Status)
	}
	if filter.Category != "" {
		add("category", filter.Category)
	}
	if filter.Search != "" {
		n++
		where += fmt.Sprintf(" AND (employee_name ILIKE $%d OR employee_cui ILIKE $%d)", n, n)
		args = append(args, "%"+filter.Search+"%")
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM generated_documents "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List count: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT * FROM generated_documents %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, n+1, n+2)
	args = append(args, limit, offset)

	var docs []domain.GeneratedDocument
	err = r.db.SelectContext(ctx, &docs, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List: %w", err)
	}
	return docs, total, nil
}

func (r *documentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE generated_documents SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("documentRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM generated_documents WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("documentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}
