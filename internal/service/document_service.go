package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"gestdoc/internal/domain"
	"gestdoc/internal/port"
	"gestdoc/internal/render"
)

// GenerateInput is the DTO for rendering a contract from already-extracted
// fields.
type GenerateInput struct {
	TemplateID       uuid.UUID               `json:"template_id" binding:"required"`
	CompanyID        uuid.UUID               `json:"company_id" binding:"required"`
	RepresentativeID uuid.UUID               `json:"representative_id" binding:"required"`
	ContractDate     string                  `json:"fecha_contrato"`
	Extraction       domain.ExtractionResult `json:"extraccion" binding:"required"`
	SourceText       string                  `json:"texto_fuente"`
	Notes            string                  `json:"notas"`
	CreatedBy        uuid.UUID               `json:"-"`
}

// ProcessInput is the DTO for the single-call image-to-document flow.
type ProcessInput struct {
	TemplateID       uuid.UUID
	CompanyID        uuid.UUID
	RepresentativeID uuid.UUID
	ContractDate     string
	Image            []byte
	ContentType      string
	Notes            string
	CreatedBy        uuid.UUID
}

// ProcessOutput carries both the registry record and the extraction that
// produced it, so callers can show what was read off the scan.
type ProcessOutput struct {
	Document   *domain.GeneratedDocument `json:"documento"`
	Extraction *ExtractionOutput         `json:"extraccion"`
}

// DocumentService renders contracts and manages the generated-document
// registry.
type DocumentService interface {
	Generate(ctx context.Context, input GenerateInput) (*domain.GeneratedDocument, error)
	Process(ctx context.Context, input ProcessInput) (*ProcessOutput, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GeneratedDocument, error)
	List(ctx context.Context, filter port.DocumentFilter, offset, limit int) ([]domain.GeneratedDocument, int, error)
	GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentService struct {
	companyRepo   port.CompanyRepository
	repRepo       port.RepresentativeRepository
	templateRepo  port.TemplateRepository
	docRepo       port.DocumentRepository
	storage       port.ObjectStorage
	extraction    ExtractionService
	bucket        string
	presignExpiry int64
	now           func() time.Time
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	companyRepo port.CompanyRepository,
	repRepo port.RepresentativeRepository,
	templateRepo port.TemplateRepository,
	docRepo port.DocumentRepository,
	storage port.ObjectStorage,
	extraction ExtractionService,
	bucket string,
	presignExpiry int64,
) DocumentService {
	return &documentService{
		companyRepo:   companyRepo,
		repRepo:       repRepo,
		templateRepo:  templateRepo,
		docRepo:       docRepo,
		storage:       storage,
		extraction:    extraction,
		bucket:        bucket,
		presignExpiry: presignExpiry,
		now:           time.Now,
	}
}

// Generate renders a contract and records it. Reference lookups are
// terminal: a missing company, representative or template fails the request
// before any rendering or upload happens, so a failed request never leaves a
// partial artifact behind.
func (s *documentService) Generate(ctx context.Context, input GenerateInput) (*domain.GeneratedDocument, error) {
	company, err := s.companyRepo.GetByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	rep, err := s.repRepo.GetByID(ctx, input.RepresentativeID)
	if err != nil {
		return nil, err
	}
	tpl, err := s.templateRepo.GetByID(ctx, input.TemplateID)
	if err != nil {
		return nil, err
	}

	templateBytes, err := s.storage.Download(ctx, tpl.S3Bucket, tpl.S3Key)
	if err != nil {
		return nil, fmt.Errorf("document.Generate: fetching template: %w", err)
	}

	rctx := render.BuildContext(company, rep, input.Extraction, input.ContractDate, s.now())
	rendered, err := render.Render(templateBytes, rctx.Flatten())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	docID := uuid.New()
	fileName := contractFileName(input.Extraction.Person.FullName)
	// The object key carries the document's own ID, so simultaneous renders
	// for the same employee can never overwrite each other.
	key := fmt.Sprintf("documents/%s/%s", docID, fileName)

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        bytes.NewReader(rendered),
		ContentType: domain.DocxContentType,
		Size:        int64(len(rendered)),
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	doc := &domain.GeneratedDocument{
		ID:               docID,
		TemplateID:       tpl.ID,
		CompanyID:        company.ID,
		RepresentativeID: rep.ID,
		EmployeeName:     input.Extraction.Person.FullName,
		EmployeeCUI:      input.Extraction.Person.CUI,
		FileName:         fileName,
		S3Bucket:         s.bucket,
		S3Key:            key,
		FileSize:         int64(len(rendered)),
		Category:         tpl.Category,
		Status:           domain.DocumentStatusDraft,
		SourceText:       input.SourceText,
		Notes:            input.Notes,
		CreatedBy:        input.CreatedBy,
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		// The object is already in the bucket; remove it so a failed insert
		// never strands an unregistered contract.
		if derr := s.storage.Delete(ctx, s.bucket, key); derr != nil {
			log.Printf("service.Document: removing object %s/%s after failed insert: %v", s.bucket, key, derr)
		}
		return nil, fmt.Errorf("document.Generate: recording document: %w", err)
	}

	log.Printf("service.Document: generated %s for %q (%d bytes)", docID, doc.EmployeeName, doc.FileSize)
	return doc, nil
}

// Process runs the full image-to-document flow: recognition, field
// extraction, rendering and registration.
func (s *documentService) Process(ctx context.Context, input ProcessInput) (*ProcessOutput, error) {
	out, err := s.extraction.ExtractFromImage(ctx, input.Image, input.ContentType)
	if err != nil {
		return nil, err
	}

	doc, err := s.Generate(ctx, GenerateInput{
		TemplateID:       input.TemplateID,
		CompanyID:        input.CompanyID,
		RepresentativeID: input.RepresentativeID,
		ContractDate:     input.ContractDate,
		Extraction:       out.Result,
		SourceText:       out.Text,
		Notes:            input.Notes,
		CreatedBy:        input.CreatedBy,
	})
	if err != nil {
		return nil, err
	}

	return &ProcessOutput{Document: doc, Extraction: out}, nil
}

func (s *documentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.GeneratedDocument, error) {
	return s.docRepo.GetByID(ctx, id)
}

func (s *documentService) List(ctx context.Context, filter port.DocumentFilter, offset, limit int) ([]domain.GeneratedDocument, int, error) {
	return s.docRepo.List(ctx, filter, offset, limit)
}

func (s *documentService) GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	url, err := s.storage.GetPresignedURL(ctx, doc.S3Bucket, doc.S3Key, s.presignExpiry)
	if err != nil {
		return "", fmt.Errorf("document.GetDownloadURL: %w", err)
	}
	return url, nil
}

func (s *documentService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) error {
	return s.docRepo.UpdateStatus(ctx, id, status)
}

func (s *documentService) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, doc.S3Bucket, doc.S3Key); err != nil {
		log.Printf("service.Document: deleting object %s/%s: %v", doc.S3Bucket, doc.S3Key, err)
	}
	return s.docRepo.Delete(ctx, id)
}

// contractFileName builds a download-friendly file name from the employee's
// name. The name is display metadata only; uniqueness comes from the object
// key's document ID.
func contractFileName(employeeName string) string {
	name := strings.TrimSpace(employeeName)
	if name == "" {
		name = "Colaborador"
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, name)
	return fmt.Sprintf("Contrato_%s.docx", name)
}
