package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"gestdoc/internal/domain"
	"gestdoc/internal/port"
)

// TemplateUploadInput is the DTO for registering a new contract template.
type TemplateUploadInput struct {
	Name        string
	Description string
	Category    string
	FileName    string
	Content     []byte
	CreatedBy   uuid.UUID
}

// TemplateUpdateInput is the DTO for updating template metadata.
type TemplateUpdateInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsActive    *bool  `json:"is_active"`
}

// TemplateService manages contract templates and their stored .docx bytes.
type TemplateService interface {
	Upload(ctx context.Context, input TemplateUploadInput) (*domain.Template, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	List(ctx context.Context, offset, limit int) ([]domain.Template, int, error)
	Update(ctx context.Context, id uuid.UUID, input TemplateUpdateInput) (*domain.Template, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error)
}

type templateService struct {
	repo          port.TemplateRepository
	storage       port.ObjectStorage
	bucket        string
	maxUploadSize int64
	presignExpiry int64
}

// NewTemplateService creates a new TemplateService implementation.
func NewTemplateService(repo port.TemplateRepository, storage port.ObjectStorage, bucket string, maxUploadSize, presignExpiry int64) TemplateService {
	return &templateService{
		repo:          repo,
		storage:       storage,
		bucket:        bucket,
		maxUploadSize: maxUploadSize,
		presignExpiry: presignExpiry,
	}
}

func (s *templateService) Upload(ctx context.Context, input TemplateUploadInput) (*domain.Template, error) {
	if !strings.HasSuffix(strings.ToLower(input.FileName), ".docx") {
		return nil, domain.ErrUnsupportedFileType
	}
	if int64(len(input.Content)) > s.maxUploadSize {
		return nil, domain.ErrFileTooLarge
	}

	tplID := uuid.New()
	key := fmt.Sprintf("templates/%s/%s", tplID, input.FileName)

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        bytes.NewReader(input.Content),
		ContentType: domain.DocxContentType,
		Size:        int64(len(input.Content)),
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	tpl := &domain.Template{
		ID:          tplID,
		Name:        input.Name,
		Description: input.Description,
		FileName:    input.FileName,
		Category:    input.Category,
		S3Bucket:    s.bucket,
		S3Key:       key,
		IsActive:    true,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.repo.Create(ctx, tpl); err != nil {
		return nil, fmt.Errorf("template.Upload: recording template: %w", err)
	}

	log.Printf("service.Template: uploaded %q as %s", input.FileName, tplID)
	return tpl, nil
}

func (s *templateService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *templateService) List(ctx context.Context, offset, limit int) ([]domain.Template, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *templateService) Update(ctx context.Context, id uuid.UUID, input TemplateUpdateInput) (*domain.Template, error) {
	tpl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tpl.Name = input.Name
	tpl.Description = input.Description
	tpl.Category = input.Category
	if input.IsActive != nil {
		tpl.IsActive = *input.IsActive
	}
	if err := s.repo.Update(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *templateService) Delete(ctx context.Context, id uuid.UUID) error {
	tpl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, tpl.S3Bucket, tpl.S3Key); err != nil {
		log.Printf("service.Template: deleting object %s/%s: %v", tpl.S3Bucket, tpl.S3Key, err)
	}
	return s.repo.Delete(ctx, id)
}

func (s *templateService) GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	tpl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	url, err := s.storage.GetPresignedURL(ctx, tpl.S3Bucket, tpl.S3Key, s.presignExpiry)
	if err != nil {
		return "", fmt.Errorf("template.GetDownloadURL: %w", err)
	}
	return url, nil
}
