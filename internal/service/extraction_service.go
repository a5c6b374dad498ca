package service

import (
	"context"
	"fmt"
	"log"

	"gestdoc/internal/domain"
	"gestdoc/internal/ocr"
	"gestdoc/internal/port"
)

// ExtractionService turns scanned contract images, or already-recognized
// text, into structured contract fields.
type ExtractionService interface {
	ExtractFromImage(ctx context.Context, image []byte, contentType string) (*ExtractionOutput, error)
	ExtractFromText(text string) *ExtractionOutput
}

// ExtractionOutput pairs the structured result with the recognized text so
// callers can audit what the field extraction actually saw.
type ExtractionOutput struct {
	Result domain.ExtractionResult `json:"resultado"`
	Text   string                  `json:"texto_reconocido"`
}

type extractionService struct {
	recognizer    port.TextRecognizer
	language      string
	maxUploadSize int64
}

// NewExtractionService creates a new ExtractionService implementation.
func NewExtractionService(recognizer port.TextRecognizer, language string, maxUploadSize int64) ExtractionService {
	return &extractionService{
		recognizer:    recognizer,
		language:      language,
		maxUploadSize: maxUploadSize,
	}
}

func (s *extractionService) ExtractFromImage(ctx context.Context, image []byte, contentType string) (*ExtractionOutput, error) {
	if _, ok := domain.AllowedImageContentTypes[contentType]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if int64(len(image)) > s.maxUploadSize {
		return nil, domain.ErrFileTooLarge
	}

	text, err := s.recognizer.Recognize(ctx, image, s.language)
	if err != nil {
		return nil, fmt.Errorf("extraction.ExtractFromImage: %w", err)
	}
	log.Printf("service.Extraction: recognized %d bytes of text", len(text))

	return s.ExtractFromText(text), nil
}

func (s *extractionService) ExtractFromText(text string) *ExtractionOutput {
	return &ExtractionOutput{
		Result: ocr.Parse(text),
		Text:   text,
	}
}
