package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gestdoc/internal/service"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) ExtractFromImage(ctx context.Context, image []byte, contentType string) (*service.ExtractionOutput, error) {
	args := m.Called(ctx, image, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExtractionOutput), args.Error(1)
}

func (m *MockExtractionService) ExtractFromText(text string) *service.ExtractionOutput {
	args := m.Called(text)
	return args.Get(0).(*service.ExtractionOutput)
}
