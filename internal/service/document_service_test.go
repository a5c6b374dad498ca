package service_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gestdoc/internal/domain"
	"gestdoc/internal/port"
	"gestdoc/internal/service"
	"gestdoc/mocks"
)

type documentFixture struct {
	companyRepo  *mocks.MockCompanyRepo
	repRepo      *mocks.MockRepresentativeRepo
	templateRepo *mocks.MockTemplateRepo
	docRepo      *mocks.MockDocumentRepo
	storage      *mocks.MockObjectStorage
	extraction   *mocks.MockExtractionService
	svc          service.DocumentService
}

func newDocumentFixture() *documentFixture {
	f := &documentFixture{
		companyRepo:  new(mocks.MockCompanyRepo),
		repRepo:      new(mocks.MockRepresentativeRepo),
		templateRepo: new(mocks.MockTemplateRepo),
		docRepo:      new(mocks.MockDocumentRepo),
		storage:      new(mocks.MockObjectStorage),
		extraction:   new(mocks.MockExtractionService),
	}
	f.svc = service.NewDocumentService(
		f.companyRepo, f.repRepo, f.templateRepo, f.docRepo,
		f.storage, f.extraction, "gestdoc-documents", 900,
	)
	return f
}

// minimalTemplate builds the smallest archive Render accepts.
func minimalTemplate(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body><w:p><w:r><w:t>Contrato de {{nombre_completo}}</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func generateInput() service.GenerateInput {
	return service.GenerateInput{
		TemplateID:       uuid.New(),
		CompanyID:        uuid.New(),
		RepresentativeID: uuid.New(),
		ContractDate:     "2025-01-29",
		Extraction: domain.ExtractionResult{
			Person: domain.PersonFields{FullName: "MARIO PEREZ", CUI: "1234 56789 0123"},
		},
		CreatedBy: uuid.New(),
	}
}

func TestDocumentService_Generate(t *testing.T) {
	f := newDocumentFixture()
	input := generateInput()

	company := &domain.Company{ID: input.CompanyID, LegalName: "ACME S.A."}
	rep := &domain.Representative{ID: input.RepresentativeID, FullName: "ANA RODRIGUEZ"}
	tpl := &domain.Template{ID: input.TemplateID, S3Bucket: "gestdoc-templates", S3Key: "templates/x/base.docx", Category: "laboral"}

	f.companyRepo.On("GetByID", mock.Anything, input.CompanyID).Return(company, nil)
	f.repRepo.On("GetByID", mock.Anything, input.RepresentativeID).Return(rep, nil)
	f.templateRepo.On("GetByID", mock.Anything, input.TemplateID).Return(tpl, nil)
	f.storage.On("Download", mock.Anything, "gestdoc-templates", "templates/x/base.docx").Return(minimalTemplate(t), nil)
	f.storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "gestdoc-documents" &&
			strings.HasPrefix(in.Key, "documents/") &&
			strings.HasSuffix(in.Key, "/Contrato_MARIO_PEREZ.docx") &&
			in.ContentType == domain.DocxContentType
	})).Return(&port.UploadOutput{}, nil)
	f.docRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.GeneratedDocument")).Return(nil)

	doc, err := f.svc.Generate(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "MARIO PEREZ", doc.EmployeeName)
	assert.Equal(t, "Contrato_MARIO_PEREZ.docx", doc.FileName)
	assert.Equal(t, domain.DocumentStatusDraft, doc.Status)
	assert.Equal(t, "laboral", doc.Category)
	// The object key is scoped by the document's own ID.
	assert.Equal(t, "documents/"+doc.ID.String()+"/Contrato_MARIO_PEREZ.docx", doc.S3Key)
	f.storage.AssertExpectations(t)
	f.docRepo.AssertExpectations(t)
}

func TestDocumentService_GenerateMissingCompanyLeavesNoArtifact(t *testing.T) {
	f := newDocumentFixture()
	input := generateInput()

	f.companyRepo.On("GetByID", mock.Anything, input.CompanyID).Return(nil, domain.ErrCompanyNotFound)

	_, err := f.svc.Generate(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	f.storage.AssertNotCalled(t, "Download", mock.Anything, mock.Anything, mock.Anything)
	f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	f.docRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDocumentService_GenerateMissingTemplateLeavesNoArtifact(t *testing.T) {
	f := newDocumentFixture()
	input := generateInput()

	f.companyRepo.On("GetByID", mock.Anything, input.CompanyID).Return(&domain.Company{ID: input.CompanyID}, nil)
	f.repRepo.On("GetByID", mock.Anything, input.RepresentativeID).Return(&domain.Representative{ID: input.RepresentativeID}, nil)
	f.templateRepo.On("GetByID", mock.Anything, input.TemplateID).Return(nil, domain.ErrTemplateNotFound)

	_, err := f.svc.Generate(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
	f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	f.docRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDocumentService_GenerateBadTemplateBytes(t *testing.T) {
	f := newDocumentFixture()
	input := generateInput()

	f.companyRepo.On("GetByID", mock.Anything, input.CompanyID).Return(&domain.Company{ID: input.CompanyID}, nil)
	f.repRepo.On("GetByID", mock.Anything, input.RepresentativeID).Return(&domain.Representative{ID: input.RepresentativeID}, nil)
	f.templateRepo.On("GetByID", mock.Anything, input.TemplateID).Return(&domain.Template{ID: input.TemplateID, S3Bucket: "b", S3Key: "k"}, nil)
	f.storage.On("Download", mock.Anything, "b", "k").Return([]byte("not a docx"), nil)

	_, err := f.svc.Generate(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrRenderFailed)
	f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	f.docRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDocumentService_GenerateUploadFailure(t *testing.T) {
	f := newDocumentFixture()
	input := generateInput()

	f.companyRepo.On("GetByID", mock.Anything, input.CompanyID).Return(&domain.Company{ID: input.CompanyID}, nil)
	f.repRepo.On("GetByID", mock.Anything, input.RepresentativeID).Return(&domain.Representative{ID: input.RepresentativeID}, nil)
	f.templateRepo.On("GetByID", mock.Anything, input.TemplateID).Return(&domain.Template{ID: input.TemplateID, S3Bucket: "b", S3Key: "k"}, nil)
	f.storage.On("Download", mock.Anything, "b", "k").Return(minimalTemplate(t), nil)
	f.storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("s3 down"))

	_, err := f.svc.Generate(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	f.docRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDocumentService_GenerateRegistryFailureRemovesUploadedObject(t *testing.T) {
	f := newDocumentFixture()
	input := generateInput()

	f.companyRepo.On("GetByID", mock.Anything, input.CompanyID).Return(&domain.Company{ID: input.CompanyID}, nil)
	f.repRepo.On("GetByID", mock.Anything, input.RepresentativeID).Return(&domain.Representative{ID: input.RepresentativeID}, nil)
	f.templateRepo.On("GetByID", mock.Anything, input.TemplateID).Return(&domain.Template{ID: input.TemplateID, S3Bucket: "b", S3Key: "k"}, nil)
	f.storage.On("Download", mock.Anything, "b", "k").Return(minimalTemplate(t), nil)

	var uploadedKey string
	f.storage.On("Upload", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		uploadedKey = args.Get(1).(port.UploadInput).Key
	}).Return(&port.UploadOutput{}, nil)
	f.docRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	f.storage.On("Delete", mock.Anything, "gestdoc-documents", mock.AnythingOfType("string")).Return(nil)

	_, err := f.svc.Generate(context.Background(), input)
	require.Error(t, err)

	// The compensating delete targets exactly the object that was uploaded.
	f.storage.AssertCalled(t, "Delete", mock.Anything, "gestdoc-documents", uploadedKey)
}

func TestDocumentService_GenerateRegistryFailureSurvivesCleanupFailure(t *testing.T) {
	f := newDocumentFixture()
	input := generateInput()

	f.companyRepo.On("GetByID", mock.Anything, input.CompanyID).Return(&domain.Company{ID: input.CompanyID}, nil)
	f.repRepo.On("GetByID", mock.Anything, input.RepresentativeID).Return(&domain.Representative{ID: input.RepresentativeID}, nil)
	f.templateRepo.On("GetByID", mock.Anything, input.TemplateID).Return(&domain.Template{ID: input.TemplateID, S3Bucket: "b", S3Key: "k"}, nil)
	f.storage.On("Download", mock.Anything, "b", "k").Return(minimalTemplate(t), nil)
	f.storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	f.docRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	f.storage.On("Delete", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("object locked"))

	_, err := f.svc.Generate(context.Background(), input)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "object locked")
}

func TestDocumentService_Process(t *testing.T) {
	f := newDocumentFixture()
	input := ProcessFixtureInput()

	extraction := &service.ExtractionOutput{
		Result: domain.ExtractionResult{
			Person: domain.PersonFields{FullName: "MARIO PEREZ", CUI: "1234 56789 0123"},
		},
		Text: "COLABORADOR MARIO PEREZ",
	}
	f.extraction.On("ExtractFromImage", mock.Anything, input.Image, "image/png").Return(extraction, nil)
	f.companyRepo.On("GetByID", mock.Anything, input.CompanyID).Return(&domain.Company{ID: input.CompanyID}, nil)
	f.repRepo.On("GetByID", mock.Anything, input.RepresentativeID).Return(&domain.Representative{ID: input.RepresentativeID}, nil)
	f.templateRepo.On("GetByID", mock.Anything, input.TemplateID).Return(&domain.Template{ID: input.TemplateID, S3Bucket: "b", S3Key: "k"}, nil)
	f.storage.On("Download", mock.Anything, "b", "k").Return(minimalTemplate(t), nil)
	f.storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	f.docRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	out, err := f.svc.Process(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "MARIO PEREZ", out.Document.EmployeeName)
	assert.Equal(t, "COLABORADOR MARIO PEREZ", out.Document.SourceText)
	assert.Same(t, extraction, out.Extraction)
}

func ProcessFixtureInput() service.ProcessInput {
	return service.ProcessInput{
		TemplateID:       uuid.New(),
		CompanyID:        uuid.New(),
		RepresentativeID: uuid.New(),
		ContractDate:     "2025-01-29",
		Image:            []byte{0x89, 0x50, 0x4e, 0x47},
		ContentType:      "image/png",
		CreatedBy:        uuid.New(),
	}
}

func TestDocumentService_ProcessRecognitionFailureStopsEarly(t *testing.T) {
	f := newDocumentFixture()
	input := ProcessFixtureInput()

	f.extraction.On("ExtractFromImage", mock.Anything, input.Image, "image/png").Return(nil, domain.ErrRecognitionFailed)

	_, err := f.svc.Process(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrRecognitionFailed)
	f.companyRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestDocumentService_GetDownloadURL(t *testing.T) {
	f := newDocumentFixture()
	id := uuid.New()
	doc := &domain.GeneratedDocument{ID: id, S3Bucket: "gestdoc-documents", S3Key: "documents/" + id.String() + "/Contrato_X.docx"}

	f.docRepo.On("GetByID", mock.Anything, id).Return(doc, nil)
	f.storage.On("GetPresignedURL", mock.Anything, doc.S3Bucket, doc.S3Key, int64(900)).Return("https://signed.example/doc", nil)

	url, err := f.svc.GetDownloadURL(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/doc", url)
}

func TestDocumentService_DeleteRemovesRowEvenWhenObjectDeleteFails(t *testing.T) {
	f := newDocumentFixture()
	id := uuid.New()
	doc := &domain.GeneratedDocument{ID: id, S3Bucket: "b", S3Key: "k"}

	f.docRepo.On("GetByID", mock.Anything, id).Return(doc, nil)
	f.storage.On("Delete", mock.Anything, "b", "k").Return(errors.New("object gone"))
	f.docRepo.On("Delete", mock.Anything, id).Return(nil)

	err := f.svc.Delete(context.Background(), id)
	require.NoError(t, err)
	f.docRepo.AssertExpectations(t)
}
