package domain

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserInactive           = errors.New("user is inactive")
	ErrDuplicateEmail         = errors.New("email already exists")
	ErrUnsupportedFileType    = errors.New("unsupported file type")
	ErrFileTooLarge           = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed           = errors.New("file upload to storage failed")
	ErrCompanyNotFound        = errors.New("company not found")
	ErrRepresentativeNotFound = errors.New("legal representative not found")
	ErrTemplateNotFound       = errors.New("template not found")
	ErrDocumentNotFound       = errors.New("generated document not found")
	ErrRecognitionFailed      = errors.New("text recognition failed")
	ErrRenderFailed           = errors.New("template rendering failed")
)
