package domain

// UserRole defines the role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// DocumentStatus represents the lifecycle of a generated document.
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "borrador"
	DocumentStatusFinal     DocumentStatus = "final"
	DocumentStatusCancelled DocumentStatus = "anulado"
)

// ImageType represents the allowed image types for recognition uploads.
type ImageType string

const (
	ImageTypeJPG ImageType = "jpg"
	ImageTypePNG ImageType = "png"
)

// AllowedImageContentTypes maps MIME content types to ImageType.
var AllowedImageContentTypes = map[string]ImageType{
	"image/jpeg": ImageTypeJPG,
	"image/png":  ImageTypePNG,
}

// DocxContentType is the MIME type of rendered contract documents.
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
