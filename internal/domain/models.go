package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user of the system.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Company represents a contracting company whose registry data appears in
// the rendered contract.
type Company struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	LegalName         string     `db:"legal_name" json:"legal_name"`
	AuthorizedIn      string     `db:"authorized_in" json:"authorized_in"`
	AuthorizationDate *time.Time `db:"authorization_date" json:"authorization_date"`
	AuthorizedBy      string     `db:"authorized_by" json:"authorized_by"`
	RegisteredIn      string     `db:"registered_in" json:"registered_in"`
	RegistryNumber    string     `db:"registry_number" json:"registry_number"`
	FolioNumber       string     `db:"folio_number" json:"folio_number"`
	BookNumber        string     `db:"book_number" json:"book_number"`
	BookType          string     `db:"book_type" json:"book_type"`
	NoticeAddress     string     `db:"notice_address" json:"notice_address"`
	SecondNoticeAddr  string     `db:"second_notice_address" json:"second_notice_address"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// Representative represents a company's legal representative.
type Representative struct {
	ID            uuid.UUID `db:"id" json:"id"`
	CompanyID     uuid.UUID `db:"company_id" json:"company_id"`
	FullName      string    `db:"full_name" json:"full_name"`
	BirthDate     time.Time `db:"birth_date" json:"birth_date"`
	CUI           string    `db:"cui" json:"cui"`
	MaritalStatus string    `db:"marital_status" json:"marital_status"`
	Profession    string    `db:"profession" json:"profession"`
	Nationality   string    `db:"nationality" json:"nationality"`
	IssuedIn      string    `db:"issued_in" json:"issued_in"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Template stores metadata about a contract template; the .docx bytes live
// in object storage under S3Key.
type Template struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	FileName    string    `db:"file_name" json:"file_name"`
	Category    string    `db:"category" json:"category"`
	S3Bucket    string    `db:"s3_bucket" json:"s3_bucket"`
	S3Key       string    `db:"s3_key" json:"s3_key"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// GeneratedDocument records one successful contract render. The storage key
// is scoped by the document's own ID, so two renders never collide even for
// the same employee name.
type GeneratedDocument struct {
	ID               uuid.UUID      `db:"id" json:"id"`
	TemplateID       uuid.UUID      `db:"template_id" json:"template_id"`
	CompanyID        uuid.UUID      `db:"company_id" json:"company_id"`
	RepresentativeID uuid.UUID      `db:"representative_id" json:"representative_id"`
	EmployeeName     string         `db:"employee_name" json:"employee_name"`
	EmployeeCUI      string         `db:"employee_cui" json:"employee_cui"`
	FileName         string         `db:"file_name" json:"file_name"`
	S3Bucket         string         `db:"s3_bucket" json:"s3_bucket"`
	S3Key            string         `db:"s3_key" json:"s3_key"`
	FileSize         int64          `db:"file_size" json:"file_size"`
	Category         string         `db:"category" json:"category"`
	Status           DocumentStatus `db:"status" json:"status"`
	SourceText       string         `db:"source_text" json:"source_text,omitempty"`
	Notes            string         `db:"notes" json:"notes"`
	CreatedBy        uuid.UUID      `db:"created_by" json:"created_by"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
}

// PersonFields holds the employee fields recovered from recognized text.
// Absent fields stay empty strings; domain defaults (Soltero, Guatemalteco)
// are applied at formatting time, never here.
type PersonFields struct {
	CUI           string `json:"cui"`
	FullName      string `json:"nombre_completo"`
	Address       string `json:"direccion"`
	Age           string `json:"edad"`
	MaritalStatus string `json:"estado_civil"`
	Nationality   string `json:"nacionalidad"`
	Profession    string `json:"profesion"`
	Position      string `json:"posicion"`
}

// ContractFields holds the contract fields recovered from recognized text.
// EndDate carries the textual open-ended tag (OpenEndedContract) when the
// form says the contract has no fixed end date; that state is distinct from
// an unparseable date and must survive every downstream stage.
type ContractFields struct {
	PositionType string `json:"tipo_contrato"`
	StartDate    string `json:"fecha_inicio"`
	EndDate      string `json:"fecha_fin"`
	Amount       string `json:"monto"`
	AmountWords  string `json:"monto_en_letras"`
	ExtraDetail  string `json:"descripcion_adicional"`
}

// OpenEndedContract is the textual tag for an end date with no fixed value.
const OpenEndedContract = "Contrato Indefinido"

// ExtractionResult is the structured output of one recognition pass.
type ExtractionResult struct {
	CompanyName string         `json:"empresa_contratante"`
	Person      PersonFields   `json:"datos_persona"`
	Contract    ContractFields `json:"datos_contrato"`
}
