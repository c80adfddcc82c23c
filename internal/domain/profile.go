package domain

import (
	"context"
	"time"
)

// EmployeeProfile is the one-to-one free-text profile of an EMPLOYEE user.
type EmployeeProfile struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"uniqueIndex;not null" json:"user_id"`
	Phone      string    `gorm:"size:32" json:"phone"`
	Location   string    `gorm:"size:191" json:"location"`
	Education  string    `gorm:"type:text" json:"education"`
	Skills     string    `gorm:"type:text" json:"skills"`
	Experience string    `gorm:"type:text" json:"experience"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (EmployeeProfile) TableName() string { return "employee_profiles" }

type EmployeeProfileRepository interface {
	Upsert(ctx context.Context, p *EmployeeProfile) error
	FindByUser(ctx context.Context, userID int64) (*EmployeeProfile, error)
}

type DocumentType string

const (
	DocCV          DocumentType = "CV"
	DocDiploma     DocumentType = "DIPLOMA"
	DocCertificate DocumentType = "CERTIFICATE"
)

func ValidDocumentType(t DocumentType) bool {
	switch t {
	case DocCV, DocDiploma, DocCertificate:
		return true
	}
	return false
}

type EmployeeDocument struct {
	ID         int64        `gorm:"primaryKey" json:"id"`
	UserID     int64        `gorm:"index;not null" json:"user_id"`
	FileType   DocumentType `gorm:"size:16;not null" json:"file_type"`
	FileName   string       `gorm:"size:191;not null" json:"file_name"`
	FilePath   string       `gorm:"size:191;not null" json:"file_path"`
	UploadedAt time.Time    `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (EmployeeDocument) TableName() string { return "employee_documents" }

type EmployeeDocumentRepository interface {
	Create(ctx context.Context, d *EmployeeDocument) error
	ListByUser(ctx context.Context, userID int64) ([]EmployeeDocument, error)
	// FindOwned resolves the document only when it belongs to userID.
	FindOwned(ctx context.Context, id, userID int64) (*EmployeeDocument, error)
	// DeleteOwned removes the document only when it belongs to userID.
	DeleteOwned(ctx context.Context, id, userID int64) error
}
