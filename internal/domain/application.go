package domain

import (
	"context"
	"time"
)

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "APPLIED"
	StatusShortlisted ApplicationStatus = "SHORTLISTED"
	StatusRejected    ApplicationStatus = "REJECTED"
	StatusHired       ApplicationStatus = "HIRED"
)

// ValidTransitionTarget reports whether s may be set by a transition call.
// APPLIED is the creation-only initial state and never a target.
func ValidTransitionTarget(s ApplicationStatus) bool {
	switch s {
	case StatusShortlisted, StatusRejected, StatusHired:
		return true
	}
	return false
}

// Application links an EMPLOYEE user to a Job. The composite unique index on
// (user_id, job_id) is what guarantees at most one application per pair, even
// under concurrent submissions.
type Application struct {
	ID          int64             `gorm:"primaryKey" json:"id"`
	UserID      int64             `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"user_id"`
	JobID       int64             `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"job_id"`
	Status      ApplicationStatus `gorm:"size:16;not null;default:APPLIED" json:"status"`
	// CoverLetter is the stored filename of the uploaded cover-letter file.
	CoverLetter string `gorm:"size:191;not null" json:"cover_letter"`
	AppliedAt   time.Time         `gorm:"autoCreateTime" json:"applied_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Job  *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

func (Application) TableName() string { return "applications" }

type ApplicationRepository interface {
	Create(ctx context.Context, a *Application) error
	// FindByID loads the application with its user, job and company.
	FindByID(ctx context.Context, id int64) (*Application, error)
	// FindOwned scopes the lookup to applications whose job belongs to a
	// company owned by employerID; a foreign application resolves to
	// ErrNotFound, indistinguishable from a missing one.
	FindOwned(ctx context.Context, id, employerID int64) (*Application, error)
	UpdateStatus(ctx context.Context, id int64, status ApplicationStatus) error
	ListByUser(ctx context.Context, userID int64) ([]Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
	ListAll(ctx context.Context) ([]Application, error)
}
