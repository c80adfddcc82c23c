package domain

import (
	"context"
	"time"
)

type JobType string

const (
	JobFullTime   JobType = "FULL_TIME"
	JobPartTime   JobType = "PART_TIME"
	JobContract   JobType = "CONTRACT"
	JobInternship JobType = "INTERNSHIP"
)

func ValidJobType(t JobType) bool {
	switch t {
	case JobFullTime, JobPartTime, JobContract, JobInternship:
		return true
	}
	return false
}

type Job struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	CompanyID    int64      `gorm:"index;not null" json:"company_id"`
	Title        string     `gorm:"size:191;not null" json:"title"`
	Description  string     `gorm:"size:191;not null" json:"description"`
	Requirements string     `gorm:"size:191" json:"requirements"`
	Location     string     `gorm:"size:191" json:"location"`
	Salary       string     `gorm:"size:191" json:"salary"`
	Type         JobType    `gorm:"size:32;not null;default:FULL_TIME" json:"type"`
	Deadline     *time.Time `json:"deadline"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (Job) TableName() string { return "jobs" }

// Active reports whether the job is visible in public listings:
// no deadline, or a deadline still in the future at now.
func (j *Job) Active(now time.Time) bool {
	return j.Deadline == nil || j.Deadline.After(now)
}

// JobFilter narrows public job listings. Zero values match everything.
type JobFilter struct {
	Query    string
	Location string
	Type     JobType
}

type JobRepository interface {
	Create(ctx context.Context, j *Job) error
	Update(ctx context.Context, j *Job) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Job, error)
	// FindOwned resolves a job only when the ownership chain
	// employer -> company -> job holds for ownerID.
	FindOwned(ctx context.Context, id, ownerID int64) (*Job, error)
	ListActive(ctx context.Context, f JobFilter, now time.Time) ([]Job, error)
	ListByCompany(ctx context.Context, companyID int64) ([]Job, error)
	ListAll(ctx context.Context) ([]Job, error)
	CountActive(ctx context.Context, now time.Time) (int64, error)
}
