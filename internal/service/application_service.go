package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"jobconnect/internal/core/auth"
	"jobconnect/internal/domain"
	"jobconnect/internal/notify"
)

// ApplicationService owns the application lifecycle: creation by employees
// and status transitions by the owning employer or an admin, with the
// notification side-effect.
type ApplicationService struct {
	apps       domain.ApplicationRepository
	jobs       domain.JobRepository
	dispatcher *notify.Dispatcher
	log        *zap.Logger
}

func NewApplicationService(apps domain.ApplicationRepository, jobs domain.JobRepository, dispatcher *notify.Dispatcher, log *zap.Logger) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, dispatcher: dispatcher, log: log}
}

// Apply creates an application with status APPLIED. coverLetter is the
// stored filename of the uploaded cover-letter file and is required.
// Duplicate submissions for the same (user, job) pair fail with ErrConflict;
// the unique index decides, not a read-then-write.
func (s *ApplicationService) Apply(ctx context.Context, userID, jobID int64, coverLetter string) (*domain.Application, error) {
	if coverLetter == "" {
		return nil, fmt.Errorf("%w: cover letter required", domain.ErrInvalidInput)
	}
	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return nil, err
	}
	a := &domain.Application{
		UserID:      userID,
		JobID:       jobID,
		Status:      domain.StatusApplied,
		CoverLetter: coverLetter,
	}
	if err := s.apps.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Transition sets a new status on behalf of actor. Employers may only reach
// applications through their ownership chain; a foreign application is
// reported as not found. Admins reach any application. The overwrite is
// unconditional: any authorized transition to a valid target succeeds
// regardless of the current status.
func (s *ApplicationService) Transition(ctx context.Context, actor *auth.Session, applicationID int64, status domain.ApplicationStatus) (*domain.Application, error) {
	if !domain.ValidTransitionTarget(status) {
		return nil, fmt.Errorf("%w: invalid status", domain.ErrInvalidInput)
	}

	var (
		a   *domain.Application
		err error
	)
	switch {
	case actor.Is(domain.RoleAdmin):
		a, err = s.apps.FindByID(ctx, applicationID)
	case actor.Is(domain.RoleEmployer):
		employerID, _ := actor.UserID()
		a, err = s.apps.FindOwned(ctx, applicationID, employerID)
	default:
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	if err := s.apps.UpdateStatus(ctx, a.ID, status); err != nil {
		return nil, err
	}
	a.Status = status

	s.notifyApplicant(a, status)
	return a, nil
}

// ListForUser returns the applicant's own applications with job context.
func (s *ApplicationService) ListForUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	return s.apps.ListByUser(ctx, userID)
}

// ListForJob returns applicants for a job the employer owns; a foreign job is
// reported as not found.
func (s *ApplicationService) ListForJob(ctx context.Context, employerID, jobID int64) ([]domain.Application, error) {
	if _, err := s.jobs.FindOwned(ctx, jobID, employerID); err != nil {
		return nil, err
	}
	return s.apps.ListByJob(ctx, jobID)
}

// AdminList returns every application with user, job and company context.
func (s *ApplicationService) AdminList(ctx context.Context) ([]domain.Application, error) {
	return s.apps.ListAll(ctx)
}

// notifyApplicant submits the status email to the dispatcher. Fire-and-
// forget: the transition already succeeded, so a missing preload or a later
// send failure is only logged.
func (s *ApplicationService) notifyApplicant(a *domain.Application, status domain.ApplicationStatus) {
	if a.User == nil || a.Job == nil {
		s.log.Warn("application missing context for notification", zap.Int64("application_id", a.ID))
		return
	}
	companyName := "Company"
	if a.Job.Company != nil {
		companyName = a.Job.Company.Name
	}
	subject, body := notify.StatusEmail(status, a.User.FullName, a.Job.Title, companyName)
	s.dispatcher.Enqueue(notify.Message{To: a.User.Email, Subject: subject, Body: body})
}
