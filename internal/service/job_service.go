package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobconnect/internal/core/cache"
	"jobconnect/internal/domain"
)

const (
	activeJobsCacheKey = "jobs:active"
	jobsCacheTTL       = 60 * time.Second

	fieldLimit = 191
)

type JobInput struct {
	Title        string
	Description  string
	Requirements string
	Location     string
	Salary       string
	Type         domain.JobType
	Deadline     *time.Time
}

// JobService owns employer job CRUD (gated on the ownership chain), the
// public active listing, and the admin view.
type JobService struct {
	jobs      domain.JobRepository
	companies domain.CompanyRepository
	cache     *cache.Cache
}

func NewJobService(jobs domain.JobRepository, companies domain.CompanyRepository, c *cache.Cache) *JobService {
	return &JobService{jobs: jobs, companies: companies, cache: c}
}

// Create posts a job under the employer's company. An employer without a
// company profile cannot post.
func (s *JobService) Create(ctx context.Context, ownerID int64, in JobInput) (*domain.Job, error) {
	company, err := s.companies.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: company profile required before posting jobs", domain.ErrConflict)
		}
		return nil, err
	}
	j, err := s.jobFromInput(in)
	if err != nil {
		return nil, err
	}
	j.CompanyID = company.ID
	if err := s.jobs.Create(ctx, j); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, activeJobsCacheKey)
	return j, nil
}

// Update edits an owned job; a job owned by someone else resolves to
// ErrNotFound.
func (s *JobService) Update(ctx context.Context, ownerID, jobID int64, in JobInput) (*domain.Job, error) {
	j, err := s.jobs.FindOwned(ctx, jobID, ownerID)
	if err != nil {
		return nil, err
	}
	updated, err := s.jobFromInput(in)
	if err != nil {
		return nil, err
	}
	j.Title = updated.Title
	j.Description = updated.Description
	j.Requirements = updated.Requirements
	j.Location = updated.Location
	j.Salary = updated.Salary
	j.Type = updated.Type
	j.Deadline = updated.Deadline
	if err := s.jobs.Update(ctx, j); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, activeJobsCacheKey)
	return j, nil
}

func (s *JobService) Delete(ctx context.Context, ownerID, jobID int64) error {
	if _, err := s.jobs.FindOwned(ctx, jobID, ownerID); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, activeJobsCacheKey)
	return nil
}

// ListOwn returns the employer's jobs, newest first.
func (s *JobService) ListOwn(ctx context.Context, ownerID int64) ([]domain.Job, error) {
	company, err := s.companies.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.Job{}, nil
		}
		return nil, err
	}
	return s.jobs.ListByCompany(ctx, company.ID)
}

// ListActive is the public listing: active predicate plus optional filters.
// Unfiltered requests are served through the cache.
func (s *JobService) ListActive(ctx context.Context, f domain.JobFilter) ([]domain.Job, error) {
	if f == (domain.JobFilter{}) {
		out, err := cache.GetOrLoadJSON[[]domain.Job](s.cache, ctx, activeJobsCacheKey, jobsCacheTTL,
			func(ctx context.Context) (*[]domain.Job, error) {
				jobs, err := s.jobs.ListActive(ctx, f, time.Now())
				if err != nil {
					return nil, err
				}
				return &jobs, nil
			})
		if err != nil {
			return nil, err
		}
		if out == nil {
			return []domain.Job{}, nil
		}
		// A cached payload can outlive a deadline, so the predicate is
		// re-applied on the way out.
		return activeJobs(*out, time.Now()), nil
	}
	return s.jobs.ListActive(ctx, f, time.Now())
}

// activeJobs drops jobs whose deadline has passed since the slice was built.
func activeJobs(jobs []domain.Job, now time.Time) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.Active(now) {
			out = append(out, j)
		}
	}
	return out
}

// Get returns one job with its company for the public detail view.
func (s *JobService) Get(ctx context.Context, id int64) (*domain.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) CountActive(ctx context.Context) (int64, error) {
	return s.jobs.CountActive(ctx, time.Now())
}

// AdminList returns every job, expired included, uncached.
func (s *JobService) AdminList(ctx context.Context) ([]domain.Job, error) {
	return s.jobs.ListAll(ctx)
}

// AdminCreate posts a job for an arbitrary company.
func (s *JobService) AdminCreate(ctx context.Context, companyID int64, in JobInput) (*domain.Job, error) {
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		return nil, err
	}
	j, err := s.jobFromInput(in)
	if err != nil {
		return nil, err
	}
	j.CompanyID = companyID
	if err := s.jobs.Create(ctx, j); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, activeJobsCacheKey)
	return j, nil
}

func (s *JobService) AdminDelete(ctx context.Context, jobID int64) error {
	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, activeJobsCacheKey)
	return nil
}

func (s *JobService) jobFromInput(in JobInput) (*domain.Job, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description are required", domain.ErrInvalidInput)
	}
	jobType := in.Type
	if jobType == "" {
		jobType = domain.JobFullTime
	}
	if !domain.ValidJobType(jobType) {
		return nil, fmt.Errorf("%w: invalid job type", domain.ErrInvalidInput)
	}
	return &domain.Job{
		Title:        truncate(title),
		Description:  truncate(description),
		Requirements: truncate(strings.TrimSpace(in.Requirements)),
		Location:     truncate(strings.TrimSpace(in.Location)),
		Salary:       truncate(strings.TrimSpace(in.Salary)),
		Type:         jobType,
		Deadline:     in.Deadline,
	}, nil
}

// truncate caps free-text fields at the column width.
func truncate(s string) string {
	if len(s) > fieldLimit {
		return s[:fieldLimit]
	}
	return s
}
