package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobconnect/internal/core/auth"
	"jobconnect/internal/domain"
	"jobconnect/internal/notify"
)

type appFixture struct {
	svc        *ApplicationService
	users      *fakeUserRepo
	companies  *fakeCompanyRepo
	jobs       *fakeJobRepo
	apps       *fakeApplicationRepo
	mailer     *captureMailer
	dispatcher *notify.Dispatcher

	applicant *domain.User
	employer  *domain.User
	job       *domain.Job
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	ctx := context.Background()

	f := &appFixture{
		users:     newFakeUserRepo(),
		companies: newFakeCompanyRepo(),
		mailer:    &captureMailer{},
	}
	f.jobs = newFakeJobRepo(f.companies)
	f.apps = newFakeApplicationRepo(f.jobs, f.users)
	f.dispatcher = notify.NewDispatcher(f.mailer, zap.NewNop(), 16)
	f.svc = NewApplicationService(f.apps, f.jobs, f.dispatcher, zap.NewNop())

	f.applicant = &domain.User{FullName: "App Licant", Email: "applicant@example.com", NationalID: "1000000000000001", Role: domain.RoleEmployee}
	require.NoError(t, f.users.Create(ctx, f.applicant))
	f.employer = &domain.User{FullName: "Emp Loyer", Email: "employer@example.com", NationalID: "1000000000000002", Role: domain.RoleEmployer}
	require.NoError(t, f.users.Create(ctx, f.employer))

	company := &domain.Company{OwnerID: f.employer.ID, Name: "Acme"}
	require.NoError(t, f.companies.Upsert(ctx, company))
	f.job = &domain.Job{CompanyID: company.ID, Title: "Backend Engineer", Description: "Go services", Type: domain.JobFullTime}
	require.NoError(t, f.jobs.Create(ctx, f.job))
	return f
}

func employerSession(id int64) *auth.Session {
	return &auth.Session{Role: domain.RoleEmployer, Subject: id}
}

func TestApplyAndDuplicate(t *testing.T) {
	f := newAppFixture(t)
	defer f.dispatcher.Close()
	ctx := context.Background()

	a, err := f.svc.Apply(ctx, f.applicant.ID, f.job.ID, "1700000000000_cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApplied, a.Status)
	assert.Equal(t, "1700000000000_cv.pdf", a.CoverLetter)

	_, err = f.svc.Apply(ctx, f.applicant.ID, f.job.ID, "1700000000001_cv.pdf")
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.svc.Apply(ctx, f.applicant.ID, 9999, "cv.pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// the cover-letter file reference is mandatory
	_, err = f.svc.Apply(ctx, f.applicant.ID, f.job.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransitionByOwner(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	a, err := f.svc.Apply(ctx, f.applicant.ID, f.job.ID, "cv.pdf")
	require.NoError(t, err)

	got, err := f.svc.Transition(ctx, employerSession(f.employer.ID), a.ID, domain.StatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShortlisted, got.Status)

	// overwrite is unconditional: REJECTED after SHORTLISTED, then back
	got, err = f.svc.Transition(ctx, employerSession(f.employer.ID), a.ID, domain.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, got.Status)
	got, err = f.svc.Transition(ctx, employerSession(f.employer.ID), a.ID, domain.StatusHired)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusHired, got.Status)

	f.dispatcher.Close()
	msgs := f.mailer.messages()
	require.Len(t, msgs, 3, "exactly one mail per transition")
	for _, m := range msgs {
		assert.Equal(t, f.applicant.Email, m.To)
	}
}

func TestTransitionForeignEmployer(t *testing.T) {
	f := newAppFixture(t)
	defer f.dispatcher.Close()
	ctx := context.Background()

	a, err := f.svc.Apply(ctx, f.applicant.ID, f.job.ID, "cv.pdf")
	require.NoError(t, err)

	other := &domain.User{FullName: "Other Emp", Email: "other@example.com", NationalID: "1000000000000003", Role: domain.RoleEmployer}
	require.NoError(t, f.users.Create(ctx, other))

	_, err = f.svc.Transition(ctx, employerSession(other.ID), a.ID, domain.StatusHired)
	assert.ErrorIs(t, err, domain.ErrNotFound, "foreign application must read as missing")

	stored, err := f.apps.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApplied, stored.Status, "status untouched after denied transition")
	assert.Empty(t, f.mailer.messages())
}

func TestTransitionByAdmin(t *testing.T) {
	f := newAppFixture(t)
	defer f.dispatcher.Close()
	ctx := context.Background()

	a, err := f.svc.Apply(ctx, f.applicant.ID, f.job.ID, "cv.pdf")
	require.NoError(t, err)

	admin := &auth.Session{Role: domain.RoleAdmin, Subject: 1}
	got, err := f.svc.Transition(ctx, admin, a.ID, domain.StatusHired)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusHired, got.Status)
}

func TestTransitionInvalidTargets(t *testing.T) {
	f := newAppFixture(t)
	defer f.dispatcher.Close()
	ctx := context.Background()

	a, err := f.svc.Apply(ctx, f.applicant.ID, f.job.ID, "cv.pdf")
	require.NoError(t, err)

	// APPLIED is the initial state, never a transition target
	_, err = f.svc.Transition(ctx, employerSession(f.employer.ID), a.ID, domain.StatusApplied)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.svc.Transition(ctx, employerSession(f.employer.ID), a.ID, "PROMOTED")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// employees cannot transition at all
	emp := &auth.Session{Role: domain.RoleEmployee, Subject: f.applicant.ID}
	_, err = f.svc.Transition(ctx, emp, a.ID, domain.StatusHired)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestListForJobScoped(t *testing.T) {
	f := newAppFixture(t)
	defer f.dispatcher.Close()
	ctx := context.Background()

	_, err := f.svc.Apply(ctx, f.applicant.ID, f.job.ID, "cv.pdf")
	require.NoError(t, err)

	apps, err := f.svc.ListForJob(ctx, f.employer.ID, f.job.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	_, err = f.svc.ListForJob(ctx, f.employer.ID+100, f.job.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
