package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobconnect/internal/domain"
	"jobconnect/internal/notify"
)

func TestHomeAggregates(t *testing.T) {
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo(companies)
	announcements := newFakeAnnouncementRepo()
	mailer := &captureMailer{}
	d := notify.NewDispatcher(mailer, zap.NewNop(), 16)
	defer d.Close()
	svc := NewPortalService(jobs, users, announcements, d, "inbox@example.com", nil, zap.NewNop())

	ctx := context.Background()
	require.NoError(t, users.Create(ctx, &domain.User{Email: "a@example.com", NationalID: "1000000000000001", Role: domain.RoleEmployee}))
	require.NoError(t, users.Create(ctx, &domain.User{Email: "b@example.com", NationalID: "1000000000000002", Role: domain.RoleEmployer}))

	past := time.Now().Add(-time.Hour)
	require.NoError(t, jobs.Create(ctx, &domain.Job{Title: "open", Description: "d"}))
	require.NoError(t, jobs.Create(ctx, &domain.Job{Title: "closed", Description: "d", Deadline: &past}))
	require.NoError(t, announcements.Create(ctx, &domain.Announcement{Title: "live", Content: "c"}))
	require.NoError(t, announcements.Create(ctx, &domain.Announcement{Title: "gone", Content: "c", ExpirationDate: &past}))

	home := svc.Home(ctx)
	assert.EqualValues(t, 1, home.ActiveJobs)
	assert.EqualValues(t, 2, home.Users)
	require.Len(t, home.Announcements, 1)
	assert.Equal(t, "live", home.Announcements[0].Title)
}

func TestLiveAnnouncementsDropsNewlyExpired(t *testing.T) {
	// Cached home payloads can carry announcements that expired after the
	// fill.
	now := time.Now()
	stale := now.Add(-time.Minute)
	later := now.Add(time.Hour)
	cached := []domain.Announcement{
		{ID: 1, Title: "gone", ExpirationDate: &stale},
		{ID: 2, Title: "live", ExpirationDate: &later},
		{ID: 3, Title: "permanent"},
	}

	anns := liveAnnouncements(cached, now)
	require.Len(t, anns, 2)
	assert.Equal(t, "live", anns[0].Title)
	assert.Equal(t, "permanent", anns[1].Title)
}

func TestContactForwardsToInbox(t *testing.T) {
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	mailer := &captureMailer{}
	d := notify.NewDispatcher(mailer, zap.NewNop(), 16)
	svc := NewPortalService(newFakeJobRepo(companies), users, newFakeAnnouncementRepo(), d, "inbox@example.com", nil, zap.NewNop())

	svc.Contact("Visitor", "visitor@example.com", "hello there")
	d.Close()

	msgs := mailer.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "inbox@example.com", msgs[0].To)
	assert.Contains(t, msgs[0].Body, "visitor@example.com")
	assert.Contains(t, msgs[0].Body, "hello there")
}
