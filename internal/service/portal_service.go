package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"jobconnect/internal/core/cache"
	"jobconnect/internal/domain"
	"jobconnect/internal/notify"
)

const (
	homeCacheKey = "portal:home"
	homeCacheTTL = 30 * time.Second
)

// HomeData backs the public landing page.
type HomeData struct {
	ActiveJobs    int64                 `json:"active_jobs"`
	Users         int64                 `json:"users"`
	Announcements []domain.Announcement `json:"announcements"`
}

// PortalService serves the public, unauthenticated surface. Its reads
// degrade: a failing store yields empty data rather than an error, so the
// landing page never hard-fails on a database hiccup.
type PortalService struct {
	jobs          domain.JobRepository
	users         domain.UserRepository
	announcements domain.AnnouncementRepository
	dispatcher    *notify.Dispatcher
	contactTo     string
	cache         *cache.Cache
	log           *zap.Logger
}

func NewPortalService(jobs domain.JobRepository, users domain.UserRepository, announcements domain.AnnouncementRepository, dispatcher *notify.Dispatcher, contactTo string, c *cache.Cache, log *zap.Logger) *PortalService {
	return &PortalService{
		jobs:          jobs,
		users:         users,
		announcements: announcements,
		dispatcher:    dispatcher,
		contactTo:     contactTo,
		cache:         c,
		log:           log,
	}
}

// Home assembles landing-page data, cached briefly.
func (s *PortalService) Home(ctx context.Context) *HomeData {
	out, err := cache.GetOrLoadJSON[HomeData](s.cache, ctx, homeCacheKey, homeCacheTTL, s.loadHome)
	if err != nil || out == nil {
		if err != nil {
			s.log.Error("home data load failed, serving empty", zap.Error(err))
		}
		return &HomeData{Announcements: []domain.Announcement{}}
	}
	// An announcement can expire while its cached copy is still live.
	out.Announcements = liveAnnouncements(out.Announcements, time.Now())
	return out
}

func liveAnnouncements(anns []domain.Announcement, now time.Time) []domain.Announcement {
	out := make([]domain.Announcement, 0, len(anns))
	for _, a := range anns {
		if a.Active(now) {
			out = append(out, a)
		}
	}
	return out
}

func (s *PortalService) loadHome(ctx context.Context) (*HomeData, error) {
	now := time.Now()
	data := &HomeData{Announcements: []domain.Announcement{}}

	jobCount, err := s.jobs.CountActive(ctx, now)
	if err != nil {
		return nil, err
	}
	data.ActiveJobs = jobCount

	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	data.Users = userCount

	announcements, err := s.announcements.ListActive(ctx, now)
	if err != nil {
		return nil, err
	}
	data.Announcements = announcements
	return data, nil
}

// Contact forwards a contact-form submission to the platform inbox,
// fire-and-forget.
func (s *PortalService) Contact(name, email, message string) {
	subject, body := notify.ContactEmail(name, email, message)
	s.dispatcher.Enqueue(notify.Message{To: s.contactTo, Subject: subject, Body: body})
}
