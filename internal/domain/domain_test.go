package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobActivePredicate(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.True(t, (&Job{}).Active(now), "nil deadline means always active")
	assert.True(t, (&Job{Deadline: &future}).Active(now))
	assert.False(t, (&Job{Deadline: &past}).Active(now))
	assert.False(t, (&Job{Deadline: &now}).Active(now), "deadline exactly now is expired")
}

func TestAnnouncementActivePredicate(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.True(t, (&Announcement{}).Active(now))
	assert.True(t, (&Announcement{ExpirationDate: &future}).Active(now))
	assert.False(t, (&Announcement{ExpirationDate: &past}).Active(now))
}

func TestValidTransitionTarget(t *testing.T) {
	assert.True(t, ValidTransitionTarget(StatusShortlisted))
	assert.True(t, ValidTransitionTarget(StatusRejected))
	assert.True(t, ValidTransitionTarget(StatusHired))
	assert.False(t, ValidTransitionTarget(StatusApplied), "APPLIED is only an initial state")
	assert.False(t, ValidTransitionTarget("PENDING"))
	assert.False(t, ValidTransitionTarget(""))
}

func TestValidUserRole(t *testing.T) {
	assert.True(t, ValidUserRole(RoleEmployee))
	assert.True(t, ValidUserRole(RoleEmployer))
	assert.False(t, ValidUserRole(RoleAdmin), "admins live in their own identity space")
	assert.False(t, ValidUserRole("employee"), "roles are case sensitive")
}

func TestValidJobTypeAndDocumentType(t *testing.T) {
	assert.True(t, ValidJobType(JobFullTime))
	assert.True(t, ValidJobType(JobInternship))
	assert.False(t, ValidJobType("FREELANCE"))

	assert.True(t, ValidDocumentType(DocCV))
	assert.True(t, ValidDocumentType(DocDiploma))
	assert.True(t, ValidDocumentType(DocCertificate))
	assert.False(t, ValidDocumentType("SELFIE"))
}
