package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobconnect/internal/domain"
	"jobconnect/internal/service"
	"jobconnect/internal/transport/http/middleware"
	resp "jobconnect/internal/transport/http/response"
)

// AdminHandler serves the back-office: identity management, cross-tenant
// job and application oversight, and announcements.
type AdminHandler struct {
	auth          *service.AuthService
	admin         *service.AdminService
	jobs          *service.JobService
	apps          *service.ApplicationService
	announcements *service.AnnouncementService
}

func NewAdminHandler(auth *service.AuthService, admin *service.AdminService, jobs *service.JobService, apps *service.ApplicationService, announcements *service.AnnouncementService) *AdminHandler {
	return &AdminHandler{auth: auth, admin: admin, jobs: jobs, apps: apps, announcements: announcements}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.auth.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	middleware.SetSessionCookie(c, res.Token)
	resp.OK(c, gin.H{"token": res.Token, "role": res.Role, "redirect": res.Redirect})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, users)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.admin.DeleteUser(c.Request.Context(), id); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "deleted"})
}

func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	a, err := h.admin.CreateAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": a.ID, "email": a.Email})
}

func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobs.AdminList(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, jobs)
}

type adminJobReq struct {
	CompanyID int64 `json:"company_id" binding:"required"`
	jobReq
}

func (h *AdminHandler) CreateJob(c *gin.Context) {
	var req adminJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	in, err := req.input()
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid deadline")
		return
	}
	job, err := h.jobs.AdminCreate(c.Request.Context(), req.CompanyID, in)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, job)
}

func (h *AdminHandler) DeleteJob(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.jobs.AdminDelete(c.Request.Context(), id); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "deleted"})
}

func (h *AdminHandler) ListApplications(c *gin.Context) {
	apps, err := h.apps.AdminList(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, apps)
}

func (h *AdminHandler) UpdateApplicationStatus(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	appID, err := pathID(c, "id")
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	a, err := h.apps.Transition(c.Request.Context(), sess, appID, domain.ApplicationStatus(req.Status))
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, a)
}

type announcementReq struct {
	Title          string `json:"title" binding:"required"`
	Content        string `json:"content" binding:"required"`
	ExpirationDate string `json:"expiration_date"`
}

func (h *AdminHandler) CreateAnnouncement(c *gin.Context) {
	var req announcementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	in := service.AnnouncementInput{Title: req.Title, Content: req.Content}
	if req.ExpirationDate != "" {
		t, err := time.Parse(time.RFC3339, req.ExpirationDate)
		if err != nil {
			resp.Fail(c, http.StatusBadRequest, "invalid expiration_date")
			return
		}
		in.ExpirationDate = &t
	}
	a, err := h.announcements.Create(c.Request.Context(), in)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, a)
}

func (h *AdminHandler) ListAnnouncements(c *gin.Context) {
	items, err := h.announcements.ListAll(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, items)
}

func (h *AdminHandler) DeleteAnnouncement(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.announcements.Delete(c.Request.Context(), id); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "deleted"})
}

// PreviewCleanup reports which announcements a purge would remove without
// touching anything.
func (h *AdminHandler) PreviewCleanup(c *gin.Context) {
	items, err := h.announcements.PreviewExpired(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"expired_count": len(items), "expired": items})
}

func (h *AdminHandler) Cleanup(c *gin.Context) {
	res, err := h.announcements.Cleanup(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, res)
}
