package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobconnect/internal/domain"
	"jobconnect/internal/service"
	"jobconnect/internal/transport/http/middleware"
	resp "jobconnect/internal/transport/http/response"
	"jobconnect/internal/upload"
)

// JobHandler serves the public job board: browsing active postings and
// submitting an application.
type JobHandler struct {
	jobs  *service.JobService
	apps  *service.ApplicationService
	store *upload.Store
}

func NewJobHandler(jobs *service.JobService, apps *service.ApplicationService, store *upload.Store) *JobHandler {
	return &JobHandler{jobs: jobs, apps: apps, store: store}
}

// List returns active postings, optionally narrowed by q, location and type.
func (h *JobHandler) List(c *gin.Context) {
	f := domain.JobFilter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Type:     domain.JobType(c.Query("type")),
	}
	jobs, err := h.jobs.ListActive(c.Request.Context(), f)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	job, err := h.jobs.Get(c.Request.Context(), id)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, job)
}

// Apply takes a multipart form with a required cover_letter file
// (pdf/doc/docx), stores it and records the application.
func (h *JobHandler) Apply(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	userID, ok := sess.UserID()
	if !ok {
		resp.Fail(c, http.StatusUnauthorized, "")
		return
	}
	jobID, err := pathID(c, "id")
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	fh, err := c.FormFile("cover_letter")
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "cover letter required")
		return
	}
	name, path, err := h.store.Save(fh)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	a, err := h.apps.Apply(c.Request.Context(), userID, jobID, name)
	if err != nil {
		_ = h.store.Remove(path)
		resp.FromError(c, err)
		return
	}
	resp.OK(c, a)
}

func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
