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

// EmployerHandler serves the authenticated employer surface: the company
// profile, owned job CRUD and applicant review.
type EmployerHandler struct {
	companies *service.CompanyService
	jobs      *service.JobService
	apps      *service.ApplicationService
}

func NewEmployerHandler(companies *service.CompanyService, jobs *service.JobService, apps *service.ApplicationService) *EmployerHandler {
	return &EmployerHandler{companies: companies, jobs: jobs, apps: apps}
}

func (h *EmployerHandler) GetCompany(c *gin.Context) {
	ownerID, _ := middleware.SessionFrom(c).UserID()
	company, err := h.companies.Get(c.Request.Context(), ownerID)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, company)
}

type companyReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

func (h *EmployerHandler) UpsertCompany(c *gin.Context) {
	ownerID, _ := middleware.SessionFrom(c).UserID()
	var req companyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	company, err := h.companies.Upsert(c.Request.Context(), ownerID, service.CompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, company)
}

type jobReq struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Requirements string `json:"requirements"`
	Location     string `json:"location"`
	Salary       string `json:"salary"`
	Type         string `json:"type"`
	Deadline     string `json:"deadline"`
}

func (r jobReq) input() (service.JobInput, error) {
	in := service.JobInput{
		Title:        r.Title,
		Description:  r.Description,
		Requirements: r.Requirements,
		Location:     r.Location,
		Salary:       r.Salary,
		Type:         domain.JobType(r.Type),
	}
	if r.Deadline != "" {
		t, err := time.Parse(time.RFC3339, r.Deadline)
		if err != nil {
			return in, err
		}
		in.Deadline = &t
	}
	return in, nil
}

func (h *EmployerHandler) ListJobs(c *gin.Context) {
	ownerID, _ := middleware.SessionFrom(c).UserID()
	jobs, err := h.jobs.ListOwn(c.Request.Context(), ownerID)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, jobs)
}

func (h *EmployerHandler) CreateJob(c *gin.Context) {
	ownerID, _ := middleware.SessionFrom(c).UserID()
	var req jobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	in, err := req.input()
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid deadline")
		return
	}
	job, err := h.jobs.Create(c.Request.Context(), ownerID, in)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, job)
}

func (h *EmployerHandler) UpdateJob(c *gin.Context) {
	ownerID, _ := middleware.SessionFrom(c).UserID()
	jobID, err := pathID(c, "id")
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	var req jobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	in, err := req.input()
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid deadline")
		return
	}
	job, err := h.jobs.Update(c.Request.Context(), ownerID, jobID, in)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, job)
}

func (h *EmployerHandler) DeleteJob(c *gin.Context) {
	ownerID, _ := middleware.SessionFrom(c).UserID()
	jobID, err := pathID(c, "id")
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.jobs.Delete(c.Request.Context(), ownerID, jobID); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "deleted"})
}

// ListApplications lists applicants for one of the employer's own jobs.
// Jobs owned by someone else resolve the same way as missing ones.
func (h *EmployerHandler) ListApplications(c *gin.Context) {
	ownerID, _ := middleware.SessionFrom(c).UserID()
	jobID, err := pathID(c, "id")
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	apps, err := h.apps.ListForJob(c.Request.Context(), ownerID, jobID)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, apps)
}

type statusReq struct {
	Status string `json:"status" binding:"required"`
}

func (h *EmployerHandler) UpdateApplicationStatus(c *gin.Context) {
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
