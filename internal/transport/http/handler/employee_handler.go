package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobconnect/internal/domain"
	"jobconnect/internal/service"
	"jobconnect/internal/transport/http/middleware"
	resp "jobconnect/internal/transport/http/response"
	"jobconnect/internal/upload"
)

// EmployeeHandler serves the authenticated employee surface: profile,
// document uploads and the own-application listing.
type EmployeeHandler struct {
	profiles *service.ProfileService
	apps     *service.ApplicationService
	store    *upload.Store
}

func NewEmployeeHandler(profiles *service.ProfileService, apps *service.ApplicationService, store *upload.Store) *EmployeeHandler {
	return &EmployeeHandler{profiles: profiles, apps: apps, store: store}
}

func (h *EmployeeHandler) GetProfile(c *gin.Context) {
	userID, _ := middleware.SessionFrom(c).UserID()
	p, err := h.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, p)
}

type profileReq struct {
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Education  string `json:"education"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
}

func (h *EmployeeHandler) UpsertProfile(c *gin.Context) {
	userID, _ := middleware.SessionFrom(c).UserID()
	var req profileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.profiles.Upsert(c.Request.Context(), userID, service.ProfileInput{
		Phone:      req.Phone,
		Location:   req.Location,
		Education:  req.Education,
		Skills:     req.Skills,
		Experience: req.Experience,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, p)
}

func (h *EmployeeHandler) ListDocuments(c *gin.Context) {
	userID, _ := middleware.SessionFrom(c).UserID()
	docs, err := h.profiles.ListDocuments(c.Request.Context(), userID)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, docs)
}

// UploadDocument stores the multipart "file" field on disk and records it
// under the optional "file_type" form value.
func (h *EmployeeHandler) UploadDocument(c *gin.Context) {
	userID, _ := middleware.SessionFrom(c).UserID()
	fh, err := c.FormFile("file")
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "missing file")
		return
	}
	name, path, err := h.store.Save(fh)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	fileType := domain.DocumentType(c.PostForm("file_type"))
	d, err := h.profiles.AddDocument(c.Request.Context(), userID, fileType, name, path)
	if err != nil {
		_ = h.store.Remove(path)
		resp.FromError(c, err)
		return
	}
	resp.OK(c, d)
}

func (h *EmployeeHandler) DeleteDocument(c *gin.Context) {
	userID, _ := middleware.SessionFrom(c).UserID()
	id, err := pathID(c, "id")
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.profiles.DeleteDocument(c.Request.Context(), userID, id); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "deleted"})
}

func (h *EmployeeHandler) ListApplications(c *gin.Context) {
	userID, _ := middleware.SessionFrom(c).UserID()
	apps, err := h.apps.ListForUser(c.Request.Context(), userID)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, apps)
}
