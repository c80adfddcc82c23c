package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobconnect/internal/service"
	resp "jobconnect/internal/transport/http/response"
)

// PortalHandler serves the unauthenticated landing surface.
type PortalHandler struct {
	portal *service.PortalService
}

func NewPortalHandler(portal *service.PortalService) *PortalHandler {
	return &PortalHandler{portal: portal}
}

func (h *PortalHandler) Home(c *gin.Context) {
	resp.OK(c, h.portal.Home(c.Request.Context()))
}

type contactReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Contact accepts the form and hands it to the mail dispatcher. Delivery is
// asynchronous; the caller gets an acknowledgement either way.
func (h *PortalHandler) Contact(c *gin.Context) {
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	h.portal.Contact(req.Name, req.Email, req.Message)
	resp.OK(c, gin.H{"message": "thanks, we will get back to you"})
}
