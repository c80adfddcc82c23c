package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobconnect/internal/domain"
	"jobconnect/internal/service"
	"jobconnect/internal/transport/http/middleware"
	resp "jobconnect/internal/transport/http/response"
)

// AuthHandler binds the registration, login and password-reset endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerReq struct {
	FullName        string `json:"full_name" binding:"required"`
	NationalID      string `json:"national_id" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Role            string `json:"role" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		FullName:        req.FullName,
		NationalID:      req.NationalID,
		Email:           req.Email,
		Role:            domain.Role(req.Role),
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": u.ID, "email": u.Email, "role": u.Role})
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	middleware.SetSessionCookie(c, res.Token)
	resp.OK(c, gin.H{"token": res.Token, "role": res.Role, "redirect": res.Redirect})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	resp.OK(c, gin.H{"message": "logged out"})
}

type forgotReq struct {
	Email string `json:"email" binding:"required"`
}

// ForgotPassword always answers the same way so the endpoint cannot be used
// to probe which emails are registered.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "if the email exists, a reset link has been sent"})
}

type resetReq struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.auth.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "password updated"})
}
