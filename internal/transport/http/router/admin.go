package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobconnect/internal/core/auth"
	"jobconnect/internal/core/config"
	"jobconnect/internal/core/server"
	"jobconnect/internal/domain"
	"jobconnect/internal/transport/http/handler"
	"jobconnect/internal/transport/http/middleware"
	resp "jobconnect/internal/transport/http/response"
)

// AdminDeps is everything the back-office engine mounts.
type AdminDeps struct {
	Cfg    *config.Config
	Log    *zap.Logger
	Tokens *auth.Tokens
	Admin  *handler.AdminHandler
}

// NewAdminEngine wires the back-office surface. Only /admin/login is open;
// everything under /admin/v1 requires an ADMIN session.
func NewAdminEngine(d AdminDeps) *gin.Engine {
	r := server.NewEngine(d.Log)

	r.Use(
		middleware.RequestID(),
		middleware.RateLimitPerIP(20, 40),
		middleware.Timeout(15*time.Second),
		middleware.Metrics(),
		middleware.AccessLog(d.Log),
	)

	r.GET("/health", func(c *gin.Context) { resp.OK(c, gin.H{"status": "ok"}) })

	r.POST("/admin/login", d.Admin.Login)

	v1 := r.Group("/admin/v1", middleware.SessionAuth(d.Tokens, domain.RoleAdmin))
	{
		v1.GET("/users", d.Admin.ListUsers)
		v1.DELETE("/users/:id", d.Admin.DeleteUser)
		v1.POST("/admins", d.Admin.CreateAdmin)

		v1.GET("/jobs", d.Admin.ListJobs)
		v1.POST("/jobs", d.Admin.CreateJob)
		v1.DELETE("/jobs/:id", d.Admin.DeleteJob)

		v1.GET("/applications", d.Admin.ListApplications)
		v1.PATCH("/applications/:id/status", d.Admin.UpdateApplicationStatus)

		v1.GET("/announcements", d.Admin.ListAnnouncements)
		v1.POST("/announcements", d.Admin.CreateAnnouncement)
		v1.DELETE("/announcements/:id", d.Admin.DeleteAnnouncement)
		v1.GET("/announcements/cleanup", d.Admin.PreviewCleanup)
		v1.POST("/announcements/cleanup", d.Admin.Cleanup)
	}

	return r
}
