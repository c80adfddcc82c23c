package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jobconnect/internal/core/auth"
	"jobconnect/internal/core/config"
	"jobconnect/internal/core/server"
	"jobconnect/internal/domain"
	"jobconnect/internal/transport/http/handler"
	"jobconnect/internal/transport/http/middleware"
	resp "jobconnect/internal/transport/http/response"
)

// APIDeps is everything the public engine mounts.
type APIDeps struct {
	Cfg      *config.Config
	Log      *zap.Logger
	Tokens   *auth.Tokens
	Auth     *handler.AuthHandler
	Jobs     *handler.JobHandler
	Employee *handler.EmployeeHandler
	Employer *handler.EmployerHandler
	Portal   *handler.PortalHandler
}

// NewAPIEngine wires the public surface: portal, auth, job board and the
// role-gated employee and employer areas.
func NewAPIEngine(d APIDeps) *gin.Engine {
	r := server.NewEngine(d.Log)

	maxBody := int64(d.Cfg.Upload.MaxSizeMB) << 20
	r.Use(
		middleware.RequestID(),
		middleware.RateLimit(200, 400),
		middleware.ConcurrencyLimit(300),
		middleware.MaxBodyBytes(maxBody),
		middleware.Timeout(10*time.Second),
		middleware.Metrics(),
		middleware.AccessLog(d.Log),
	)

	r.GET("/health", func(c *gin.Context) { resp.OK(c, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// stored cover letters and documents, linked by filename from listings
	r.Static("/uploads", d.Cfg.Upload.Dir)

	r.GET("/", d.Portal.Home)
	r.POST("/contact", d.Portal.Contact)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", d.Auth.Register)
		authGroup.POST("/login", d.Auth.Login)
		authGroup.POST("/logout", d.Auth.Logout)
		authGroup.POST("/forgot-password", d.Auth.ForgotPassword)
		authGroup.POST("/reset-password", d.Auth.ResetPassword)
	}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", d.Jobs.List)
		jobs.GET("/:id", d.Jobs.Get)
		jobs.POST("/:id/apply",
			middleware.SessionAuth(d.Tokens, domain.RoleEmployee), d.Jobs.Apply)
	}

	employee := r.Group("/employee", middleware.SessionAuth(d.Tokens, domain.RoleEmployee))
	{
		employee.GET("/profile", d.Employee.GetProfile)
		employee.POST("/profile", d.Employee.UpsertProfile)
		employee.GET("/documents", d.Employee.ListDocuments)
		employee.POST("/documents", d.Employee.UploadDocument)
		employee.DELETE("/documents/:id", d.Employee.DeleteDocument)
		employee.GET("/applications", d.Employee.ListApplications)
	}

	employer := r.Group("/employer", middleware.SessionAuth(d.Tokens, domain.RoleEmployer))
	{
		employer.GET("/company-profile", d.Employer.GetCompany)
		employer.POST("/company-profile", d.Employer.UpsertCompany)
		employer.GET("/jobs", d.Employer.ListJobs)
		employer.POST("/jobs", d.Employer.CreateJob)
		employer.PUT("/jobs/:id", d.Employer.UpdateJob)
		employer.DELETE("/jobs/:id", d.Employer.DeleteJob)
		employer.GET("/jobs/:id/applications", d.Employer.ListApplications)
		employer.POST("/applications/:id/status", d.Employer.UpdateApplicationStatus)
	}

	return r
}
