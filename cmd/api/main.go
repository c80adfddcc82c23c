package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"jobconnect/internal/core/auth"
	"jobconnect/internal/core/cache"
	"jobconnect/internal/core/config"
	"jobconnect/internal/core/database"
	"jobconnect/internal/core/logger"
	"jobconnect/internal/core/server"
	"jobconnect/internal/domain"
	"jobconnect/internal/notify"
	"jobconnect/internal/repo"
	"jobconnect/internal/service"
	"jobconnect/internal/transport/http/handler"
	"jobconnect/internal/transport/http/router"
	"jobconnect/internal/upload"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	defer func() { _ = database.Close(db) }()
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := migrate(db); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	tokens := &auth.Tokens{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer}

	c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if c != nil {
		defer func() { _ = c.Close() }()
	}

	mailer := notify.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.From, log)
	dispatcher := notify.NewDispatcher(mailer, log, 128)
	defer dispatcher.Close()

	store, err := upload.NewStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatal("upload dir", zap.Error(err))
	}

	users := repo.NewUserRepo(db)
	admins := repo.NewAdminRepo(db)
	companies := repo.NewCompanyRepo(db)
	jobs := repo.NewJobRepo(db)
	apps := repo.NewApplicationRepo(db)
	announcements := repo.NewAnnouncementRepo(db)
	profiles := repo.NewEmployeeProfileRepo(db)
	documents := repo.NewEmployeeDocumentRepo(db)

	authSvc := service.NewAuthService(users, admins, tokens, dispatcher, cfg.App.BaseURL, log)
	jobSvc := service.NewJobService(jobs, companies, c)
	appSvc := service.NewApplicationService(apps, jobs, dispatcher, log)
	companySvc := service.NewCompanyService(companies)
	profileSvc := service.NewProfileService(profiles, documents, store)
	contactTo := cfg.SMTP.ContactTo
	if contactTo == "" {
		contactTo = cfg.SMTP.From
	}
	portalSvc := service.NewPortalService(jobs, users, announcements, dispatcher, contactTo, c, log)

	r := router.NewAPIEngine(router.APIDeps{
		Cfg:      cfg,
		Log:      log,
		Tokens:   tokens,
		Auth:     handler.NewAuthHandler(authSvc),
		Jobs:     handler.NewJobHandler(jobSvc, appSvc, store),
		Employee: handler.NewEmployeeHandler(profileSvc, appSvc, store),
		Employer: handler.NewEmployerHandler(companySvc, jobSvc, appSvc),
		Portal:   handler.NewPortalHandler(portalSvc),
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started", zap.String("addr", addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Admin{},
		&domain.Company{},
		&domain.Job{},
		&domain.Application{},
		&domain.Announcement{},
		&domain.EmployeeProfile{},
		&domain.EmployeeDocument{},
	)
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
