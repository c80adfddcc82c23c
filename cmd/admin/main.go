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
	"jobconnect/internal/notify"
	"jobconnect/internal/repo"
	"jobconnect/internal/service"
	"jobconnect/internal/transport/http/handler"
	"jobconnect/internal/transport/http/router"
)

// The back-office binary shares the API's database and signing secret but
// listens on its own port. Schema migration is the api binary's job.
func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	defer func() { _ = database.Close(db) }()
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	tokens := &auth.Tokens{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer}

	c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if c != nil {
		defer func() { _ = c.Close() }()
	}

	mailer := notify.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.From, log)
	dispatcher := notify.NewDispatcher(mailer, log, 128)
	defer dispatcher.Close()

	users := repo.NewUserRepo(db)
	admins := repo.NewAdminRepo(db)
	companies := repo.NewCompanyRepo(db)
	jobs := repo.NewJobRepo(db)
	apps := repo.NewApplicationRepo(db)
	announcements := repo.NewAnnouncementRepo(db)

	authSvc := service.NewAuthService(users, admins, tokens, dispatcher, cfg.App.BaseURL, log)
	adminSvc := service.NewAdminService(users, admins)
	jobSvc := service.NewJobService(jobs, companies, c)
	appSvc := service.NewApplicationService(apps, jobs, dispatcher, log)
	announcementSvc := service.NewAnnouncementService(announcements)

	r := router.NewAdminEngine(router.AdminDeps{
		Cfg:    cfg,
		Log:    log,
		Tokens: tokens,
		Admin:  handler.NewAdminHandler(authSvc, adminSvc, jobSvc, appSvc, announcementSvc),
	})

	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, r, 15*time.Second, 15*time.Second, 60*time.Second)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("admin start FAILED", zap.Error(err))
		}
	}()
	log.Info("admin started", zap.String("addr", addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("admin stopped gracefully")
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
