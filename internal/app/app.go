package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/academics"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/attach"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/attendance"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/auth"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/billing"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/blob"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/circular"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/classwork"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/config"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/db"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/diary"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/event"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/gallery"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/health"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/holiday"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/logger"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/messaging"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/middleware"
)

type App struct {
	config   *config.Config
	router   chi.Router
	server   *http.Server
	logger   *slog.Logger
	db       *bun.DB
	producer *messaging.Producer
}

func New() *App {
	slogLogger := logger.NewWithService("school-admin", Version)

	// Set as default logger so slog.Info() uses the shared handler
	slog.SetDefault(slogLogger)

	slogLogger.Info("initializing application")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	slogLogger.Info("config loaded", "env", cfg.Env)

	app := &App{
		config: cfg,
		router: chi.NewRouter(),
		logger: slogLogger,
	}

	database := db.New(cfg.Database)
	app.db = database

	ctx := context.Background()
	if err := db.RunMigrations(ctx, database,
		(*auth.SuperAdmin)(nil),
		(*circular.Circular)(nil),
		(*attendance.Attendance)(nil),
		(*gallery.Album)(nil),
		(*gallery.Photo)(nil),
		(*classwork.Classwork)(nil),
		(*event.Event)(nil),
		(*holiday.Holiday)(nil),
		(*diary.Diary)(nil),
		(*academics.Class)(nil),
		(*academics.Session)(nil),
		(*academics.ExamType)(nil),
		(*billing.Package)(nil),
		(*billing.Payment)(nil),
	); err != nil {
		log.Fatal("failed to run migrations:", err)
	}

	var indexes []db.UniqueIndex
	indexes = append(indexes, circular.Indexes...)
	indexes = append(indexes, attendance.Indexes...)
	indexes = append(indexes, gallery.Indexes...)
	indexes = append(indexes, classwork.Indexes...)
	indexes = append(indexes, event.Indexes...)
	indexes = append(indexes, holiday.Indexes...)
	indexes = append(indexes, diary.Indexes...)
	indexes = append(indexes, academics.Indexes...)
	indexes = append(indexes, billing.Indexes...)
	if err := db.CreateUniqueIndexes(ctx, database, indexes...); err != nil {
		log.Fatal("failed to create unique indexes:", err)
	}

	app.router.Use(middleware.CORS(cfg.Server.CORSOrigins))

	// Health endpoints (no auth required)
	healthHandler := health.NewHandler(database)
	healthHandler.RegisterRoutes(app.router)

	// Object storage for attachments
	blobStore, err := blob.NewS3(ctx, cfg.S3)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}
	attachments := attach.NewManager(blobStore, slogLogger)

	// NATS producer setup; the app runs without it
	natsProducer, err := messaging.NewProducer(cfg.NATS.URL, cfg.NATS.Subject, slogLogger)
	if err != nil {
		slogLogger.Warn("failed to initialize NATS producer", "error", err)
		natsProducer = nil
	} else {
		slogLogger.Info("NATS producer initialized successfully")
	}
	app.producer = natsProducer

	// Auth setup (no auth required on register/login themselves)
	authRepo := auth.NewRepository(database)
	authService := auth.NewService(authRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	authHandler := auth.NewHandler(authService, slogLogger)
	authHandler.RegisterRoutes(app.router)

	circularHandler := circular.NewHandler(
		circular.NewService(circular.NewRepo(database), natsProducer, slogLogger), slogLogger)
	attendanceHandler := attendance.NewHandler(
		attendance.NewService(attendance.NewRepo(database), slogLogger), slogLogger)
	galleryHandler := gallery.NewHandler(
		gallery.NewService(gallery.NewAlbumRepo(database), gallery.NewPhotoRepo(database), attachments, slogLogger), slogLogger)
	classworkHandler := classwork.NewHandler(
		classwork.NewService(classwork.NewRepo(database), attachments, slogLogger), slogLogger)
	eventHandler := event.NewHandler(
		event.NewService(event.NewRepo(database), natsProducer, slogLogger), slogLogger)
	holidayHandler := holiday.NewHandler(
		holiday.NewService(holiday.NewRepo(database), slogLogger), slogLogger)
	diaryHandler := diary.NewHandler(
		diary.NewService(diary.NewRepo(database), slogLogger), slogLogger)
	academicsHandler := academics.NewHandler(
		academics.NewService(academics.NewClassRepo(database), academics.NewSessionRepo(database), academics.NewExamTypeRepo(database), slogLogger), slogLogger)
	billingHandler := billing.NewHandler(
		billing.NewService(billing.NewPackageRepo(database), billing.NewPaymentRepo(database), natsProducer), slogLogger)

	app.router.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(authService, slogLogger))

		circularHandler.RegisterRoutes(r)
		attendanceHandler.RegisterRoutes(r)
		galleryHandler.RegisterRoutes(r)
		classworkHandler.RegisterRoutes(r)
		eventHandler.RegisterRoutes(r)
		holidayHandler.RegisterRoutes(r)
		diaryHandler.RegisterRoutes(r)
		academicsHandler.RegisterRoutes(r)
		billingHandler.RegisterRoutes(r)

		// Cross-school listings are superadmin-only
		r.Group(func(admin chi.Router) {
			admin.Use(auth.RequireRole(auth.RoleSuperAdmin))

			circularHandler.RegisterAdminRoutes(admin)
			attendanceHandler.RegisterAdminRoutes(admin)
			galleryHandler.RegisterAdminRoutes(admin)
			classworkHandler.RegisterAdminRoutes(admin)
			eventHandler.RegisterAdminRoutes(admin)
			holidayHandler.RegisterAdminRoutes(admin)
			diaryHandler.RegisterAdminRoutes(admin)
			academicsHandler.RegisterAdminRoutes(admin)
			billingHandler.RegisterAdminRoutes(admin)
		})
	})

	slogLogger.Info("application initialized successfully")

	return app
}

func (a *App) Run() error {
	a.server = &http.Server{
		Addr:         fmt.Sprintf(":%s", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  time.Duration(a.config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(a.config.Server.IdleTimeout) * time.Second,
	}

	a.logger.Info("server starting", "port", a.config.Server.Port)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down server")

	if a.producer != nil {
		a.producer.Close()
	}
	if a.db != nil {
		db.Close(a.db)
	}
	return a.server.Shutdown(ctx)
}
