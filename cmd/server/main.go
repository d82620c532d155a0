package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"teampoints/internal/http/handlers"
	activityh "teampoints/internal/http/handlers/activity"
	authh "teampoints/internal/http/handlers/auth"
	catalogh "teampoints/internal/http/handlers/catalog"
	dashboardh "teampoints/internal/http/handlers/dashboard"
	teamh "teampoints/internal/http/handlers/team"
	userh "teampoints/internal/http/handlers/user"
	mw "teampoints/internal/http/middleware"
	"teampoints/internal/lib/config"
	"teampoints/internal/lib/sl"
	repo "teampoints/internal/repository"
	"teampoints/internal/service/activity"
	"teampoints/internal/service/auth"
	"teampoints/internal/service/catalog"
	"teampoints/internal/service/dashboard"
	"teampoints/internal/service/team"
	"teampoints/internal/service/user"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting Team Points Service", slog.String("env", cfg.Env))

	dsn := os.Getenv("DATABASE_URL")
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		slog.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}

	if err := runMigrations(cfg.Migrations, dsn); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	secret := cfg.Auth.Secret
	if secret == "" {
		log.Error("auth secret is not configured")
		os.Exit(1)
	}

	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	teamRepo := repo.NewTeamRepo(db, trmsqlx.DefaultCtxGetter)
	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	typeRepo := repo.NewActivityTypeRepo(db, trmsqlx.DefaultCtxGetter)
	activityRepo := repo.NewActivityRepo(db, trmsqlx.DefaultCtxGetter)
	statsRepo := repo.NewStatsRepo(db, trmsqlx.DefaultCtxGetter)

	authService := auth.NewAuthService(userRepo, secret, cfg.Auth.TokenTTL)
	userService := user.NewUserService(trManager, userRepo, teamRepo)
	teamService := team.NewTeamService(trManager, teamRepo, userRepo)
	catalogService := catalog.NewCatalogService(typeRepo)
	activityService := activity.NewActivityService(trManager, activityRepo, userRepo, typeRepo)
	dashboardService := dashboard.NewDashboardService(statsRepo)

	authHandler := authh.NewAuthHandler(log, authService)
	userHandler := userh.NewUserHandler(log, userService)
	teamHandler := teamh.NewTeamHandler(log, teamService)
	catalogHandler := catalogh.NewCatalogHandler(log, catalogService)
	activityHandler := activityh.NewActivityHandler(log, activityService)
	dashboardHandler := dashboardh.NewDashboardHandler(log, dashboardService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))

	// public methods
	router.Get("/health", handlers.Healthcheck())
	router.Post("/auth/login", authHandler.Login)

	// authenticated methods; admin checks live in the service layer
	router.Group(func(r chi.Router) {
		r.Use(mw.Auth(secret))

		r.Get("/dashboard/leaderboard", dashboardHandler.Leaderboard)
		r.Get("/dashboard/kpis", dashboardHandler.Kpis)
		r.Get("/dashboard/recent", dashboardHandler.RecentActivities)

		r.Get("/users", userHandler.List)
		r.Post("/users/create", userHandler.Create)
		r.Post("/users/update", userHandler.Update)
		r.Post("/users/delete", userHandler.Delete)
		r.Post("/users/setIsActive", userHandler.SetIsActive)

		r.Get("/teams", teamHandler.List)
		r.Get("/teams/get", teamHandler.Get)
		r.Post("/teams/create", teamHandler.Create)
		r.Post("/teams/update", teamHandler.Update)
		r.Post("/teams/delete", teamHandler.Delete)

		r.Get("/activity-types", catalogHandler.List)
		r.Post("/activity-types/create", catalogHandler.Create)
		r.Post("/activity-types/update", catalogHandler.Update)
		r.Post("/activity-types/delete", catalogHandler.Delete)

		r.Get("/activities", activityHandler.List)
		r.Post("/activities/create", activityHandler.Create)
		r.Post("/activities/update", activityHandler.Update)
		r.Post("/activities/delete", activityHandler.Delete)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("failed to start http server", sl.Err(err))
		os.Exit(1)
	}

	log.Error("http server stopped")
}

func runMigrations(path, dsn string) error {
	m, err := migrate.New("file://"+path, dsn)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
	return log
}
