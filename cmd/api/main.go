package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/jpmercado/infratrack/internal/auth"
	"github.com/jpmercado/infratrack/internal/bid"
	bidStore "github.com/jpmercado/infratrack/internal/bid/store"
	"github.com/jpmercado/infratrack/internal/catalog"
	catalogStore "github.com/jpmercado/infratrack/internal/catalog/store"
	"github.com/jpmercado/infratrack/internal/config"
	"github.com/jpmercado/infratrack/internal/database"
	apiHttp "github.com/jpmercado/infratrack/internal/http"
	bidHandler "github.com/jpmercado/infratrack/internal/http/bid"
	catalogHandler "github.com/jpmercado/infratrack/internal/http/catalog"
	importHandler "github.com/jpmercado/infratrack/internal/http/importcsv"
	milestoneHandler "github.com/jpmercado/infratrack/internal/http/milestone"
	portalHandler "github.com/jpmercado/infratrack/internal/http/portal"
	projectHandler "github.com/jpmercado/infratrack/internal/http/project"
	"github.com/jpmercado/infratrack/internal/importer"
	"github.com/jpmercado/infratrack/internal/milestone"
	milestoneStore "github.com/jpmercado/infratrack/internal/milestone/store"
	"github.com/jpmercado/infratrack/internal/portal"
	portalStore "github.com/jpmercado/infratrack/internal/portal/store"
	"github.com/jpmercado/infratrack/internal/project"
	projectStore "github.com/jpmercado/infratrack/internal/project/store"
	"github.com/jpmercado/infratrack/internal/report"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	var (
		projectService   = project.NewService(projectStore.New(db))
		bidService       = bid.NewService(bidStore.New(db), projectService)
		milestoneService = milestone.NewService(milestoneStore.New(db), projectService)
		catalogService   = catalog.NewService(catalogStore.New(db))
		importService    = importer.NewService()
		portalService    = portal.NewService(portalStore.New(db), projectService)
		reportService    = report.NewService(projectService)
	)

	var (
		projectH   = projectHandler.NewHandler(projectService)
		bidH       = bidHandler.NewHandler(bidService)
		milestoneH = milestoneHandler.NewHandler(milestoneService)
		catalogH   = catalogHandler.NewHandler(catalogService)
		importH    = importHandler.NewHandler(importService, projectService, catalogService)
		portalH    = portalHandler.NewHandler(portalService, reportService)
	)

	router := apiHttp.New(verifier, projectH, bidH, milestoneH, catalogH, importH, portalH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
