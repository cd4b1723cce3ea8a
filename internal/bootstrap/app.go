package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"rfp-backend/internal/catalog"
	"rfp-backend/internal/proposals"
	"rfp-backend/internal/rfpdocs"
	"rfp-backend/internal/shared/config"
	"rfp-backend/internal/shared/server"
	"rfp-backend/internal/shared/storage/db"
	"rfp-backend/internal/shared/storage/object"
	localstore "rfp-backend/internal/shared/storage/object/local"
)

// App holds shared dependencies, built once at startup.
type App struct {
	Config  config.Config
	Router  *gin.Engine
	DB      *sql.DB
	Store   object.ObjectStore
	Catalog *catalog.Catalog

	DocumentsRepo rfpdocs.Repo
	ProposalsRepo proposals.Repo

	DocumentsService *rfpdocs.Service
	ProposalsService *proposals.Service

	CatalogHandler   *catalog.Handler
	DocumentsHandler *rfpdocs.Handler
	ProposalsHandler *proposals.Handler
}

// Build prepares shared dependencies and wires the router. A catalog that
// fails to load is fatal: the pipeline cannot run against an empty catalog.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Store:   localstore.New(cfg.LocalStoreDir),
		Catalog: cat,
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		CatalogHandler:  app.CatalogHandler,
		DocumentHandler: app.DocumentsHandler,
		ProposalHandler: app.ProposalsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.DocumentsRepo = &rfpdocs.PGRepo{DB: app.DB}
		app.ProposalsRepo = &proposals.PGRepo{DB: app.DB}
	} else {
		app.DocumentsRepo = rfpdocs.NewMemoryRepo()
		app.ProposalsRepo = proposals.NewMemoryRepo()
	}

	app.DocumentsService = &rfpdocs.Service{
		Store: app.Store,
		Repo:  app.DocumentsRepo,
	}
	app.ProposalsService = &proposals.Service{
		Repo:    app.ProposalsRepo,
		Docs:    app.DocumentsService,
		Catalog: app.Catalog,
	}

	app.CatalogHandler = catalog.NewHandler(app.Catalog)
	app.DocumentsHandler = rfpdocs.NewHandler(app.DocumentsService)
	app.ProposalsHandler = proposals.NewHandler(app.ProposalsService)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
