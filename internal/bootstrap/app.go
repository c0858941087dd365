package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"study-backend/internal/content"
	"study-backend/internal/export"
	"study-backend/internal/services/health"
	"study-backend/internal/shared/config"
	"study-backend/internal/shared/server"
	"study-backend/internal/shared/storage/db"
	"study-backend/internal/shared/storage/object"
	localstore "study-backend/internal/shared/storage/object/local"
	s3store "study-backend/internal/shared/storage/object/s3"
	"study-backend/internal/studies"
)

const (
	connectAttempts = 3
	connectBackoff  = 2 * time.Second
)

// App holds shared dependencies and the assembled router.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	DB           *sql.DB
	Archive      object.Store
	StudiesRepo  studies.Repo
	StudySvc     *studies.Service
	StudyHandler *studies.Handler
	Health       *health.Service
}

// Build wires storage, services and routes from cfg.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	archive, err := buildArchive(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Archive: archive,
		Health:  health.NewService(sqlDB),
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:       app.Config,
		Health:       app.Health,
		StudyHandler: app.StudyHandler,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.ConnectWithRetry(ctx, cfg.DatabaseURL, opts, connectAttempts, connectBackoff)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildArchive(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ExportStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("EXPORT_STORE=s3 requires S3_BUCKET")
		}
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("init s3 export store: %w", err)
		}
		return store, nil
	case "local":
		return localstore.New(cfg.LocalStoreDir), nil
	default:
		return nil, nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var repo studies.Repo
	if app.DB != nil {
		repo = &studies.PGRepo{DB: app.DB}
	} else {
		repo = studies.NewMemoryRepo()
	}

	svc := studies.NewService(repo, content.NewRandSource(app.Config.GeneratorSeed))
	svc.ExportOptions = export.Options{FontPath: app.Config.PDFFontPath}
	if app.Archive != nil {
		svc.Archive = app.Archive
	}

	app.StudiesRepo = repo
	app.StudySvc = svc
	app.StudyHandler = studies.NewHandler(svc)
}
