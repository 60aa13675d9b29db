package main

import (
	"context"
	"log"

	"github.com/omer2190/portfolio-backend/config"
	"github.com/omer2190/portfolio-backend/internal/auth"
	"github.com/omer2190/portfolio-backend/internal/auth/service"
	"github.com/omer2190/portfolio-backend/internal/backup"
	"github.com/omer2190/portfolio-backend/internal/bootstrap"
	"github.com/omer2190/portfolio-backend/internal/content/localstore"
	"github.com/omer2190/portfolio-backend/internal/content/postgres"
	"github.com/omer2190/portfolio-backend/internal/uploads"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	deps := bootstrap.RouterDeps{
		ServiceName:    "portfolio-backend",
		Version:        cfg.App.Version,
		ContentBackend: cfg.Content.Backend,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}

	switch cfg.Content.Backend {
	case "postgres":
		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Content.DB.DSN()})
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		deps.DB = pool
		deps.Repo = postgres.NewRepo(pool)

		if cfg.Storage.Bucket != "" {
			up, err := uploads.NewS3Uploader(ctx, cfg.Storage)
			if err != nil {
				log.Fatalf("s3 uploader: %v", err)
			}
			deps.Uploader = up
		}

	default:
		store, err := localstore.Open(cfg.Content.DataFile)
		if err != nil {
			log.Fatalf("local store: %v", err)
		}
		deps.Repo = store
		deps.Uploader = uploads.NewFSUploader(cfg.Storage.LocalDir, "")

		if cfg.Backup.Dir != "" {
			backup.NewScheduler(store, cfg.Backup.Dir).Start()
		}
	}

	switch cfg.Auth.Backend {
	case "firebase":
		client, err := auth.InitializeFirebase(ctx, cfg.Auth.FirebaseCreds)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
		deps.Firebase = client

	default:
		rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rdb.Close()

		creds, err := auth.OpenCredentialFile(cfg.Auth.CredentialsFile)
		if err != nil {
			log.Fatalf("credentials: %v", err)
		}
		deps.AuthService = service.NewAuthService(creds, auth.NewRedisSessionStore(rdb))
	}

	r := bootstrap.BuildRouter(deps)

	log.Printf("portfolio backend listening on :%s (content=%s auth=%s)",
		cfg.Server.Port, cfg.Content.Backend, cfg.Auth.Backend)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
