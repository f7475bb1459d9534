package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sakethvvv/verify-your-cart-v1.3/internal/application"
	appanalysis "github.com/sakethvvv/verify-your-cart-v1.3/internal/application/analysis"
	"github.com/sakethvvv/verify-your-cart-v1.3/internal/config"
	domai "github.com/sakethvvv/verify-your-cart-v1.3/internal/domain/ai"
	domain "github.com/sakethvvv/verify-your-cart-v1.3/internal/domain/analysis"
	"github.com/sakethvvv/verify-your-cart-v1.3/internal/infra/ai/offline"
	openaiclient "github.com/sakethvvv/verify-your-cart-v1.3/internal/infra/ai/openai"
	mysqlp "github.com/sakethvvv/verify-your-cart-v1.3/internal/infra/db/mysql"
	postgresp "github.com/sakethvvv/verify-your-cart-v1.3/internal/infra/db/postgres"
	"github.com/sakethvvv/verify-your-cart-v1.3/internal/infra/httpserver"
	minioStore "github.com/sakethvvv/verify-your-cart-v1.3/internal/infra/storage"
	"github.com/sakethvvv/verify-your-cart-v1.3/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// connect DB (driver selectable)
	var db *sql.DB
	var repo domain.Repository
	switch cfg.Database.Driver {
	case "postgres":
		db, err = postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		repo = postgresp.NewAnalysisRepository(db)
	default:
		db, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		repo = mysqlp.NewAnalysisRepository(db)
	}
	defer db.Close()

	// init minio (optional artifact archive)
	var artifacts domain.ArtifactStore
	if cfg.Minio.Endpoint != "" {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		artifacts = store
	}

	// live tiers: primary then fallback model, only when a real key is present
	var providers []domai.Provider
	if cfg.HasLiveAI() {
		for _, model := range []string{cfg.AI.PrimaryModel, cfg.AI.FallbackModel} {
			if model == "" {
				continue
			}
			cli, err := openaiclient.NewClient(cfg.AI.APIKey, model)
			if err != nil {
				log.Printf("ai client init skipped: model=%s err=%v", model, err)
				continue
			}
			providers = append(providers, cli)
		}
	} else {
		log.Printf("no AI credential configured, all verdicts resolve offline")
	}

	// init service
	svc := &appanalysis.Service{
		Providers:   providers,
		Estimator:   offline.NewEstimator(offline.DefaultDelay, application.SystemClock{}),
		Repo:        repo,
		Artifacts:   artifacts,
		Clock:       application.SystemClock{},
		TierTimeout: time.Duration(cfg.AITimeoutSeconds()) * time.Second,
	}

	// init router
	checkers := map[string]middleware.HealthChecker{
		"database": &middleware.DatabaseHealthChecker{DB: db},
	}
	mux := chi.NewRouter()
	mux.Mount("/", httpserver.NewRouter(svc, checkers, cfg.Server.AllowedOrigins))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
