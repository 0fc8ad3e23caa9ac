// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"recipe-api/config"
	"recipe-api/db"
	"recipe-api/handler"
	"recipe-api/logger"
	"recipe-api/repository"
	"recipe-api/router"
	"recipe-api/service"
	"syscall"
	"time"
)

// App is the wired HTTP application without the listener, so tests can
// drive Router directly.
type App struct {
	Config  *config.Config
	Router  http.Handler
	Tokens  *service.TokenService
	Recipes *service.RecipeService
}

// New wires all layers together. cache may be nil.
func New(cfg *config.Config, repo repository.IRecipeRepository, cache service.ICacheClient) (*App, error) {
	tokenService, err := service.NewTokenService(cfg.JWT.SecretKey, cfg.JWT.Algorithm, cfg.JWT.TTL)
	if err != nil {
		return nil, err
	}

	authService := service.NewAuthService(cfg.Users, tokenService)
	recipeService := service.NewRecipeService(repo, cache, cfg.Redis.TTL)

	authHandler := handler.NewAuthHandler(authService)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	r := router.NewRouter(authHandler, recipeHandler, tokenService, router.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	return &App{
		Config:  cfg,
		Router:  r,
		Tokens:  tokenService,
		Recipes: recipeService,
	}, nil
}

func Run() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	logger.Init(logger.WithLevel(cfg.Log.Level), logger.WithFormat(cfg.Log.Format))
	logger.Log.Info("Configuration loaded successfully")

	ctx := context.Background()

	repo, database, err := openStore(ctx, cfg)
	if err != nil {
		logger.Log.Fatalf("Error opening recipe store: %v", err)
	}
	if database != nil {
		defer database.Close()
	}

	var cache service.ICacheClient
	if cfg.Redis.Enabled {
		rdb, err := db.ConnectRedis(ctx, cfg)
		if err != nil {
			logger.Log.Fatalf("Error connecting to redis: %v", err)
		}
		defer rdb.Close()
		cache = rdb
	}

	application, err := New(cfg, repo, cache)
	if err != nil {
		logger.Log.Fatalf("Error wiring application: %v", err)
	}

	if cfg.Seed.Enabled {
		if _, err := service.SeedSampleRecipes(ctx, application.Recipes, cfg.Users[0].Username); err != nil {
			logger.Log.WithError(err).Error("Seeding sample recipes failed")
		}
	}

	// --- Start the Server with Graceful Shutdown ---
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      application.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		var err error
		if cfg.Server.TLSCertFile != "" {
			logger.Log.Infof("Server starting on https port :%s", cfg.Server.Port)
			err = srv.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			logger.Log.Infof("Server starting on port :%s", cfg.Server.Port)
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("Server forced to shutdown: %v", err)
		return
	}

	logger.Log.Info("Server exited properly")
}

// openStore returns the configured recipe store. The *sql.DB is non-nil only
// for the postgres driver and must be closed by the caller.
func openStore(ctx context.Context, cfg *config.Config) (repository.IRecipeRepository, *sql.DB, error) {
	if cfg.Storage.Driver != config.StoragePostgres {
		logger.Log.Info("Using in-memory recipe store")
		return repository.NewMemoryRecipeRepository(), nil, nil
	}

	database, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := db.RunMigrations(database); err != nil {
		database.Close()
		return nil, nil, err
	}
	return repository.NewPostgresRecipeRepository(database), database, nil
}
