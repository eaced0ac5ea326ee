package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/psastudios/content-ms-go/internal/bus"
	"github.com/psastudios/content-ms-go/internal/cache"
	"github.com/psastudios/content-ms-go/internal/config"
	"github.com/psastudios/content-ms-go/internal/githubapi"
	"github.com/psastudios/content-ms-go/internal/handler/api"
	"github.com/psastudios/content-ms-go/internal/logger"
	cMiddleware "github.com/psastudios/content-ms-go/internal/middleware"
	"github.com/psastudios/content-ms-go/internal/port"
	"github.com/psastudios/content-ms-go/internal/storage"
	"github.com/psastudios/content-ms-go/internal/store"
	contentSvc "github.com/psastudios/content-ms-go/internal/usecase/content"
	gallerySvc "github.com/psastudios/content-ms-go/internal/usecase/gallery"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	changeBus := initBus(ctx, cfg.DataDir)
	defer func() { _ = changeBus.Close() }()

	contentStore := initStore(ctx, cfg.DataDir, changeBus)

	var ca port.Cache
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		logger.Warn(ctx, "⚠️  Redis not configured — caching is disabled")
	}
	go invalidateOnChange(ctx, changeBus, ca)

	r := initRouter(ctx)

	genID := func() string { return uuid.NewString() }

	r.Get("/galleries/{category}", api.GetGalleryHandler(ca, gallerySvc.NewGalleryGetter(contentStore)))
	r.Post("/admin/login", api.LoginHandler(cfg.AdminPassword, cfg.JWTSecret))

	r.Route("/admin", func(r chi.Router) {
		r.Use(cMiddleware.WithAdminAuth(cfg.JWTSecret))

		r.Get("/content", api.ListContentHandler(contentSvc.NewContentLister(contentStore)))
		r.Delete("/content", api.WipeContentHandler(contentStore))

		r.Post("/media", api.CreateMediaHandler(contentSvc.NewMediaCreator(contentStore, genID)))
		r.With(cMiddleware.WithItemID()).
			Put("/media/{id}", api.UpdateMediaHandler(contentSvc.NewMediaUpdater(contentStore)))
		r.With(cMiddleware.WithItemID()).
			Delete("/media/{id}", api.DeleteMediaHandler(contentSvc.NewMediaDeleter(contentStore)))

		r.Post("/projects", api.CreateProjectHandler(contentSvc.NewProjectCreator(contentStore, genID)))
		r.With(cMiddleware.WithItemID()).
			Put("/projects/{id}", api.UpdateProjectHandler(contentSvc.NewProjectUpdater(contentStore)))
		r.With(cMiddleware.WithItemID()).
			Delete("/projects/{id}", api.DeleteProjectHandler(contentSvc.NewProjectDeleter(contentStore)))

		r.Get("/github-config", api.GetGithubConfigHandler(contentStore))
		r.Put("/github-config", api.SaveGithubConfigHandler(contentStore))
		r.Post("/publish", api.PublishSnapshotHandler(contentSvc.NewSnapshotPublisher(contentStore, githubapi.NewClient())))

		if cfg.MinioEndpoint != "" {
			strg := initStorage(ctx, cfg)
			r.Post("/upload", api.UploadFileHandler(contentSvc.NewFileUploader(strg, genID)))
		} else {
			logger.Warn(ctx, "⚠️  MinIO not configured — file uploads are disabled")
		}
	})

	listenRouter(ctx, r, cfg)
}

func initBus(ctx context.Context, dataDir string) *bus.Bus {
	b := bus.New()
	if err := b.Watch(dataDir, store.ContentKeyFiles()...); err != nil {
		// same-process notifications still work without the watcher
		logger.Warnf(ctx, "⚠️  Cross-process change watching disabled: %v", err)
	}
	return b
}

func initStore(ctx context.Context, dataDir string, changeBus *bus.Bus) port.ContentStore {
	s, err := store.NewFileStore(dataDir, changeBus)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialise content store: %v", err)
		os.Exit(1)
	}
	return s
}

func invalidateOnChange(ctx context.Context, changeBus *bus.Bus, ca port.Cache) {
	ch, unsubscribe := changeBus.Subscribe()
	defer unsubscribe()

	for range ch {
		if err := ca.InvalidateGalleries(ctx); err != nil {
			logger.Warnf(ctx, "⚠️  Gallery cache invalidation failed: %v", err)
		}
	}
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.MinioBucket,
		cfg.MinioPublicURL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}
	if err := strg.InitBucket(); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket: %v", err)
		os.Exit(1)
	}
	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")
}
