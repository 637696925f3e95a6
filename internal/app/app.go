// Package app wires configuration, storage backends, services and transport
// into a runnable server.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"chatfuture/internal/cache"
	"chatfuture/internal/catalog"
	"chatfuture/internal/config"
	"chatfuture/internal/logging"
	"chatfuture/internal/repository"
	"chatfuture/internal/service"
	"chatfuture/internal/storage"
	"chatfuture/internal/transport/rest"
	"chatfuture/internal/transport/ws"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

// App holds the assembled services and the resources that need closing
type App struct {
	Catalog  *catalog.Catalog
	Store    storage.Store
	Auth     *service.AuthService
	Sessions *service.SessionService
	Answers  *service.AnswerService
	Scoring  *service.ScoringService
	Profiles *service.ProfileService
	Reports  *service.ReportService
	Hub      *ws.Hub

	handler http.Handler
	logger  *logging.Logger
	closers []func(context.Context) error
}

// New connects the configured storage backend and builds every service
func New(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*App, error) {
	a := &App{logger: logger}

	store, err := a.openStore(ctx, cfg.Storage)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}
	a.Store = store

	a.Catalog = catalog.New()
	a.Auth = service.NewAuthService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	a.Sessions = service.NewSessionService(store, a.Catalog, logger)
	a.Answers = service.NewAnswerService(a.Sessions, a.Catalog, logger)
	a.Scoring = service.NewScoringService(a.Sessions, a.Catalog, store, logger)
	a.Profiles = service.NewProfileService(store, logger)

	generator := service.NewLLMReportGenerator(cfg.AI, a.Catalog, logger)
	reportTimeout := time.Duration(cfg.AI.TimeoutMS) * time.Millisecond
	a.Reports = service.NewReportService(a.Scoring, a.Profiles, generator, store, reportTimeout, logger)

	a.Hub = ws.NewHub(logger)
	a.Answers.SetNotifier(a.Hub)
	a.Reports.SetNotifier(a.Hub)

	a.handler = rest.NewRouter(&rest.Container{
		Catalog:         a.Catalog,
		AuthService:     a.Auth,
		SessionService:  a.Sessions,
		AnswerService:   a.Answers,
		ScoringService:  a.Scoring,
		ProfileService:  a.Profiles,
		ReportService:   a.Reports,
		WSHub:           a.Hub,
		Logger:          logger,
		CORSOrigins:     cfg.Server.CORSOrigins,
		AllowTokenIssue: cfg.Auth.AllowTokenIssue,
	})

	if cfg.AI.IsEnabled() {
		logger.Info(ctx, "report generator configured",
			zap.String("provider", cfg.AI.Provider),
			zap.String("model", cfg.AI.Model))
	} else {
		logger.Warn(ctx, "AI API key not set, reports use the built-in summary")
	}
	return a, nil
}

// Handler returns the HTTP entry point
func (a *App) Handler() http.Handler {
	return a.handler
}

// Close waits for in-flight reports, stops the hub and releases backend connections
func (a *App) Close(ctx context.Context) {
	if a.Reports != nil {
		a.Reports.Wait()
	}
	if a.Hub != nil {
		a.Hub.Close()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.logger.Warn(ctx, "failed to close backend", zap.Error(err))
		}
	}
	a.closers = nil
}

func (a *App) openStore(ctx context.Context, cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		a.closers = append(a.closers, func(context.Context) error { return rdb.Close() })

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		a.logger.Info(ctx, "connected to redis", zap.String("addr", cfg.RedisAddr))
		return cache.NewKVCache(rdb, cfg.TTL()), nil

	case config.BackendMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		a.closers = append(a.closers, client.Disconnect)

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx, nil); err != nil {
			return nil, fmt.Errorf("ping mongo: %w", err)
		}
		a.logger.Info(ctx, "connected to mongo", zap.String("database", cfg.MongoDatabase))
		return repository.NewKVRepo(client.Database(cfg.MongoDatabase)), nil

	case config.BackendSQLite:
		store, err := repository.NewSQLiteStore(cfg.SQLiteDir)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error { return store.Close() })
		a.logger.Info(ctx, "opened sqlite store", zap.String("dir", cfg.SQLiteDir))
		return store, nil

	default:
		a.logger.Info(ctx, "using in-memory store, data is lost on restart")
		return storage.NewMemoryStore(), nil
	}
}
