// Package app assembles the chat server from its configuration: storage,
// the live subscription hub with its optional Redis broker, services,
// transports and the background workers that share the process lifetime.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cipher-rooms/internal/config"
	"github.com/MKhiriev/go-cipher-rooms/internal/handler"
	"github.com/MKhiriev/go-cipher-rooms/internal/hub"
	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/server"
	"github.com/MKhiriev/go-cipher-rooms/internal/service"
	"github.com/MKhiriev/go-cipher-rooms/internal/store"
	"github.com/MKhiriev/go-cipher-rooms/internal/utils"
	"github.com/MKhiriev/go-cipher-rooms/internal/workers"
	"github.com/redis/go-redis/v9"
)

type App struct {
	db      *store.DB
	redis   *redis.Client
	hub     *hub.Hub
	workers *workers.Workers

	logger *logger.Logger
}

// NewApp connects to PostgreSQL, applies the migrations and builds the
// application on top of that connection.
func NewApp(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*App, error) {
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	log.Info().Str("func", "NewApp").Msg("database migrated")

	app, err := assemble(ctx, cfg, db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return app, nil
}

func assemble(ctx context.Context, cfg config.StructuredConfig, db *store.DB, log *logger.Logger) (*App, error) {
	app := &App{
		db:     db,
		hub:    hub.New(cfg.Hub.SubscriberBuffer, log),
		logger: log,
	}
	app.workers = workers.NewWorkers()

	if cfg.Storage.Redis.Enabled() {
		bridge, err := app.connectRedis(ctx, cfg.Storage.Redis)
		if err != nil {
			return nil, err
		}
		app.workers.Add(bridge)
	}

	services, err := service.NewServices(store.NewStorages(db, log), db, app.hub, cfg, log)
	if err != nil {
		app.closeRedis()
		return nil, fmt.Errorf("create services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		app.closeRedis()
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log.GetChildLogger(), app.hub.Close)
	if err != nil {
		app.closeRedis()
		return nil, fmt.Errorf("create server: %w", err)
	}
	app.workers.Add(srv)

	if handlers.GRPC != nil {
		app.workers.Add(handlers.GRPC)
	}

	return app, nil
}

// connectRedis wires the hub to the broker. Every process gets its own
// instance id so the bridge can skip batches this process already delivered.
func (a *App) connectRedis(ctx context.Context, cfg config.Redis) (*hub.RedisBridge, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		a.logger.Err(err).Str("func", "*App.connectRedis").Str("address", cfg.Address).Msg("redis is unreachable")
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	instanceID := utils.NewUUIDGenerator().Generate()

	broker, err := hub.NewRedisBroker(client, instanceID)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	bridge, err := hub.NewRedisBridge(client, a.hub, instanceID, a.logger)
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	a.hub.SetBroker(broker)
	a.redis = client
	a.logger.Info().Str("func", "*App.connectRedis").Str("instance_id", instanceID).Msg("redis broker enabled")

	return bridge, nil
}

// Run blocks until ctx is cancelled or a worker fails, then releases the
// hub, the Redis client and the database.
func (a *App) Run(ctx context.Context) error {
	runErr := a.workers.Run(ctx)

	a.hub.Close()
	a.closeRedis()
	closeErr := a.db.Close()

	a.logger.Info().Str("func", "*App.Run").Msg("application stopped")

	return errors.Join(runErr, closeErr)
}

func (a *App) closeRedis() {
	if a.redis == nil {
		return
	}
	if err := a.redis.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.closeRedis").Msg("error closing redis client")
	}
	a.redis = nil
}
