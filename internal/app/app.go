package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"learnql/config"
	gqlin "learnql/internal/adapter/in/graphql"
	"learnql/internal/adapter/out/pubsub/inmemory"
	"learnql/internal/service"
	"learnql/pkg/logger"

	"github.com/graph-gophers/graphql-go"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg  config.Config
	srv  *http.Server
	pool *pgxpool.Pool
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	var (
		stores storages
		pool   *pgxpool.Pool
		health healthCheck
	)

	switch cfg.StorageType {
	case config.StoragePostgres:
		var err error
		pool, err = Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		stores, err = newPostgresStorages(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		health = pool.Ping

	default:
		stores = newMemoryStorages()
	}

	schema, err := newSchema(stores, inmemory.New(cfg.BusBuffer))
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		return nil, err
	}

	addr := ":" + cfg.HTTP.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(log, schema, cfg.HTTP.AllowedOrigins, health),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized", "addr", addr, "storage", cfg.StorageType)
	return &App{cfg: cfg, srv: srv, pool: pool}, nil
}

// newSchema wires services over stores and binds them to the GraphQL schema.
func newSchema(stores storages, bus service.ActionBus) (*graphql.Schema, error) {
	contents := projectContents{ContentStorage: stores.content, DomainStorage: stores.domains, ActionStorage: stores.actions}

	schema, err := gqlin.NewSchema(gqlin.NewResolver(gqlin.Services{
		Projects:    service.NewProjectService(stores.projects, contents, stores.tx),
		Users:       service.NewUserService(stores.users),
		Actions:     service.NewActionService(stores.actions, bus, stores.users, stores.projects, stores.content, stores.tx),
		Content:     service.NewContentService(stores.content, stores.projects, stores.tx),
		Domains:     service.NewDomainService(stores.domains, stores.projects, stores.tx),
		ModelStates: service.NewModelStateService(stores.modelStates, stores.users, stores.domains, stores.tx),
	}))
	if err != nil {
		return nil, fmt.Errorf("graphql schema: %w", err)
	}
	return schema, nil
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.srv.Handler
}

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := a.srv.Shutdown(shCtx)
		a.close()
		if err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil

	case err := <-errCh:
		a.close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
