package app

import (
	"context"
	"fmt"
	"time"

	"learnql/config"
	memstore "learnql/internal/adapter/out/storage/inmemory"
	pgstore "learnql/internal/adapter/out/storage/postgres"
	"learnql/internal/service"
	"learnql/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

const connectRetries = 5

// storages is one storage backend behind the service interfaces.
type storages struct {
	projects    service.ProjectStorage
	users       service.UserStorage
	actions     service.ActionStorage
	content     service.ContentStorage
	domains     service.DomainStorage
	modelStates service.ModelStateStorage
	tx          service.TxManager
}

// projectContents lists what a project still owns.
type projectContents struct {
	service.ContentStorage
	service.DomainStorage
	service.ActionStorage
}

func newMemoryStorages() storages {
	actions := memstore.NewActionStorage()
	return storages{
		projects:    memstore.NewProjectStorage(),
		users:       memstore.NewUserStorage(),
		actions:     actions,
		content:     memstore.NewContentStorage(actions),
		domains:     memstore.NewDomainStorage(),
		modelStates: memstore.NewModelStateStorage(),
		tx:          memstore.TxManager{},
	}
}

func newPostgresStorages(pool *pgxpool.Pool) (storages, error) {
	tx, err := manager.New(trmpgx.NewDefaultFactory(pool))
	if err != nil {
		return storages{}, fmt.Errorf("transaction manager: %w", err)
	}

	getter := trmpgx.DefaultCtxGetter
	return storages{
		projects:    pgstore.NewProjectStorage(pool, getter),
		users:       pgstore.NewUserStorage(pool, getter),
		actions:     pgstore.NewActionStorage(pool, getter),
		content:     pgstore.NewContentStorage(pool, getter),
		domains:     pgstore.NewDomainStorage(pool, getter),
		modelStates: pgstore.NewModelStateStorage(pool, getter),
		tx:          tx,
	}, nil
}

// Connect opens a pool and waits for the database to answer.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	log := logger.FromContext(ctx)

	pool, err := pgxpool.New(ctx, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}

	start := time.Now()
	ping := func() error {
		if err := pool.Ping(ctx); err != nil {
			log.Warn("database not ready", "host", cfg.Host, "error", err)
			return err
		}
		return nil
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), connectRetries), ctx)
	if err := backoff.Retry(ping, policy); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("database connected", "host", cfg.Host, "db", cfg.DB, logger.Since(start))
	return pool, nil
}

// Migrate applies the schema to the configured database.
func Migrate(ctx context.Context, cfg config.PostgresConfig) error {
	pool, err := Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pgstore.Migrate(ctx, pool); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("schema applied", "db", cfg.DB)
	return nil
}
