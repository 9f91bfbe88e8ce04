// Package persistence selects the storage backend named by storage.driver.
package persistence

import (
	"log/slog"

	"garden/config"
	"garden/internal/domain/repository"
	"garden/internal/infra/persistence/memory"
	"garden/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required to open storage
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewTransactionManager opens the configured backend and returns its unit-of-work entry point.
func NewTransactionManager(params Params) (repository.TransactionManager, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		store, err := memory.New(memory.Params{Config: params.Config, Logger: params.Logger})
		if err != nil {
			return nil, err
		}

		return memory.NewTransactionManager(store), nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewTransactionManager(db), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTransactionManager),
)
