package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"garden/config"
	"garden/internal/domain/entity"
	"garden/internal/domain/repository"
	"garden/internal/errors"
	"garden/internal/infra/auth"
	"garden/internal/infra/persistence/memory"
	"garden/internal/infra/pubsub"
	"garden/internal/infra/validation"
	"garden/internal/usecase"

	"github.com/stretchr/testify/require"
)

var defaultTestSeeds = []entity.Seed{
	{Name: "tomato", Count: 5, Unlocked: true},
	{Name: "carrot", Count: 3, Unlocked: true},
	{Name: "pumpkin", Count: 0, Unlocked: false},
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
		CredentialPolicy: config.DefaultCredentialPolicy(),
	}
	cfg.SecretKey.Access = "test-secret"
	cfg.Storage.Driver = config.StorageDriverMemory
	cfg.Storage.FanOutLimit = 4

	return cfg
}

// newAccountHarness wires the account service to the in-memory store and the real hasher, validator and token service.
// wrap, when set, decorates the store's transaction manager.
func newAccountHarness(t *testing.T, wrap func(repository.TransactionManager) repository.TransactionManager) (usecase.AccountUsecase, *memory.Store) {
	t.Helper()

	cfg := newTestConfig()
	logger := newDiscardLogger()
	store := memory.NewStore(defaultTestSeeds)

	tm := memory.NewTransactionManager(store)
	if wrap != nil {
		tm = wrap(tm)
	}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	svc := NewAccountService(AccountServiceParams{
		TxManager:    tm,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Validator:    validation.NewCredentialValidator(cfg),
		Publisher:    pubsub.NewNoopPublisher(logger),
		Config:       cfg,
		Logger:       logger,
	})

	return svc, store
}

var errInjectedInsert = errors.New("injected insert failure")

// failingTxManager hands fn a factory whose garden repository cannot insert.
type failingTxManager struct {
	inner repository.TransactionManager
}

func (tm *failingTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return tm.inner.Execute(ctx, func(f repository.RepositoryFactory) error {
		return fn(&failingFactory{RepositoryFactory: f})
	})
}

type failingFactory struct {
	repository.RepositoryFactory
}

func (f *failingFactory) GardenRepo() repository.DocumentRepository[entity.Garden] {
	return &failingDocumentRepository[entity.Garden]{DocumentRepository: f.RepositoryFactory.GardenRepo()}
}

type failingDocumentRepository[T any] struct {
	repository.DocumentRepository[T]
}

func (r *failingDocumentRepository[T]) Insert(context.Context, entity.AccountID, *T) error {
	return errInjectedInsert
}
