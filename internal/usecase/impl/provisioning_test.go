package impl

import (
	"context"
	"strings"
	"sync"
	"testing"

	"garden/internal/domain/entity"
	domainerrors "garden/internal/domain/errors"
	"garden/internal/domain/repository"
	"garden/internal/infra/auth"
	"garden/internal/infra/persistence/memory"
	"garden/internal/infra/pubsub"
	"garden/internal/infra/validation"
	"garden/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDocumentCounts(t *testing.T, store *memory.Store, want int) {
	t.Helper()

	assert.Equal(t, want, store.CredentialCount(), "credentials")
	for _, category := range entity.AllCategories {
		assert.Equal(t, want, store.DocumentCount(category), "category %s", category)
	}
}

func TestRegister_ProvisionsCredentialAndAllDocuments(t *testing.T) {
	svc, store := newAccountHarness(t, nil)
	ctx := context.Background()

	output, err := svc.Register(ctx, usecase.RegisterInput{Username: "Bob123", Password: "hunter22x"})
	require.NoError(t, err)
	require.NotEmpty(t, output.Token)
	assert.Equal(t, "bob123", output.Username)

	assertDocumentCounts(t, store, 1)

	tokenService, err := auth.NewJWTService(newTestConfig())
	require.NoError(t, err)
	claims, err := tokenService.ValidateToken(output.Token)
	require.NoError(t, err)
	assert.Equal(t, output.AccountID, claims.AccountID)
	assert.Equal(t, "bob123", claims.Username)

	var (
		profile *entity.Profile
		seeds   *entity.Seeds
		inv     *entity.Inventory
	)
	err = memory.NewTransactionManager(store).Execute(ctx, func(f repository.RepositoryFactory) error {
		var err error
		if profile, err = f.ProfileRepo().Find(ctx, output.AccountID); err != nil {
			return err
		}
		if seeds, err = f.SeedsRepo().Find(ctx, output.AccountID); err != nil {
			return err
		}
		inv, err = f.InventoryRepo().Find(ctx, output.AccountID)

		return err
	})
	require.NoError(t, err)

	assert.Equal(t, 60, profile.Balance)
	assert.False(t, profile.OnboardingComplete)
	assert.Equal(t, 0, profile.Game.UsedPlantCapacity)
	assert.Equal(t, 3, profile.Game.PlantCapacity)
	assert.Equal(t, "light", profile.Theme)
	assert.Equal(t, entity.ModeRegistered, profile.Mode)
	assert.Equal(t, "bob123", profile.Username)

	assert.Equal(t, defaultTestSeeds, seeds.Seeds)
	assert.Empty(t, inv.Inventory)
	assert.Equal(t, 0, inv.InventoryCount)
}

func TestRegister_UsernameConflictIsCaseInsensitive(t *testing.T) {
	svc, store := newAccountHarness(t, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, usecase.RegisterInput{Username: "Alice", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "another99"})
	require.ErrorIs(t, err, domainerrors.ErrUsernameTaken)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Account with username already registered", appErr.Message())

	assertDocumentCounts(t, store, 1)
}

func TestRegister_EmptyPasswordWritesNothing(t *testing.T) {
	svc, store := newAccountHarness(t, nil)

	_, err := svc.Register(context.Background(), usecase.RegisterInput{Username: "bob123", Password: ""})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Items, "Password is required")
	assertDocumentCounts(t, store, 0)
}

func TestRegister_OverlongMultibytePasswordIsValidationError(t *testing.T) {
	svc, store := newAccountHarness(t, nil)

	_, err := svc.Register(context.Background(), usecase.RegisterInput{
		Username: "bob123",
		Password: strings.Repeat("é", 39) + "1",
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"Password must not exceed 72 bytes"}, validationErr.Items)
	assert.NotErrorIs(t, err, domainerrors.ErrProvisioningFailed)
	assertDocumentCounts(t, store, 0)
}

func TestNewAccountService_FanOutLimit(t *testing.T) {
	svc := NewAccountService(AccountServiceParams{Logger: newDiscardLogger()}).(*accountService)
	assert.Equal(t, len(entity.InitializedCategories), svc.initializer.fanOutLimit)

	cfg := newTestConfig()
	cfg.Storage.FanOutLimit = 2
	svc = NewAccountService(AccountServiceParams{Config: cfg, Logger: newDiscardLogger()}).(*accountService)
	assert.Equal(t, 2, svc.initializer.fanOutLimit)
}

func TestRegister_FailedInsertRollsBackEverything(t *testing.T) {
	svc, store := newAccountHarness(t, func(tm repository.TransactionManager) repository.TransactionManager {
		return &failingTxManager{inner: tm}
	})

	_, err := svc.Register(context.Background(), usecase.RegisterInput{Username: "bob123", Password: "hunter22x"})

	require.ErrorIs(t, err, domainerrors.ErrProvisioningFailed)
	assert.ErrorIs(t, err, errInjectedInsert)
	assertDocumentCounts(t, store, 0)
}

func TestRegister_CatalogFailureAborts(t *testing.T) {
	svc, store := newAccountHarness(t, nil)
	store.FailCatalog(errors.New("catalog offline"))

	_, err := svc.Register(context.Background(), usecase.RegisterInput{Username: "bob123", Password: "hunter22x"})

	require.ErrorIs(t, err, domainerrors.ErrCatalogUnavailable)
	assertDocumentCounts(t, store, 0)

	store.FailCatalog(nil)
	_, err = svc.Register(context.Background(), usecase.RegisterInput{Username: "bob123", Password: "hunter22x"})
	require.NoError(t, err)
	assertDocumentCounts(t, store, 1)
}

func TestRegister_EmptyCatalogProvisionsEmptySeeds(t *testing.T) {
	store := memory.NewStore(nil)
	cfg := newTestConfig()
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	svc := NewAccountService(AccountServiceParams{
		TxManager:    memory.NewTransactionManager(store),
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Validator:    validation.NewCredentialValidator(cfg),
		Publisher:    pubsub.NewNoopPublisher(newDiscardLogger()),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	ctx := context.Background()
	output, err := svc.Register(ctx, usecase.RegisterInput{Username: "bob123", Password: "hunter22x"})
	require.NoError(t, err)

	var seeds *entity.Seeds
	err = memory.NewTransactionManager(store).Execute(ctx, func(f repository.RepositoryFactory) error {
		var err error
		seeds, err = f.SeedsRepo().Find(ctx, output.AccountID)

		return err
	})
	require.NoError(t, err)
	assert.NotNil(t, seeds.Seeds)
	assert.Empty(t, seeds.Seeds)
}

func TestRegister_ConcurrentDuplicatesHaveOneWinner(t *testing.T) {
	svc, store := newAccountHarness(t, nil)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := svc.Register(context.Background(), usecase.RegisterInput{Username: "Racer1", Password: "hunter22x"})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainerrors.ErrUsernameTaken):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
	assertDocumentCounts(t, store, 1)
}

func TestLogin_AfterRegister(t *testing.T) {
	svc, _ := newAccountHarness(t, nil)
	ctx := context.Background()

	registered, err := svc.Register(ctx, usecase.RegisterInput{Username: "Bob123", Password: "hunter22x"})
	require.NoError(t, err)

	loggedIn, err := svc.Login(ctx, usecase.LoginInput{Username: "BOB123", Password: "hunter22x"})
	require.NoError(t, err)
	assert.Equal(t, registered.AccountID, loggedIn.AccountID)

	_, err = svc.Login(ctx, usecase.LoginInput{Username: "bob123", Password: "wrong-pass1"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
