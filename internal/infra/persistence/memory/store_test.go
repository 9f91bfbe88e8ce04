package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"garden/internal/domain/entity"
	domainerrors "garden/internal/domain/errors"
	"garden/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSeeds = []entity.Seed{
	{Name: "tomato", Count: 5, Unlocked: true},
	{Name: "carrot", Count: 3, Unlocked: true},
}

func createCredential(t *testing.T, tm repository.TransactionManager, username string) entity.AccountID {
	t.Helper()

	var id entity.AccountID
	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		c := &entity.Credential{Username: username, PasswordHash: "hash"}
		if err := f.CredentialRepo().Create(context.Background(), c); err != nil {
			return err
		}
		id = c.ID

		return nil
	})
	require.NoError(t, err)

	return id
}

func TestTransactionManager_CommitMakesWritesVisible(t *testing.T) {
	store := NewStore(testSeeds)
	tm := NewTransactionManager(store)
	ctx := context.Background()

	id := createCredential(t, tm, "alice")
	assert.False(t, id.IsNil())

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.ShopRepo().Insert(ctx, id, &entity.Shop{ID: id, Shop: map[string]any{}})
	})
	require.NoError(t, err)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		c, err := f.CredentialRepo().FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, id, c.ID)

		shop, err := f.ShopRepo().Find(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, shop.ID)
		assert.Empty(t, shop.Shop)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.CredentialCount())
	assert.Equal(t, 1, store.DocumentCount(entity.CategoryShop))
}

func TestTransactionManager_RollbackDiscardsStagedWrites(t *testing.T) {
	store := NewStore(testSeeds)
	tm := NewTransactionManager(store)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		c := &entity.Credential{Username: "alice", PasswordHash: "hash"}
		require.NoError(t, f.CredentialRepo().Create(ctx, c))
		require.NoError(t, f.ProfileRepo().Insert(ctx, c.ID, entity.NewProfile(c.ID, "alice", c.CreatedAt)))

		_, err := f.CredentialRepo().FindByUsername(ctx, "alice")
		require.NoError(t, err, "staged rows are visible inside the scope")

		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, store.CredentialCount())
	assert.Zero(t, store.DocumentCount(entity.CategoryProfile))

	// The username is free again.
	createCredential(t, tm, "alice")
}

func TestTransactionManager_PanicRollsBackAndReleasesLock(t *testing.T) {
	store := NewStore(nil)
	tm := NewTransactionManager(store)

	assert.Panics(t, func() {
		_ = tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
			c := &entity.Credential{Username: "alice"}
			_ = f.CredentialRepo().Create(context.Background(), c)
			panic("boom")
		})
	})

	assert.Zero(t, store.CredentialCount())
	createCredential(t, tm, "bob")
}

func TestTransactionManager_CanceledContext(t *testing.T) {
	tm := NewTransactionManager(NewStore(nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := tm.Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestCredentialRepository_UniqueUsername(t *testing.T) {
	store := NewStore(nil)
	tm := NewTransactionManager(store)
	ctx := context.Background()

	createCredential(t, tm, "alice")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.CredentialRepo().Create(ctx, &entity.Credential{Username: "alice"})
	})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.CredentialRepo().Create(ctx, &entity.Credential{Username: "carol"}))

		return f.CredentialRepo().Create(ctx, &entity.Credential{Username: "carol"})
	})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	assert.Equal(t, 1, store.CredentialCount())
}

func TestCredentialRepository_ConcurrentCreatesOneWinner(t *testing.T) {
	store := NewStore(nil)
	tm := NewTransactionManager(store)
	ctx := context.Background()

	const attempts = 16
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
			err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				return f.CredentialRepo().Create(ctx, &entity.Credential{Username: "dup"})
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if errors.Is(err, domainerrors.ErrUsernameTaken) {
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
	assert.Equal(t, 1, store.CredentialCount())
}

func TestDocumentRepository_InsertTwiceFails(t *testing.T) {
	tm := NewTransactionManager(NewStore(nil))
	ctx := context.Background()
	id := createCredential(t, tm, "alice")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.PlantsRepo().Insert(ctx, id, &entity.Plants{ID: id, Plants: []entity.Record{}}))

		return f.PlantsRepo().Insert(ctx, id, &entity.Plants{ID: id, Plants: []entity.Record{}})
	})
	assert.Error(t, err)
}

func TestDocumentRepository_ReplaceAndIsolation(t *testing.T) {
	tm := NewTransactionManager(NewStore(nil))
	ctx := context.Background()
	id := createCredential(t, tm, "alice")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.SeedsRepo().Replace(ctx, id, &entity.Seeds{ID: id})
	})
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)

	original := &entity.Seeds{ID: id, Seeds: entity.CloneSeeds(testSeeds)}
	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.SeedsRepo().Insert(ctx, id, original)
	}))

	// Mutating the caller's value must not reach the store.
	original.Seeds[0].Count = 99

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		seeds, err := f.SeedsRepo().FindForUpdate(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 5, seeds.Seeds[0].Count)

		seeds.Seeds[0].Count = 4

		return f.SeedsRepo().Replace(ctx, id, seeds)
	}))

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		seeds, err := f.SeedsRepo().Find(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 4, seeds.Seeds[0].Count)

		return nil
	}))
}

func TestSeedCatalog(t *testing.T) {
	store := NewStore(testSeeds)
	tm := NewTransactionManager(store)
	ctx := context.Background()

	readCatalog := func() ([]entity.Seed, error) {
		var seeds []entity.Seed
		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			var err error
			seeds, err = f.SeedCatalogRepo().FindAll(ctx)

			return err
		})

		return seeds, err
	}

	seeds, err := readCatalog()
	require.NoError(t, err)
	assert.Equal(t, testSeeds, seeds)

	require.NoError(t, store.SeedCatalogWriter().ReplaceAll(ctx, []entity.Seed{{Name: "pumpkin"}}))
	seeds, err = readCatalog()
	require.NoError(t, err)
	assert.Equal(t, []entity.Seed{{Name: "pumpkin"}}, seeds)

	store.FailCatalog(errors.New("disk gone"))
	_, err = readCatalog()
	assert.Error(t, err)
}
