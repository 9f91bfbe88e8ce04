package memory

import (
	"context"
	"encoding/json"

	"garden/internal/domain/entity"
	domainerrors "garden/internal/domain/errors"
	"garden/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func (tx *txn) CredentialRepo() repository.CredentialRepository {
	return &credentialRepository{tx: tx}
}

func (tx *txn) SeedCatalogRepo() repository.SeedCatalogRepository {
	return &seedCatalogRepository{tx: tx}
}

func (tx *txn) ProfileRepo() repository.DocumentRepository[entity.Profile] {
	return &documentRepository[entity.Profile]{tx: tx, category: entity.CategoryProfile}
}

func (tx *txn) ShopRepo() repository.DocumentRepository[entity.Shop] {
	return &documentRepository[entity.Shop]{tx: tx, category: entity.CategoryShop}
}

func (tx *txn) PurchasesRepo() repository.DocumentRepository[entity.Purchases] {
	return &documentRepository[entity.Purchases]{tx: tx, category: entity.CategoryPurchases}
}

func (tx *txn) PlantsRepo() repository.DocumentRepository[entity.Plants] {
	return &documentRepository[entity.Plants]{tx: tx, category: entity.CategoryPlants}
}

func (tx *txn) InventoryRepo() repository.DocumentRepository[entity.Inventory] {
	return &documentRepository[entity.Inventory]{tx: tx, category: entity.CategoryInventory}
}

func (tx *txn) GardenRepo() repository.DocumentRepository[entity.Garden] {
	return &documentRepository[entity.Garden]{tx: tx, category: entity.CategoryGarden}
}

func (tx *txn) UpgradesRepo() repository.DocumentRepository[entity.Upgrades] {
	return &documentRepository[entity.Upgrades]{tx: tx, category: entity.CategoryUpgrades}
}

func (tx *txn) SuppliesRepo() repository.DocumentRepository[entity.Supplies] {
	return &documentRepository[entity.Supplies]{tx: tx, category: entity.CategorySupplies}
}

func (tx *txn) SeedsRepo() repository.DocumentRepository[entity.Seeds] {
	return &documentRepository[entity.Seeds]{tx: tx, category: entity.CategorySeeds}
}

type credentialRepository struct {
	tx *txn
}

func (repo *credentialRepository) FindByUsername(_ context.Context, normalizedUsername string) (*entity.Credential, error) {
	tx := repo.tx
	tx.mu.Lock()
	defer tx.mu.Unlock()

	id, ok := tx.usernames[normalizedUsername]
	if !ok {
		id, ok = tx.store.usernames[normalizedUsername]
	}
	if !ok {
		return nil, repository.ErrCredentialNotFound
	}

	return repo.lookup(id)
}

func (repo *credentialRepository) FindByID(_ context.Context, id entity.AccountID) (*entity.Credential, error) {
	repo.tx.mu.Lock()
	defer repo.tx.mu.Unlock()

	return repo.lookup(id)
}

// lookup expects tx.mu to be held.
func (repo *credentialRepository) lookup(id entity.AccountID) (*entity.Credential, error) {
	if c, ok := repo.tx.credentials[id]; ok {
		return &c, nil
	}
	if c, ok := repo.tx.store.credentials[id]; ok {
		return &c, nil
	}

	return nil, repository.ErrCredentialNotFound
}

// Create enforces the unique username index across committed and staged rows.
func (repo *credentialRepository) Create(_ context.Context, credential *entity.Credential) error {
	tx := repo.tx
	tx.mu.Lock()
	defer tx.mu.Unlock()

	if _, taken := tx.usernames[credential.Username]; taken {
		return errors.Wrap(domainerrors.ErrUsernameTaken, "credential insert hit the username index")
	}
	if _, taken := tx.store.usernames[credential.Username]; taken {
		return errors.Wrap(domainerrors.ErrUsernameTaken, "credential insert hit the username index")
	}

	credential.ID = entity.AccountID(uuid.New())
	tx.credentials[credential.ID] = *credential
	tx.usernames[credential.Username] = credential.ID

	return nil
}

type seedCatalogRepository struct {
	tx *txn
}

func (repo *seedCatalogRepository) FindAll(_ context.Context) ([]entity.Seed, error) {
	store := repo.tx.store
	if store.catalogErr != nil {
		return nil, errors.Wrap(store.catalogErr, "failed to read seed catalog")
	}

	return entity.CloneSeeds(store.catalog), nil
}

type documentRepository[T any] struct {
	tx       *txn
	category entity.Category
}

func (repo *documentRepository[T]) Insert(_ context.Context, id entity.AccountID, doc *T) error {
	raw, err := encode(doc)
	if err != nil {
		return err
	}

	if err := repo.tx.writeDocument(repo.category, id, raw, false, true); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert "+string(repo.category)+" document")
	}

	return nil
}

func (repo *documentRepository[T]) Find(_ context.Context, id entity.AccountID) (*T, error) {
	raw, ok := repo.tx.readDocument(repo.category, id)
	if !ok {
		return nil, repository.ErrDocumentNotFound
	}

	doc := new(T)
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, errors.Wrapf(err, "decode %s document", repo.category)
	}

	return doc, nil
}

// FindForUpdate needs no extra locking because scopes are already serialized.
func (repo *documentRepository[T]) FindForUpdate(ctx context.Context, id entity.AccountID) (*T, error) {
	return repo.Find(ctx, id)
}

func (repo *documentRepository[T]) Replace(_ context.Context, id entity.AccountID, doc *T) error {
	raw, err := encode(doc)
	if err != nil {
		return err
	}

	return repo.tx.writeDocument(repo.category, id, raw, true, false)
}
