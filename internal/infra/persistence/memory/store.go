// Package memory implements the persistence layer as a transactional in-memory store.
// Scopes run one at a time. Writes are staged per scope and only applied on commit.
package memory

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"garden/config"
	"garden/internal/domain/entity"
	"garden/internal/domain/repository"
	"garden/internal/infra/catalog"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Store holds committed state. Documents are kept JSON-encoded so readers never alias stored values.
type Store struct {
	mu sync.Mutex

	credentials map[entity.AccountID]entity.Credential
	usernames   map[string]entity.AccountID
	documents   map[entity.Category]map[entity.AccountID][]byte
	catalog     []entity.Seed
	catalogErr  error
}

// Params defines the parameters required for the store
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New loads the seed catalog from storage.catalogPath and returns an empty store.
func New(params Params) (*Store, error) {
	seeds, err := catalog.LoadFile(params.Config.Storage.CatalogPath)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Using in-memory storage",
		slog.String("catalog", params.Config.Storage.CatalogPath),
		slog.Int("catalogSize", len(seeds)),
	)

	return NewStore(seeds), nil
}

// NewStore returns an empty store serving the given catalog.
func NewStore(seeds []entity.Seed) *Store {
	documents := make(map[entity.Category]map[entity.AccountID][]byte, len(entity.AllCategories))
	for _, c := range entity.AllCategories {
		documents[c] = map[entity.AccountID][]byte{}
	}

	return &Store{
		credentials: map[entity.AccountID]entity.Credential{},
		usernames:   map[string]entity.AccountID{},
		documents:   documents,
		catalog:     entity.CloneSeeds(seeds),
	}
}

// FailCatalog makes every later catalog read fail with err. Passing nil restores reads.
func (s *Store) FailCatalog(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogErr = err
}

// CredentialCount reports how many credentials are committed.
func (s *Store) CredentialCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.credentials)
}

// DocumentCount reports how many documents of category are committed.
func (s *Store) DocumentCount(category entity.Category) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.documents[category])
}

// SeedCatalogWriter exposes catalog replacement for operator flows.
func (s *Store) SeedCatalogWriter() repository.SeedCatalogWriter {
	return &catalogWriter{store: s}
}

type catalogWriter struct {
	store *Store
}

func (w *catalogWriter) ReplaceAll(_ context.Context, seeds []entity.Seed) error {
	if err := catalog.Validate(seeds); err != nil {
		return err
	}

	w.store.mu.Lock()
	defer w.store.mu.Unlock()
	w.store.catalog = entity.CloneSeeds(seeds)

	return nil
}

// transactionManager runs scopes against a Store.
type transactionManager struct {
	store *Store
}

// NewTransactionManager is the constructor for the in-memory TransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute holds the store lock for the whole scope and applies staged writes only when fn succeeds.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	tx := newTxn(tm.store)
	if err := fn(tx); err != nil {
		return err
	}

	tx.commit()

	return nil
}

// txn is one scope: committed state under the store lock plus staged writes under its own lock.
type txn struct {
	store *Store

	mu          sync.Mutex
	credentials map[entity.AccountID]entity.Credential
	usernames   map[string]entity.AccountID
	documents   map[entity.Category]map[entity.AccountID][]byte
}

func newTxn(store *Store) *txn {
	return &txn{
		store:       store,
		credentials: map[entity.AccountID]entity.Credential{},
		usernames:   map[string]entity.AccountID{},
		documents:   map[entity.Category]map[entity.AccountID][]byte{},
	}
}

func (tx *txn) commit() {
	for id, c := range tx.credentials {
		tx.store.credentials[id] = c
	}
	for name, id := range tx.usernames {
		tx.store.usernames[name] = id
	}
	for category, docs := range tx.documents {
		for id, raw := range docs {
			tx.store.documents[category][id] = raw
		}
	}
}

func (tx *txn) readDocument(category entity.Category, id entity.AccountID) ([]byte, bool) {
	tx.mu.Lock()
	defer tx.mu.Unlock()

	if raw, ok := tx.documents[category][id]; ok {
		return raw, true
	}
	raw, ok := tx.store.documents[category][id]

	return raw, ok
}

func (tx *txn) writeDocument(category entity.Category, id entity.AccountID, raw []byte, mustExist, mustNotExist bool) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()

	_, staged := tx.documents[category][id]
	_, committed := tx.store.documents[category][id]
	exists := staged || committed

	if mustNotExist && exists {
		return errors.Errorf("%s document for %s already exists", category, id)
	}
	if mustExist && !exists {
		return repository.ErrDocumentNotFound
	}

	if tx.documents[category] == nil {
		tx.documents[category] = map[entity.AccountID][]byte{}
	}
	tx.documents[category][id] = raw

	return nil
}

func encode(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode document")
	}

	return raw, nil
}
