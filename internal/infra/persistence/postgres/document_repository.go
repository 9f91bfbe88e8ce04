package postgres

import (
	"context"
	"fmt"

	"garden/internal/domain/entity"
	domainerrors "garden/internal/domain/errors"
	"garden/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// documentRepository stores one category of per-account documents. M is the table model and T the entity.
type documentRepository[M any, T any] struct {
	db         *gorm.DB
	category   entity.Category
	toDomain   func(*M) *T
	fromDomain func(entity.AccountID, *T) *M
}

func newDocumentRepository[M any, T any](
	db *gorm.DB,
	category entity.Category,
	toDomain func(*M) *T,
	fromDomain func(entity.AccountID, *T) *M,
) repository.DocumentRepository[T] {
	return &documentRepository[M, T]{
		db:         db,
		category:   category,
		toDomain:   toDomain,
		fromDomain: fromDomain,
	}
}

// Insert stores a new document. A second insert for the same account violates the primary key.
func (repo *documentRepository[M, T]) Insert(ctx context.Context, id entity.AccountID, doc *T) error {
	if err := repo.db.WithContext(ctx).Create(repo.fromDomain(id, doc)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, fmt.Sprintf("%s document already exists", repo.category))
		}
		if isCheckConstraintViolation(err) {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "%s document violates a constraint", repo.category)
		}

		return domainerrors.NewDatabaseExecuteError(err, fmt.Sprintf("failed to insert %s document", repo.category))
	}

	return nil
}

// Find reads the document stored under id.
func (repo *documentRepository[M, T]) Find(ctx context.Context, id entity.AccountID) (*T, error) {
	return repo.find(repo.db.WithContext(ctx), id)
}

// FindForUpdate reads the document with SELECT ... FOR UPDATE.
func (repo *documentRepository[M, T]) FindForUpdate(ctx context.Context, id entity.AccountID) (*T, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *documentRepository[M, T]) find(db *gorm.DB, id entity.AccountID) (*T, error) {
	var m M

	if err := db.Where("account_id = ?", uuid.UUID(id)).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s document", repo.category)
	}

	return repo.toDomain(&m), nil
}

// Replace overwrites every column of the stored document.
func (repo *documentRepository[M, T]) Replace(ctx context.Context, id entity.AccountID, doc *T) error {
	m := repo.fromDomain(id, doc)

	result := repo.db.WithContext(ctx).
		Model(m).
		Where("account_id = ?", uuid.UUID(id)).
		Select("*").
		Updates(m)
	if err := result.Error; err != nil {
		if isCheckConstraintViolation(err) {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "%s document violates a constraint", repo.category)
		}

		return domainerrors.NewDatabaseExecuteError(err, fmt.Sprintf("failed to replace %s document", repo.category))
	}

	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}
