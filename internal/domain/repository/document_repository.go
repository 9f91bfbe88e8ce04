package repository

import (
	"context"
	"errors"

	"garden/internal/domain/entity"
)

// ErrDocumentNotFound is returned when an account has no document in a category.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository persists one category of per-account documents, keyed by account identifier.
type DocumentRepository[T any] interface {
	// Insert stores a new document under id. A second insert for the same id fails.
	Insert(ctx context.Context, id entity.AccountID, doc *T) error

	// Find reads the document stored under id.
	Find(ctx context.Context, id entity.AccountID) (*T, error)

	// FindForUpdate reads the document and locks it for the rest of the transaction.
	FindForUpdate(ctx context.Context, id entity.AccountID) (*T, error)

	// Replace overwrites the whole document stored under id.
	Replace(ctx context.Context, id entity.AccountID, doc *T) error
}
