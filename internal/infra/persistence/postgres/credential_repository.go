package postgres

import (
	"context"

	"garden/internal/domain/entity"
	domainerrors "garden/internal/domain/errors"
	"garden/internal/domain/repository"
	"garden/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// FindByUsername looks a credential up by its normalized username.
func (repo *credentialRepository) FindByUsername(ctx context.Context, normalizedUsername string) (*entity.Credential, error) {
	var credentialM model.CredentialModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", normalizedUsername).
		Take(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by username")
	}

	return toCredentialDomain(&credentialM), nil
}

// FindByID retrieves a credential by its account identifier.
func (repo *credentialRepository) FindByID(ctx context.Context, id entity.AccountID) (*entity.Credential, error) {
	var credentialM model.CredentialModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", uuid.UUID(id)).
		Take(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by ID")
	}

	return toCredentialDomain(&credentialM), nil
}

// Create inserts the credential. The database generates the id, which is copied back onto credential.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		// The unique index on username is the authoritative conflict signal.
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrUsernameTaken, "credential insert hit the username index")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required credential information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = entity.AccountID(credentialM.ID)
	credential.CreatedAt = credentialM.CreatedAt

	return nil
}

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		ID:           entity.AccountID(data.ID),
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	return &model.CredentialModel{
		ID:           uuid.UUID(data.ID),
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}
