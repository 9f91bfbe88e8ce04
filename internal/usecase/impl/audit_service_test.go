package impl

import (
	"context"
	"testing"

	"garden/internal/domain/entity"
	"garden/internal/domain/repository"
	"garden/internal/infra/persistence/memory"
	mockRepo "garden/internal/mocks/repository"
	"garden/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuditService_CompleteAccount(t *testing.T) {
	accounts, store := newAccountHarness(t, nil)
	output, err := accounts.Register(context.Background(), usecase.RegisterInput{Username: "audited1", Password: "hunter22x"})
	require.NoError(t, err)

	srv := NewAuditService(memory.NewTransactionManager(store), newDiscardLogger())
	report, err := srv.AuditAccount(context.Background(), output.AccountID)

	require.NoError(t, err)
	assert.True(t, report.Complete())
	assert.Empty(t, report.Missing)
}

func TestAuditService_UnknownAccountReportsEverythingMissing(t *testing.T) {
	store := memory.NewStore(nil)
	srv := NewAuditService(memory.NewTransactionManager(store), newDiscardLogger())

	report, err := srv.AuditAccount(context.Background(), entity.AccountID(uuid.New()))

	require.NoError(t, err)
	assert.False(t, report.Complete())
	assert.False(t, report.CredentialFound)
	assert.Equal(t, entity.AllCategories, report.Missing)
}

func TestAuditService_StorageError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	id := entity.AccountID(uuid.New())

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			credentialRepo := mockRepo.NewMockCredentialRepository(t)
			mockFactory.EXPECT().CredentialRepo().Return(credentialRepo)
			credentialRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, errors.New("connection refused"))

			return fn(mockFactory)
		})

	report, err := NewAuditService(txManager, newDiscardLogger()).AuditAccount(context.Background(), id)

	require.Error(t, err)
	assert.Nil(t, report)
}
