package context

import (
	"context"
	"testing"

	"garden/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccountFromContext(t *testing.T) {
	_, ok := AccountFromContext(context.Background())
	assert.False(t, ok)

	_, ok = AccountFromContext(WithAccount(context.Background(), Account{Username: "bob"}))
	assert.False(t, ok, "nil id is not an authenticated account")

	want := Account{ID: entity.AccountID(uuid.New()), Username: "bob"}
	got, ok := AccountFromContext(WithAccount(context.Background(), want))
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetLoggerOrDefault(t *testing.T) {
	assert.Nil(t, GetLoggerOrDefault(context.Background(), nil))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
}
