package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"garden/internal/domain/entity"
	mockRepo "garden/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seeds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadCatalog(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("replaces catalog with file contents", func(t *testing.T) {
		path := writeCatalogFile(t, "seeds:\n  - name: tomato\n    count: 5\n    unlocked: true\n  - name: pumpkin\n    count: 0\n    unlocked: false\n")
		writer := mockRepo.NewMockSeedCatalogWriter(t)
		writer.EXPECT().ReplaceAll(mock.Anything, []entity.Seed{
			{Name: "tomato", Count: 5, Unlocked: true},
			{Name: "pumpkin", Count: 0, Unlocked: false},
		}).Return(nil)

		require.NoError(t, loadCatalog(context.Background(), writer, path, logger))
	})

	t.Run("invalid file writes nothing", func(t *testing.T) {
		path := writeCatalogFile(t, "seeds:\n  - name: tomato\n    count: -1\n")
		writer := mockRepo.NewMockSeedCatalogWriter(t)

		err := loadCatalog(context.Background(), writer, path, logger)

		assert.ErrorContains(t, err, "negative count")
		writer.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
	})

	t.Run("writer failure is reported", func(t *testing.T) {
		path := writeCatalogFile(t, "seeds: []\n")
		writer := mockRepo.NewMockSeedCatalogWriter(t)
		writer.EXPECT().ReplaceAll(mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		err := loadCatalog(context.Background(), writer, path, logger)

		assert.ErrorContains(t, err, "replace seed catalog")
	})
}
