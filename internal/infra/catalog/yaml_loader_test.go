package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"garden/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seeds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadFile(t *testing.T) {
	path := writeCatalog(t, `
seeds:
  - name: tomato
    count: 5
    unlocked: true
  - name: sunflower
    count: 0
    unlocked: false
`)

	seeds, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []entity.Seed{
		{Name: "tomato", Count: 5, Unlocked: true},
		{Name: "sunflower", Count: 0, Unlocked: false},
	}, seeds)
}

func TestLoadFile_EmptyCatalog(t *testing.T) {
	path := writeCatalog(t, "seeds: []\n")

	seeds, err := LoadFile(path)
	require.NoError(t, err)
	assert.NotNil(t, seeds)
	assert.Empty(t, seeds)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile("")
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	dup := writeCatalog(t, `
seeds:
  - name: tomato
  - name: tomato
`)
	_, err = LoadFile(dup)
	assert.ErrorContains(t, err, "tomato")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(nil))
	assert.Error(t, Validate([]entity.Seed{{Name: " "}}))
	assert.Error(t, Validate([]entity.Seed{{Name: "carrot", Count: -1}}))
}

func TestChecksum(t *testing.T) {
	path := writeCatalog(t, "seeds: []\n")

	sum, err := Checksum(path)
	require.NoError(t, err)
	assert.Len(t, sum, 64)

	again, err := Checksum(path)
	require.NoError(t, err)
	assert.Equal(t, sum, again)

	other, err := Checksum(writeCatalog(t, "seeds: []\n# changed\n"))
	require.NoError(t, err)
	assert.NotEqual(t, sum, other)

	_, err = Checksum(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
