package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Checksum returns the hex SHA256 of a catalog file so operators can tell loaded revisions apart.
func Checksum(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to open catalog")
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", errors.Wrap(err, "failed to hash catalog")
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
