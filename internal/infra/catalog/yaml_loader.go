// Package catalog reads seed catalog definitions from yaml files.
package catalog

import (
	"strings"

	"garden/internal/domain/entity"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type catalogFile struct {
	Seeds []entity.Seed `yaml:"seeds"`
}

// LoadFile parses a catalog file of the form `seeds: [{name, count, unlocked}]`.
// A file with no seeds is valid and yields an empty catalog.
func LoadFile(path string) ([]entity.Seed, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("catalog path is empty")
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}

	var parsed catalogFile
	if err := k.UnmarshalWithConf("", &parsed, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, errors.Wrapf(err, "decode catalog %s", path)
	}

	if err := Validate(parsed.Seeds); err != nil {
		return nil, errors.Wrapf(err, "invalid catalog %s", path)
	}

	return entity.CloneSeeds(parsed.Seeds), nil
}

// Validate rejects unnamed seeds, negative counts and duplicate names.
func Validate(seeds []entity.Seed) error {
	for i, s := range seeds {
		if strings.TrimSpace(s.Name) == "" {
			return errors.Errorf("seed #%d has no name", i+1)
		}
		if s.Count < 0 {
			return errors.Errorf("seed %q has a negative count", s.Name)
		}
	}

	if name, dup := entity.DuplicateSeedName(seeds); dup {
		return errors.Errorf("seed %q appears more than once", name)
	}

	return nil
}
