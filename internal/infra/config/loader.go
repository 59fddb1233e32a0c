package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/solidlab/internal/domain"
)

// LoadCatalog reads a YAML book catalog used to seed a library.
func LoadCatalog(path string) ([]domain.Book, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "config.load_catalog",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLCatalog
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &domain.OpError{
			Op:   "config.load_catalog",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapCatalog(path, dto)
}
