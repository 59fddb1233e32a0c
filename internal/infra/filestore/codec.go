package filestore

import (
	"fmt"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/solidlab/internal/domain"
)

// snapshot is the on-disk document. Version lets later formats coexist.
type snapshot struct {
	Version int           `json:"version" yaml:"version"`
	Books   []domain.Book `json:"books" yaml:"books"`
}

const snapshotVersion = 1

type codec interface {
	encode(s snapshot) ([]byte, error)
	decode(b []byte, s *snapshot) error
}

type yamlCodec struct{}

func (yamlCodec) encode(s snapshot) ([]byte, error) { return yaml.Marshal(s) }
func (yamlCodec) decode(b []byte, s *snapshot) error { return yaml.Unmarshal(b, s) }

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonCodec struct{}

func (jsonCodec) encode(s snapshot) ([]byte, error) { return jsonAPI.MarshalIndent(s, "", "  ") }
func (jsonCodec) decode(b []byte, s *snapshot) error { return jsonAPI.Unmarshal(b, s) }

func codecFor(path string) (codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}, nil
	case ".json":
		return jsonCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported snapshot extension %q (expected .yaml, .yml or .json)", filepath.Ext(path))
	}
}
