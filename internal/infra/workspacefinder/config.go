package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/solidlab/internal/domain"
)

// EnvPrefix is prepended to every environment override (SOLIDLAB_BACKEND, ...).
const EnvPrefix = "SOLIDLAB_"

// LoadConfig loads solidlab.yaml from the workspace root on top of the
// defaults. It only parses; callers Validate once every layer is applied.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := ConfigPath(root)
	if path == "" {
		path = filepath.Join(root, ConfigFileName)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Solidlab.Library.Backend != "" {
		cfg.Library.Backend = domain.StoreBackend(strings.ToLower(y.Solidlab.Library.Backend))
	}
	if y.Solidlab.Library.Path != "" {
		cfg.Library.Path = y.Solidlab.Library.Path
	}
	if y.Solidlab.Library.DSN != "" {
		cfg.Library.DSN = y.Solidlab.Library.DSN
	}
	if y.Solidlab.Vehicles.Region != "" {
		cfg.Vehicles.Region = y.Solidlab.Vehicles.Region
	}
	if y.Solidlab.Logging.Debug != nil {
		cfg.Logging.Debug = *y.Solidlab.Logging.Debug
	}

	return cfg, nil
}

type envOverrides struct {
	Backend string `env:"BACKEND"`
	Path    string `env:"PATH"`
	DSN     string `env:"DSN"`
	Region  string `env:"REGION"`
	Debug   *bool  `env:"DEBUG"`
}

// ApplyEnv overlays SOLIDLAB_* variables on cfg. A nil environ reads the
// process environment. Unset variables leave cfg untouched.
func ApplyEnv(cfg domain.Config, environ map[string]string) (domain.Config, error) {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.applyenv",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	if o.Backend != "" {
		cfg.Library.Backend = domain.StoreBackend(strings.ToLower(o.Backend))
	}
	if o.Path != "" {
		cfg.Library.Path = o.Path
	}
	if o.DSN != "" {
		cfg.Library.DSN = o.DSN
	}
	if o.Region != "" {
		cfg.Vehicles.Region = o.Region
	}
	if o.Debug != nil {
		cfg.Logging.Debug = *o.Debug
	}

	return cfg, nil
}

// Validate rejects unknown backends and backends missing their location.
func Validate(cfg domain.Config) error {
	switch cfg.Library.Backend {
	case domain.BackendMemory:
		return nil
	case domain.BackendYAML, domain.BackendJSON, domain.BackendSQLite:
		if strings.TrimSpace(cfg.Library.Path) == "" {
			return invalid(fmt.Errorf("library.path is required for backend %q", cfg.Library.Backend))
		}
		return nil
	case domain.BackendPostgres:
		if strings.TrimSpace(cfg.Library.DSN) == "" {
			return invalid(errors.New("library.dsn is required for backend \"postgres\""))
		}
		return nil
	default:
		return invalid(fmt.Errorf("unknown library backend %q", cfg.Library.Backend))
	}
}

func invalid(err error) error {
	return &domain.OpError{
		Op:   "workspacefinder.validate",
		Kind: domain.KindInvalidConfig,
		Err:  err,
	}
}

type yamlConfig struct {
	Solidlab struct {
		Library struct {
			Backend string `yaml:"backend"`
			Path    string `yaml:"path"`
			DSN     string `yaml:"dsn"`
		} `yaml:"library"`

		Vehicles struct {
			Region string `yaml:"region"`
		} `yaml:"vehicles"`

		Logging struct {
			Debug *bool `yaml:"debug"`
		} `yaml:"logging"`
	} `yaml:"solidlab"`
}
