package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/solidlab/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return root
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	// Partial config (no library/vehicles)
	root := writeConfig(t, "solidlab:\n  logging:\n    debug: true\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if !cfg.Logging.Debug {
		t.Fatalf("expected debug=true")
	}
	if cfg.Library.Backend != domain.BackendMemory {
		t.Fatalf("expected backend=memory, got=%s", cfg.Library.Backend)
	}
	if cfg.Library.Path != "data/library.yaml" {
		t.Fatalf("expected default path, got=%s", cfg.Library.Path)
	}
	if cfg.Vehicles.Region != "us" {
		t.Fatalf("expected region=us, got=%s", cfg.Vehicles.Region)
	}
}

func TestLoadConfig_FullFile(t *testing.T) {
	root := writeConfig(t, `
solidlab:
  library:
    backend: SQLite
    path: data/library.db
  vehicles:
    region: eu
`)

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Library.Backend != domain.BackendSQLite {
		t.Fatalf("expected backend=sqlite, got=%s", cfg.Library.Backend)
	}
	if cfg.Library.Path != "data/library.db" {
		t.Fatalf("expected path=data/library.db, got=%s", cfg.Library.Path)
	}
	if cfg.Vehicles.Region != "eu" {
		t.Fatalf("expected region=eu, got=%s", cfg.Vehicles.Region)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	root := writeConfig(t, "solidlab: [\n")

	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadConfig_DoesNotValidate(t *testing.T) {
	root := writeConfig(t, "solidlab:\n  library:\n    backend: postgres\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig should only parse, got %v", err)
	}
	if cfg.Library.Backend != domain.BackendPostgres {
		t.Fatalf("expected backend=postgres, got=%s", cfg.Library.Backend)
	}
	if !domain.IsKind(Validate(cfg), domain.KindInvalidConfig) {
		t.Fatalf("expected Validate to reject postgres without a dsn")
	}
}

func TestApplyEnv_Overrides(t *testing.T) {
	cfg, err := ApplyEnv(domain.DefaultConfig(), map[string]string{
		"SOLIDLAB_BACKEND": "json",
		"SOLIDLAB_PATH":    "books.json",
		"SOLIDLAB_REGION":  "eu",
		"SOLIDLAB_DEBUG":   "true",
		"PATH":             "/usr/bin",
	})
	if err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}

	if cfg.Library.Backend != domain.BackendJSON {
		t.Fatalf("expected backend=json, got=%s", cfg.Library.Backend)
	}
	if cfg.Library.Path != "books.json" {
		t.Fatalf("expected path=books.json, got=%s", cfg.Library.Path)
	}
	if cfg.Vehicles.Region != "eu" || !cfg.Logging.Debug {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestApplyEnv_EmptyEnvironmentKeepsConfig(t *testing.T) {
	in := domain.DefaultConfig()
	cfg, err := ApplyEnv(in, map[string]string{})
	if err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}
	if cfg != in {
		t.Fatalf("expected config unchanged, got %+v", cfg)
	}
}

func TestApplyEnv_DebugFalseOverridesFile(t *testing.T) {
	in := domain.DefaultConfig()
	in.Logging.Debug = true

	cfg, err := ApplyEnv(in, map[string]string{"SOLIDLAB_DEBUG": "false"})
	if err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}
	if cfg.Logging.Debug {
		t.Fatalf("expected SOLIDLAB_DEBUG=false to turn debug off")
	}

	cfg, err = ApplyEnv(in, map[string]string{})
	if err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}
	if !cfg.Logging.Debug {
		t.Fatalf("expected unset SOLIDLAB_DEBUG to keep debug on")
	}
}

func TestApplyEnv_SuppliesDSNForPostgres(t *testing.T) {
	in := domain.DefaultConfig()
	in.Library.Backend = domain.BackendPostgres

	cfg, err := ApplyEnv(in, map[string]string{"SOLIDLAB_DSN": "postgres://u@h/db"})
	if err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}
	if cfg.Library.DSN != "postgres://u@h/db" {
		t.Fatalf("expected dsn from env, got %q", cfg.Library.DSN)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestApplyEnv_BadBool(t *testing.T) {
	_, err := ApplyEnv(domain.DefaultConfig(), map[string]string{"SOLIDLAB_DEBUG": "maybe"})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		lib  domain.LibraryConfig
		ok   bool
	}{
		{"memory", domain.LibraryConfig{Backend: domain.BackendMemory}, true},
		{"yaml with path", domain.LibraryConfig{Backend: domain.BackendYAML, Path: "a.yaml"}, true},
		{"json without path", domain.LibraryConfig{Backend: domain.BackendJSON}, false},
		{"postgres without dsn", domain.LibraryConfig{Backend: domain.BackendPostgres}, false},
		{"postgres with dsn", domain.LibraryConfig{Backend: domain.BackendPostgres, DSN: "postgres://x"}, true},
		{"unknown", domain.LibraryConfig{Backend: "redis"}, false},
	}
	for _, c := range cases {
		cfg := domain.DefaultConfig()
		cfg.Library = c.lib
		err := Validate(cfg)
		if (err == nil) != c.ok {
			t.Errorf("%s: Validate() err=%v, want ok=%v", c.name, err, c.ok)
		}
	}
}
