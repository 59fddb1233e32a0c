package domain

// StoreBackend selects the CollectionStore implementation.
type StoreBackend string

const (
	BackendMemory   StoreBackend = "memory"
	BackendYAML     StoreBackend = "yaml"
	BackendJSON     StoreBackend = "json"
	BackendSQLite   StoreBackend = "sqlite"
	BackendPostgres StoreBackend = "postgres"
)

// Config represents the solidlab configuration loaded from solidlab.yaml
// and the environment.
type Config struct {
	Library  LibraryConfig
	Vehicles VehiclesConfig
	Logging  LoggingConfig
}

type LibraryConfig struct {
	Backend StoreBackend
	// Path is the snapshot file (yaml/json) or the sqlite database file,
	// relative to the workspace root unless absolute.
	Path string
	// DSN is only used by the postgres backend.
	DSN string
}

type VehiclesConfig struct {
	Region string
}

type LoggingConfig struct {
	Debug bool
}

// DefaultConfig provides sane defaults if solidlab.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Library: LibraryConfig{
			Backend: BackendMemory,
			Path:    "data/library.yaml",
		},
		Vehicles: VehiclesConfig{Region: "us"},
	}
}

// DefaultLibraryPath is the data file a fresh workspace uses for backend.
// Postgres and memory have no file; they get the yaml default.
func DefaultLibraryPath(backend StoreBackend) string {
	switch backend {
	case BackendJSON:
		return "data/library.json"
	case BackendSQLite:
		return "data/library.db"
	default:
		return "data/library.yaml"
	}
}

// WorkspaceSpec describes where a workspace should be created and which
// library backend its solidlab.yaml starts with.
type WorkspaceSpec struct {
	Root    string
	Backend StoreBackend
}
