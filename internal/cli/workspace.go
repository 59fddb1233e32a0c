package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/infra/filestore"
	"github.com/aalvaropc/solidlab/internal/infra/memstore"
	"github.com/aalvaropc/solidlab/internal/infra/regionfactory"
	"github.com/aalvaropc/solidlab/internal/infra/sqlstore"
	"github.com/aalvaropc/solidlab/internal/infra/workspacefinder"
	"github.com/aalvaropc/solidlab/internal/ports"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	debug     bool
	workspace string
	store     string
	path      string
}

type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config

	store   ports.CollectionStore
	closer  io.Closer
	regions *regionfactory.Registry
}

func (w *workspaceCtx) Close() error {
	if w == nil || w.closer == nil {
		return nil
	}
	return w.closer.Close()
}

// layerConfig finds the workspace and layers file < env < flags without
// validating. Outside a workspace the defaults apply and root is the working
// directory.
func layerConfig(flags *globalFlags, environ map[string]string) (root string, found bool, cfg domain.Config, err error) {
	root, found, err = resolveWorkspaceRoot(flags.workspace)
	if err != nil {
		return "", false, cfg, err
	}

	cfg = domain.DefaultConfig()
	if found {
		cfg, err = workspacefinder.LoadConfig(root)
		if err != nil && !domain.IsKind(err, domain.KindNotFound) {
			return "", false, cfg, err
		}
	}

	cfg, err = workspacefinder.ApplyEnv(cfg, environ)
	if err != nil {
		return "", false, cfg, err
	}

	if s := strings.TrimSpace(flags.store); s != "" {
		prev := cfg.Library.Backend
		cfg.Library.Backend = domain.StoreBackend(strings.ToLower(s))
		// Follow the backend's default file unless a path was chosen explicitly.
		if cfg.Library.Path == domain.DefaultLibraryPath(prev) {
			cfg.Library.Path = domain.DefaultLibraryPath(cfg.Library.Backend)
		}
	}
	if p := strings.TrimSpace(flags.path); p != "" {
		cfg.Library.Path = p
	}
	if flags.debug {
		cfg.Logging.Debug = true
	}

	return root, found, cfg, nil
}

// resolveConfig is layerConfig plus validation of the final result.
func resolveConfig(flags *globalFlags, environ map[string]string) (root string, found bool, cfg domain.Config, err error) {
	root, found, cfg, err = layerConfig(flags, environ)
	if err != nil {
		return "", false, cfg, err
	}
	if err := workspacefinder.Validate(cfg); err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) && found {
			oe.Path = workspacefinder.ConfigPath(root)
		}
		return "", false, cfg, err
	}
	return root, found, cfg, nil
}

// resolveLogging returns what logger setup needs. Config problems are
// ignored here; commands that open a store report them.
func resolveLogging(flags *globalFlags, environ map[string]string) (root string, found, debug bool, err error) {
	root, found, err = resolveWorkspaceRoot(flags.workspace)
	if err != nil {
		return "", false, false, err
	}
	if flags.debug {
		return root, found, true, nil
	}

	cfg := domain.DefaultConfig()
	if found {
		if loaded, lerr := workspacefinder.LoadConfig(root); lerr == nil {
			cfg = loaded
		}
	}
	if withEnv, eerr := workspacefinder.ApplyEnv(cfg, environ); eerr == nil {
		cfg = withEnv
	}
	return root, found, cfg.Logging.Debug, nil
}

func loadWorkspace(ctx context.Context, flags *globalFlags, log *slog.Logger) (*workspaceCtx, error) {
	root, found, cfg, err := resolveConfig(flags, nil)
	if err != nil {
		return nil, err
	}

	store, closer, err := openStore(ctx, root, cfg.Library, log)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:    root,
		found:   found,
		cfg:     cfg,
		store:   store,
		closer:  closer,
		regions: regionfactory.NewRegistry(),
	}, nil
}

func openStore(ctx context.Context, root string, lib domain.LibraryConfig, log *slog.Logger) (ports.CollectionStore, io.Closer, error) {
	switch lib.Backend {
	case domain.BackendMemory:
		return memstore.New(), nil, nil

	case domain.BackendYAML, domain.BackendJSON:
		path := resolvePath(root, lib.Path)
		if err := checkSnapshotExt(lib.Backend, path); err != nil {
			return nil, nil, err
		}
		s, err := filestore.Open(path, filestore.WithLogger(log))
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil

	case domain.BackendSQLite:
		path := resolvePath(root, lib.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, &domain.OpError{Op: "cli.openstore", Kind: domain.KindExecution, Path: path, Err: err}
		}
		s, err := sqlstore.Open(ctx, sqlstore.SQLite, path, sqlstore.WithLogger(log))
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	case domain.BackendPostgres:
		s, err := sqlstore.Open(ctx, sqlstore.Postgres, lib.DSN, sqlstore.WithLogger(log))
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	default:
		return nil, nil, &domain.OpError{
			Op:   "cli.openstore",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown library backend %q", lib.Backend),
		}
	}
}

// checkSnapshotExt keeps --store json from silently writing YAML and vice versa.
func checkSnapshotExt(backend domain.StoreBackend, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	ok := (backend == domain.BackendYAML && (ext == ".yaml" || ext == ".yml")) ||
		(backend == domain.BackendJSON && ext == ".json")
	if ok {
		return nil
	}
	return &domain.OpError{
		Op:   "cli.openstore",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("backend %q does not match file extension %q", backend, ext),
	}
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

func resolveWorkspaceRoot(workspaceFlag string) (string, bool, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, true, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return wd, false, nil
		}
		return "", false, err
	}
	return root, true, nil
}
