package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/ports"
)

// ConfigFileName marks a workspace root. The .yml spelling is accepted too.
const ConfigFileName = "solidlab.yaml"

var markers = []string{ConfigFileName, "solidlab.yml"}

// Finder walks from a start directory towards the filesystem root and stops
// at the first directory holding a workspace file.
type Finder struct {
	// Stop, when set, is the last directory inspected.
	Stop string
}

func NewFinder() *Finder {
	return &Finder{}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("start directory is empty"),
		}
	}

	dir, err := startOf(startDir)
	if err != nil {
		return "", &domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindExecution, Path: startDir, Err: err}
	}

	stop := ""
	if f.Stop != "" {
		stop, _ = filepath.Abs(f.Stop)
	}

	for {
		if ConfigPath(dir) != "" {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir || dir == stop {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: startDir,
				Err:  domain.ErrNotFound,
			}
		}
		dir = parent
	}
}

// ConfigPath returns the workspace file inside root, or "" when there is none.
func ConfigPath(root string) string {
	for _, name := range markers {
		p := filepath.Join(root, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// startOf resolves dir to an absolute directory; a file path yields its parent.
func startOf(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return filepath.Clean(abs), nil
}
