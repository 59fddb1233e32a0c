package usecase

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute creates a workspace at root and returns its absolute path. Only
// file-backed or memory backends can be scaffolded; postgres needs a DSN
// that has to be written by hand.
func (uc *InitWorkspace) Execute(root string, backend domain.StoreBackend, force bool) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", &domain.OpError{
			Op:   "usecase.init_workspace",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("workspace root is empty"),
		}
	}

	switch backend {
	case "", domain.BackendMemory, domain.BackendYAML, domain.BackendJSON, domain.BackendSQLite:
	default:
		return "", &domain.OpError{
			Op:   "usecase.init_workspace",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("cannot scaffold backend %q", backend),
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", &domain.OpError{Op: "usecase.init_workspace", Kind: domain.KindExecution, Path: root, Err: err}
	}

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: abs, Backend: backend}, force); err != nil {
		return "", err
	}
	return abs, nil
}
