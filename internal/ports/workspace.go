package ports

import "github.com/aalvaropc/solidlab/internal/domain"

// WorkspaceInitializer lays out a new workspace on disk.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}

// WorkspaceLocator finds the workspace root that encloses startDir.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
