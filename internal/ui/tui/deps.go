package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/ports"
)

// LibraryUC is the slice of usecase.ManageLibrary the TUI needs.
type LibraryUC interface {
	Books(ctx context.Context) ([]domain.Book, error)
	AddBook(ctx context.Context, title, author string, year int) error
	RemoveBook(ctx context.Context, title string) error
}

type Deps struct {
	Library   LibraryUC
	USFactory ports.VehicleFactory
	EUFactory ports.VehicleFactory

	WorkspaceRoot string
	Backend       string

	Logger *slog.Logger
	Debug  bool
}
