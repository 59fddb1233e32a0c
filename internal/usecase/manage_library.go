package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/ports"
)

const msgNoBooks = "No books in the library."

// ManageLibrary drives a CollectionStore. It only knows the port, so any
// backend (memory, file, sql, or a test fake) can be injected.
type ManageLibrary struct {
	store    ports.CollectionStore
	reporter ports.Reporter
	log      *slog.Logger
}

type LibraryOption func(*ManageLibrary)

func WithLibraryLogger(l *slog.Logger) LibraryOption {
	return func(uc *ManageLibrary) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewManageLibrary(store ports.CollectionStore, reporter ports.Reporter, opts ...LibraryOption) *ManageLibrary {
	uc := &ManageLibrary{
		store:    store,
		reporter: reporter,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *ManageLibrary) AddBook(ctx context.Context, title, author string, year int) error {
	book := domain.NewBook(title, author, year)
	if err := uc.store.Add(ctx, book); err != nil {
		uc.log.Error("library.add.failed", "title", title, "err", err)
		return err
	}
	uc.log.Info("library.add", "title", title, "author", author, "year", year)
	return nil
}

// RemoveBook removes every book titled title. See ports.CollectionStore.
func (uc *ManageLibrary) RemoveBook(ctx context.Context, title string) error {
	if err := uc.store.Remove(ctx, title); err != nil {
		uc.log.Error("library.remove.failed", "title", title, "err", err)
		return err
	}
	uc.log.Info("library.remove", "title", title)
	return nil
}

// ShowBooks reports every book in order, or a single notice when there are none.
func (uc *ManageLibrary) ShowBooks(ctx context.Context) error {
	books, err := uc.store.List(ctx)
	if err != nil {
		return err
	}

	if len(books) == 0 {
		uc.reporter.Report(msgNoBooks)
		return nil
	}
	for _, b := range books {
		uc.reporter.Report(b.String())
	}
	return nil
}

// Books returns the current collection for callers that render it themselves.
func (uc *ManageLibrary) Books(ctx context.Context) ([]domain.Book, error) {
	return uc.store.List(ctx)
}

// ImportBooks appends books in order and returns how many were stored.
// It stops at the first store error.
func (uc *ManageLibrary) ImportBooks(ctx context.Context, books []domain.Book) (int, error) {
	for i, b := range books {
		if err := uc.store.Add(ctx, b); err != nil {
			uc.log.Error("library.import.failed", "index", i, "title", b.Title, "err", err)
			return i, err
		}
	}
	uc.log.Info("library.import", "count", len(books))
	return len(books), nil
}
