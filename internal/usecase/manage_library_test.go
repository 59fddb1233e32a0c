package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/infra/memstore"
)

func TestManageLibrary_AddBookForwardsToStore(t *testing.T) {
	store := &fakeStore{}
	uc := NewManageLibrary(store, &recordingReporter{})

	if err := uc.AddBook(context.Background(), "Dune", "Herbert", 1965); err != nil {
		t.Fatalf("AddBook error: %v", err)
	}

	if store.adds != 1 {
		t.Fatalf("expected 1 add, got %d", store.adds)
	}
	if store.books[0] != domain.NewBook("Dune", "Herbert", 1965) {
		t.Fatalf("unexpected stored book: %+v", store.books[0])
	}
}

func TestManageLibrary_RemoveBookForwardsTitle(t *testing.T) {
	store := &fakeStore{}
	uc := NewManageLibrary(store, &recordingReporter{})

	if err := uc.RemoveBook(context.Background(), "Dune"); err != nil {
		t.Fatalf("RemoveBook error: %v", err)
	}
	if !reflect.DeepEqual(store.removes, []string{"Dune"}) {
		t.Fatalf("expected remove(Dune), got %v", store.removes)
	}
}

func TestManageLibrary_ShowBooksEmpty(t *testing.T) {
	rep := &recordingReporter{}
	uc := NewManageLibrary(&fakeStore{}, rep)

	if err := uc.ShowBooks(context.Background()); err != nil {
		t.Fatalf("ShowBooks error: %v", err)
	}
	if !reflect.DeepEqual(rep.lines, []string{"No books in the library."}) {
		t.Fatalf("unexpected lines: %v", rep.lines)
	}
}

func TestManageLibrary_ShowBooksInOrder(t *testing.T) {
	rep := &recordingReporter{}
	uc := NewManageLibrary(memstore.New(), rep)
	ctx := context.Background()

	_ = uc.AddBook(ctx, "Dune", "Herbert", 1965)
	_ = uc.AddBook(ctx, "Emma", "Austen", 1815)

	if err := uc.ShowBooks(ctx); err != nil {
		t.Fatalf("ShowBooks error: %v", err)
	}

	want := []string{
		"Title: Dune, Author: Herbert, Year: 1965",
		"Title: Emma, Author: Austen, Year: 1815",
	}
	if !reflect.DeepEqual(rep.lines, want) {
		t.Fatalf("expected %v, got %v", want, rep.lines)
	}
}

func TestManageLibrary_DuneScenario(t *testing.T) {
	rep := &recordingReporter{}
	uc := NewManageLibrary(memstore.New(), rep)
	ctx := context.Background()

	_ = uc.AddBook(ctx, "Dune", "Herbert", 1965)
	_ = uc.AddBook(ctx, "Dune", "Anderson", 1999)

	books, err := uc.Books(ctx)
	if err != nil {
		t.Fatalf("Books error: %v", err)
	}
	if len(books) != 2 || books[1].Author != "Anderson" {
		t.Fatalf("unexpected books: %v", books)
	}

	_ = uc.RemoveBook(ctx, "Dune")
	_ = uc.ShowBooks(ctx)

	if !reflect.DeepEqual(rep.lines, []string{msgNoBooks}) {
		t.Fatalf("expected empty library after removing Dune, got %v", rep.lines)
	}
}

func TestManageLibrary_PropagatesStoreErrors(t *testing.T) {
	boom := errors.New("boom")
	rep := &recordingReporter{}
	uc := NewManageLibrary(errStore{err: boom}, rep, WithLibraryLogger(nil))
	ctx := context.Background()

	if err := uc.AddBook(ctx, "a", "b", 1); !errors.Is(err, boom) {
		t.Fatalf("AddBook: expected boom, got %v", err)
	}
	if err := uc.RemoveBook(ctx, "a"); !errors.Is(err, boom) {
		t.Fatalf("RemoveBook: expected boom, got %v", err)
	}
	if err := uc.ShowBooks(ctx); !errors.Is(err, boom) {
		t.Fatalf("ShowBooks: expected boom, got %v", err)
	}
	if len(rep.lines) != 0 {
		t.Fatalf("expected nothing reported on failure, got %v", rep.lines)
	}
}

func TestManageLibrary_ImportBooksKeepsOrder(t *testing.T) {
	store := &fakeStore{}
	uc := NewManageLibrary(store, &recordingReporter{})

	in := []domain.Book{
		domain.NewBook("Dune", "Herbert", 1965),
		domain.NewBook("Dune", "B. Herbert", 1999),
	}
	n, err := uc.ImportBooks(context.Background(), in)
	if err != nil {
		t.Fatalf("ImportBooks error: %v", err)
	}
	if n != 2 || !reflect.DeepEqual(store.books, in) {
		t.Fatalf("unexpected import: n=%d books=%v", n, store.books)
	}
}

func TestManageLibrary_ImportBooksStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	uc := NewManageLibrary(errStore{err: boom}, &recordingReporter{})

	n, err := uc.ImportBooks(context.Background(), []domain.Book{domain.NewBook("A", "B", 1)})
	if !errors.Is(err, boom) || n != 0 {
		t.Fatalf("expected boom after 0 books, got n=%d err=%v", n, err)
	}
}
