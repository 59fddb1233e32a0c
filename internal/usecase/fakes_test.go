package usecase

import (
	"context"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/ports"
)

// --- fakes shared by the usecase tests ---

// fakeStore is a minimal slice-backed CollectionStore with call counters.
type fakeStore struct {
	books   []domain.Book
	adds    int
	removes []string
}

func (f *fakeStore) Add(_ context.Context, b domain.Book) error {
	f.adds++
	f.books = append(f.books, b)
	return nil
}

func (f *fakeStore) Remove(_ context.Context, title string) error {
	f.removes = append(f.removes, title)
	f.books = domain.WithoutTitle(f.books, title)
	return nil
}

func (f *fakeStore) List(_ context.Context) ([]domain.Book, error) {
	return domain.CloneBooks(f.books), nil
}

// errStore fails every call.
type errStore struct{ err error }

func (e errStore) Add(_ context.Context, _ domain.Book) error     { return e.err }
func (e errStore) Remove(_ context.Context, _ string) error       { return e.err }
func (e errStore) List(_ context.Context) ([]domain.Book, error) { return nil, e.err }

type recordingReporter struct {
	lines []string
}

func (r *recordingReporter) Report(line string) { r.lines = append(r.lines, line) }

var (
	_ ports.CollectionStore = (*fakeStore)(nil)
	_ ports.CollectionStore = errStore{}
	_ ports.Reporter        = (*recordingReporter)(nil)
)

// stubFactory records which constructor was used.
type stubFactory struct {
	spec  domain.SpecTag
	calls []domain.VehicleKind
}

func (s *stubFactory) CreateCar(mk, model string) domain.Vehicle {
	s.calls = append(s.calls, domain.KindCar)
	return domain.NewCar(mk, model, s.spec)
}

func (s *stubFactory) CreateMotorcycle(mk, model string) domain.Vehicle {
	s.calls = append(s.calls, domain.KindMotorcycle)
	return domain.NewMotorcycle(mk, model, s.spec)
}
