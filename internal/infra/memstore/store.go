package memstore

import (
	"context"
	"sync"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/ports"
)

// Store keeps the collection in process memory. Nothing survives the process.
type Store struct {
	mu    sync.RWMutex
	books []domain.Book
}

func New() *Store {
	return &Store{books: []domain.Book{}}
}

var _ ports.CollectionStore = (*Store)(nil)

func (s *Store) Add(_ context.Context, book domain.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = append(s.books, book)
	return nil
}

func (s *Store) Remove(_ context.Context, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = domain.WithoutTitle(s.books, title)
	return nil
}

func (s *Store) List(_ context.Context) ([]domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneBooks(s.books), nil
}
