package filestore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/ports"
)

// Store keeps the collection in memory and mirrors it to a snapshot file
// after every change. The file format follows the extension (.yaml/.yml/.json).
type Store struct {
	mu    sync.Mutex
	path  string
	codec codec
	books []domain.Book
	log   *slog.Logger
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Open loads the snapshot at path. A missing file is an empty collection;
// the file is created on the first change.
func Open(path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &domain.OpError{
			Op:   "filestore.open",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("snapshot path is required"),
		}
	}

	c, err := codecFor(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "filestore.open",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	s := &Store{
		path:  filepath.Clean(path),
		codec: c,
		books: []domain.Book{},
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

var _ ports.CollectionStore = (*Store)(nil)

// Path returns the snapshot location.
func (s *Store) Path() string { return s.path }

func (s *Store) Add(ctx context.Context, book domain.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(domain.CloneBooks(s.books), book)
	if err := s.save(next); err != nil {
		return err
	}
	s.books = next
	s.log.Debug("filestore.add", "path", s.path, "title", book.Title, "count", len(next))
	return nil
}

func (s *Store) Remove(ctx context.Context, title string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := domain.WithoutTitle(s.books, title)
	if len(next) == len(s.books) {
		return nil
	}
	if err := s.save(next); err != nil {
		return err
	}
	s.log.Debug("filestore.remove", "path", s.path, "title", title, "removed", len(s.books)-len(next))
	s.books = next
	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneBooks(s.books), nil
}

func (s *Store) load() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return &domain.OpError{
			Op:   "filestore.load",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return nil
	}

	var snap snapshot
	if err := s.codec.decode(b, &snap); err != nil {
		return &domain.OpError{
			Op:   "filestore.load",
			Kind: domain.KindInvalidConfig,
			Path: s.path,
			Err:  err,
		}
	}
	if snap.Books != nil {
		s.books = snap.Books
	}
	return nil
}

func (s *Store) save(books []domain.Book) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "filestore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	b, err := s.codec.encode(snapshot{Version: snapshotVersion, Books: books})
	if err != nil {
		return &domain.OpError{
			Op:   "filestore.marshal",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{
			Op:   "filestore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "filestore.rename",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}
	return nil
}
