// Package sqlstore is a ports.CollectionStore backed by a SQL database.
// Queries are built with goqu and scanned with sqlx; sqlite (modernc) and
// postgres (pgx) are supported.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/ports"
)

// Flavor identifies the database engine.
type Flavor string

const (
	SQLite   Flavor = "sqlite"
	Postgres Flavor = "postgres"
)

const (
	tableBooks = "books"
	colSeq     = "seq"
	colTitle   = "title"
	colAuthor  = "author"
	colYear    = "year"
)

type flavorSpec struct {
	driver  string
	dialect string
	schema  string
}

var flavors = map[Flavor]flavorSpec{
	SQLite: {
		driver:  "sqlite",
		dialect: "sqlite3",
		schema: `CREATE TABLE IF NOT EXISTS books (
	seq    INTEGER PRIMARY KEY AUTOINCREMENT,
	title  TEXT    NOT NULL,
	author TEXT    NOT NULL,
	year   INTEGER NOT NULL
)`,
	},
	Postgres: {
		driver:  "pgx",
		dialect: "postgres",
		schema: `CREATE TABLE IF NOT EXISTS books (
	seq    BIGSERIAL PRIMARY KEY,
	title  TEXT      NOT NULL,
	author TEXT      NOT NULL,
	year   INTEGER   NOT NULL
)`,
	},
}

const indexTitle = `CREATE INDEX IF NOT EXISTS books_title_idx ON books (title)`

type Store struct {
	db      *sqlx.DB
	builder goqu.DialectWrapper
	flavor  Flavor
	log     *slog.Logger
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Open connects to the database and creates the books table if needed.
func Open(ctx context.Context, flavor Flavor, dsn string, opts ...Option) (*Store, error) {
	spec, ok := flavors[flavor]
	if !ok {
		return nil, &domain.OpError{
			Op:   "sqlstore.open",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unsupported sql flavor %q", flavor),
		}
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, &domain.OpError{
			Op:   "sqlstore.open",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("dsn is required"),
		}
	}

	db, err := sqlx.Open(spec.driver, dsn)
	if err != nil {
		return nil, &domain.OpError{Op: "sqlstore.open", Kind: domain.KindExecution, Err: err}
	}
	if flavor == SQLite {
		// sqlite allows a single writer.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &domain.OpError{Op: "sqlstore.ping", Kind: domain.KindExecution, Err: err}
	}

	s := &Store{
		db:      db,
		builder: goqu.Dialect(spec.dialect),
		flavor:  flavor,
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, stmt := range []string{spec.schema, indexTitle} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, &domain.OpError{Op: "sqlstore.migrate", Kind: domain.KindExecution, Err: err}
		}
	}

	return s, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ ports.CollectionStore = (*Store)(nil)

func (s *Store) Add(ctx context.Context, book domain.Book) error {
	query, args, err := s.builder.
		Insert(tableBooks).
		Rows(goqu.Record{
			colTitle:  book.Title,
			colAuthor: book.Author,
			colYear:   book.Year,
		}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return &domain.OpError{Op: "sqlstore.add", Kind: domain.KindExecution, Err: err}
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return &domain.OpError{Op: "sqlstore.add", Kind: domain.KindExecution, Err: err}
	}
	s.log.Debug("sqlstore.add", "flavor", s.flavor, "title", book.Title)
	return nil
}

func (s *Store) Remove(ctx context.Context, title string) error {
	query, args, err := s.builder.
		Delete(tableBooks).
		Where(goqu.C(colTitle).Eq(title)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return &domain.OpError{Op: "sqlstore.remove", Kind: domain.KindExecution, Err: err}
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return &domain.OpError{Op: "sqlstore.remove", Kind: domain.KindExecution, Err: err}
	}
	if n, rerr := res.RowsAffected(); rerr == nil {
		s.log.Debug("sqlstore.remove", "flavor", s.flavor, "title", title, "removed", n)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.Book, error) {
	query, args, err := s.builder.
		From(tableBooks).
		Select(colTitle, colAuthor, colYear).
		Order(goqu.I(colSeq).Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, &domain.OpError{Op: "sqlstore.list", Kind: domain.KindExecution, Err: err}
	}

	books := []domain.Book{}
	if err := s.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, &domain.OpError{Op: "sqlstore.list", Kind: domain.KindExecution, Err: err}
	}
	return books, nil
}
