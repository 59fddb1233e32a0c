package ports

import (
	"context"

	"github.com/aalvaropc/solidlab/internal/domain"
)

// CollectionStore holds the ordered book collection.
//
// Add appends at the end. Remove deletes every book with the given title and
// is a no-op when none match. List returns a copy in insertion order.
type CollectionStore interface {
	Add(ctx context.Context, book domain.Book) error
	Remove(ctx context.Context, title string) error
	List(ctx context.Context) ([]domain.Book, error)
}
