package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/solidlab/internal/domain"
)

// MapCatalog validates every entry and returns the books in file order.
// Duplicate titles are allowed.
func MapCatalog(path string, yc YAMLCatalog) ([]domain.Book, error) {
	books := make([]domain.Book, 0, len(yc.Books))

	for i, b := range yc.Books {
		fieldPrefix := fmt.Sprintf("books[%d]", i)
		if strings.TrimSpace(b.Title) == "" {
			return nil, invalidField(path, fieldPrefix+".title", "title is required")
		}
		if strings.TrimSpace(b.Author) == "" {
			return nil, invalidField(path, fieldPrefix+".author", "author is required")
		}
		if b.Year == nil {
			return nil, invalidField(path, fieldPrefix+".year", "year is required")
		}

		books = append(books, domain.NewBook(strings.TrimSpace(b.Title), strings.TrimSpace(b.Author), *b.Year))
	}

	return books, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
