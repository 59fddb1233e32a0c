package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Book is a single library record. It is a plain value: two books with the
// same fields are the same book.
type Book struct {
	Title  string `json:"title" yaml:"title" db:"title"`
	Author string `json:"author" yaml:"author" db:"author"`
	Year   int    `json:"year" yaml:"year" db:"year"`
}

// NewBook builds a Book from its fields.
func NewBook(title, author string, year int) Book {
	return Book{Title: title, Author: author, Year: year}
}

func (b Book) String() string {
	return fmt.Sprintf("Title: %s, Author: %s, Year: %d", b.Title, b.Author, b.Year)
}

// ParseYear converts user input into a year.
// Surrounding whitespace is ignored; anything else that is not an integer
// yields an OpError of kind KindInvalidYear.
func ParseYear(s string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &OpError{
			Op:   "domain.parse_year",
			Kind: KindInvalidYear,
			Err:  fmt.Errorf("%w: %q", ErrInvalidYear, s),
		}
	}
	return y, nil
}

// CloneBooks returns a copy of in that shares no backing array with it.
// A nil input yields an empty, non-nil slice.
func CloneBooks(in []Book) []Book {
	out := make([]Book, len(in))
	copy(out, in)
	return out
}

// WithoutTitle returns a new slice holding every book of in whose title is not
// title. Matching is exact and case-sensitive.
func WithoutTitle(in []Book, title string) []Book {
	out := make([]Book, 0, len(in))
	for _, b := range in {
		if b.Title != title {
			out = append(out, b)
		}
	}
	return out
}
