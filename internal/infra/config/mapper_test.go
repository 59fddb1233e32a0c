package config

import (
	"strings"
	"testing"
)

func TestMapCatalogRequiresYear(t *testing.T) {
	cat := YAMLCatalog{
		Books: []YAMLBook{
			{Title: "Dune", Author: "Frank Herbert"},
		},
	}

	_, err := MapCatalog("catalog.yaml", cat)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "books[0].year") {
		t.Fatalf("expected year field in error, got %v", err)
	}
}

func TestMapCatalogTrimsAndKeepsZeroYear(t *testing.T) {
	year := 0
	cat := YAMLCatalog{
		Books: []YAMLBook{
			{Title: "  The Odyssey ", Author: " Homer", Year: &year},
		},
	}

	books, err := MapCatalog("catalog.yaml", cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if books[0].Title != "The Odyssey" || books[0].Author != "Homer" || books[0].Year != 0 {
		t.Fatalf("unexpected book: %+v", books[0])
	}
}

func TestMapCatalogEmpty(t *testing.T) {
	books, err := MapCatalog("catalog.yaml", YAMLCatalog{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if books == nil || len(books) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", books)
	}
}
