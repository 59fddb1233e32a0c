package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/aalvaropc/solidlab/internal/domain"
)

func seededStore() *fakeStore {
	return &fakeStore{books: []domain.Book{
		domain.NewBook("Dune", "Herbert", 1965),
		domain.NewBook("Emma", "Austen", 1815),
	}}
}

func TestQueryLibrary_Titles(t *testing.T) {
	uc := NewQueryLibrary(seededStore())

	out, err := uc.Execute(context.Background(), "$[*].title")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	want := "[\n  \"Dune\",\n  \"Emma\"\n]"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestQueryLibrary_SingleValue(t *testing.T) {
	uc := NewQueryLibrary(seededStore())

	out, err := uc.Execute(context.Background(), "$[1].year")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out != "1815" {
		t.Fatalf("expected 1815, got %q", out)
	}
}

func TestQueryLibrary_EmptyExpression(t *testing.T) {
	uc := NewQueryLibrary(seededStore())

	_, err := uc.Execute(context.Background(), "   ")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestQueryLibrary_UnknownKey(t *testing.T) {
	uc := NewQueryLibrary(seededStore())

	_, err := uc.Execute(context.Background(), "$[0].isbn")
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if !strings.Contains(err.Error(), "isbn") {
		t.Fatalf("expected expression in error, got %v", err)
	}
}

func TestQueryLibrary_FilterExpression(t *testing.T) {
	uc := NewQueryLibrary(seededStore())

	out, err := uc.Execute(context.Background(), "$[?(@.year < 1900)].title")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out != "[\n  \"Emma\"\n]" {
		t.Fatalf("expected only Emma, got %q", out)
	}

	out, err = uc.Execute(context.Background(), `$[?(@.author == "Herbert")].year`)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out != "[\n  1965\n]" {
		t.Fatalf("expected [1965], got %q", out)
	}
}
