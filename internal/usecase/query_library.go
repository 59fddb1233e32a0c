package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
	jsoniter "github.com/json-iterator/go"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/ports"
)

var queryJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// queryLang is jsonpath plus gval's full operator set, so filters such as
// $[?(@.year < 1900)] parse.
var queryLang = gval.Full(jsonpath.PlaceholderExtension())

// QueryLibrary evaluates JSONPath expressions against the collection,
// viewed as a JSON array of {"title","author","year"} objects.
type QueryLibrary struct {
	store ports.CollectionStore
}

func NewQueryLibrary(store ports.CollectionStore) *QueryLibrary {
	return &QueryLibrary{store: store}
}

// Execute returns the query result as indented JSON.
func (uc *QueryLibrary) Execute(ctx context.Context, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", &domain.OpError{
			Op:   "usecase.query_library",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("empty jsonpath expression"),
		}
	}

	eval, err := queryLang.NewEvaluable(expr)
	if err != nil {
		return "", &domain.OpError{
			Op:   "usecase.query_library",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("jsonpath %q: %w", expr, err),
		}
	}

	books, err := uc.store.List(ctx)
	if err != nil {
		return "", err
	}

	doc, err := toDocument(books)
	if err != nil {
		return "", &domain.OpError{Op: "usecase.query_library", Kind: domain.KindExecution, Err: err}
	}

	val, err := eval(ctx, doc)
	if err != nil {
		return "", &domain.OpError{
			Op:   "usecase.query_library",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("jsonpath %q: %w", expr, err),
		}
	}

	b, err := queryJSON.MarshalIndent(val, "", "  ")
	if err != nil {
		return "", &domain.OpError{Op: "usecase.query_library", Kind: domain.KindExecution, Err: err}
	}
	return string(b), nil
}

// toDocument round-trips books through JSON so jsonpath sees plain
// []any / map[string]any values.
func toDocument(books []domain.Book) (any, error) {
	b, err := queryJSON.Marshal(books)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := queryJSON.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
