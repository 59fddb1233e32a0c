// Package storetest holds the behaviour every ports.CollectionStore must
// share, so each backend can run the same checks against itself.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/ports"
)

// Factory returns a fresh, empty store for a single subtest.
type Factory func(t *testing.T) ports.CollectionStore

// Run executes the conformance suite against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("empty list", func(t *testing.T) {
		s := newStore(t)
		books, err := s.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("insertion order", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		want := []domain.Book{
			domain.NewBook("Emma", "Austen", 1815),
			domain.NewBook("Dune", "Herbert", 1965),
			domain.NewBook("Beloved", "Morrison", 1987),
			domain.NewBook("Dune", "Anderson", 1999),
		}
		for _, b := range want {
			require.NoError(t, s.Add(ctx, b))
		}

		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("remove deletes every match", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Add(ctx, domain.NewBook("Dune", "Herbert", 1965)))
		require.NoError(t, s.Add(ctx, domain.NewBook("Emma", "Austen", 1815)))
		require.NoError(t, s.Add(ctx, domain.NewBook("Dune", "Anderson", 1999)))

		require.NoError(t, s.Remove(ctx, "Dune"))

		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Book{domain.NewBook("Emma", "Austen", 1815)}, got)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Add(ctx, domain.NewBook("Dune", "Herbert", 1965)))
		require.NoError(t, s.Add(ctx, domain.NewBook("Emma", "Austen", 1815)))

		require.NoError(t, s.Remove(ctx, "Dune"))
		once, err := s.List(ctx)
		require.NoError(t, err)

		require.NoError(t, s.Remove(ctx, "Dune"))
		twice, err := s.List(ctx)
		require.NoError(t, err)

		assert.Equal(t, once, twice)
	})

	t.Run("remove without match is a no-op", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Add(ctx, domain.NewBook("Dune", "Herbert", 1965)))

		require.NoError(t, s.Remove(ctx, "dune"))
		require.NoError(t, s.Remove(ctx, "Missing"))

		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Book{domain.NewBook("Dune", "Herbert", 1965)}, got)
	})

	t.Run("remove on empty store", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Remove(context.Background(), "Dune"))
	})

	t.Run("list returns a copy", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Add(ctx, domain.NewBook("Dune", "Herbert", 1965)))

		got, err := s.List(ctx)
		require.NoError(t, err)
		got[0].Title = "tampered"
		_ = append(got, domain.NewBook("x", "y", 1))

		again, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Book{domain.NewBook("Dune", "Herbert", 1965)}, again)
	})

	t.Run("dune round trip", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Add(ctx, domain.NewBook("Dune", "Herbert", 1965)))
		require.NoError(t, s.Add(ctx, domain.NewBook("Dune", "Anderson", 1999)))

		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Book{
			domain.NewBook("Dune", "Herbert", 1965),
			domain.NewBook("Dune", "Anderson", 1999),
		}, got)

		require.NoError(t, s.Remove(ctx, "Dune"))
		got, err = s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
