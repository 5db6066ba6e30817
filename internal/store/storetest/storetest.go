// Package storetest holds the behaviour every store backend must share.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-crafting/internal/store"
)

// Run exercises s through Load, Save and Clear. s must start empty.
func Run(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Load(ctx, "inventory")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("save and load", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "inventory", []byte(`[{"name":"Lemn"}]`)))
		got, err := s.Load(ctx, "inventory")
		require.NoError(t, err)
		assert.Equal(t, `[{"name":"Lemn"}]`, string(got))
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "crafted", []byte(`[]`)))
		require.NoError(t, s.Save(ctx, "crafted", []byte(`[{"name":"Topor"}]`)))
		got, err := s.Load(ctx, "crafted")
		require.NoError(t, err)
		assert.Equal(t, `[{"name":"Topor"}]`, string(got))
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, s.Clear(ctx))
		for _, key := range []string{"inventory", "crafted"} {
			_, err := s.Load(ctx, key)
			assert.ErrorIs(t, err, store.ErrNotFound, key)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.Error(t, s.Save(cctx, "inventory", []byte(`[]`)))
	})
}
