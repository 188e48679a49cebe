package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Inspect(t *testing.T) {
	s, _, _ := newTestStore(t)
	saveNamed(t, s, "A")
	saveNamed(t, s, "B")

	tests := []struct {
		name  string
		query string
		check func(t *testing.T, got any)
	}{
		{
			name:  "empty query selects the document",
			query: "",
			check: func(t *testing.T, got any) {
				list, ok := got.([]any)
				require.True(t, ok)
				assert.Len(t, list, 2)
			},
		},
		{
			name:  "single field",
			query: "$[0].carName",
			check: func(t *testing.T, got any) {
				assert.Equal(t, "B", got)
			},
		},
		{
			name:  "wildcard",
			query: " $[*].carName ",
			check: func(t *testing.T, got any) {
				assert.ElementsMatch(t, []any{"A", "B"}, got)
			},
		},
		{
			name:  "nested inputs",
			query: "$[1].inputs.taxPct",
			check: func(t *testing.T, got any) {
				assert.InDelta(t, 20, got, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Inspect(context.Background(), tt.query)
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestStore_Inspect_Missing(t *testing.T) {
	s, _, _ := newTestStore(t)

	got, err := s.Inspect(context.Background(), RootQuery)
	require.NoError(t, err)
	assert.Equal(t, []any{}, got)
}

func TestStore_Inspect_DoesNotExpire(t *testing.T) {
	s, kv, c := newTestStore(t)
	saveNamed(t, s, "Old")
	c.Advance(25 * time.Hour)

	got, err := s.Inspect(context.Background(), "$[0].carName")
	require.NoError(t, err)
	assert.Equal(t, "Old", got)
	// Просроченная запись остается в хранилище
	assert.True(t, kv.Has(DefaultKey))
}

func TestStore_Inspect_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed document", func(t *testing.T) {
		s, kv, _ := newTestStore(t)
		require.NoError(t, kv.Set(ctx, DefaultKey, []byte("{not json")))

		_, err := s.Inspect(ctx, RootQuery)
		assert.ErrorIs(t, err, ErrReadFailed)
	})

	t.Run("invalid query", func(t *testing.T) {
		s, _, _ := newTestStore(t)
		saveNamed(t, s, "A")

		_, err := s.Inspect(ctx, "$[")
		assert.ErrorIs(t, err, ErrInvalidQuery)
	})
}
