package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/iudanet/carcost/internal/client/storage"
)

// RootQuery selects the whole persisted document.
const RootQuery = "$"

// Inspect evaluates a JSONPath expression against the persisted history as
// it is stored, without the expiry filter and without touching the list
// held by the store. A missing key is an empty array. An empty query
// selects the whole document.
func (s *Store) Inspect(ctx context.Context, query string) (any, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		query = RootQuery
	}

	doc, err := s.rawDocument(ctx)
	if err != nil {
		return nil, err
	}

	value, err := jsonpath.Get(query, doc)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidQuery, query, err)
	}

	return value, nil
}

// rawDocument декодирует сохраненный JSON без привязки к models.HistoryEntry
func (s *Store) rawDocument(ctx context.Context) (any, error) {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []any{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	return doc, nil
}
