// Package history keeps the recent calculations: at most five entries,
// newest first, each living for 24 hours.
//
// The list is persisted as one JSON array under a single key. An empty
// list is never written; the key is removed instead.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/carcost/internal/client/storage"
	"github.com/iudanet/carcost/internal/clock"
	"github.com/iudanet/carcost/internal/models"
	"github.com/iudanet/carcost/internal/validation"
)

// Store owns the history list and its persisted copy.
// Not safe for concurrent mutation: one actor drives it.
type Store struct {
	kv              storage.KV
	clock           clock.Clock
	observer        Observer
	logger          *slog.Logger
	formatTimestamp func(time.Time) string
	key             string
	entries         []models.HistoryEntry
	limit           int
	ttl             time.Duration
}

// NewStore creates an empty store persisting through kv.
// Call Load to pick up previously saved history.
func NewStore(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:              kv,
		clock:           clock.System(),
		logger:          slog.Default(),
		formatTimestamp: defaultTimestamp,
		key:             DefaultKey,
		limit:           DefaultLimit,
		ttl:             DefaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Entries returns a copy of the current list, newest first.
func (s *Store) Entries() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Observe replaces the observer notified after each change. nil detaches it.
func (s *Store) Observe(o Observer) {
	s.observer = o
}

// Limit returns the maximum number of kept entries.
func (s *Store) Limit() int {
	return s.limit
}

// Save prepends a new entry built from the calculation, drops expired
// entries, trims the list to the limit and persists it.
//
// Returns ErrEmptyName for a blank name (nothing is written). When the
// write fails the error wraps ErrWriteFailed and the list is left as it
// was before the call.
func (s *Store) Save(ctx context.Context, name string, in models.Inputs, res models.Result) (models.HistoryEntry, error) {
	carName, err := validation.NormalizeCarName(name)
	if err != nil {
		return models.HistoryEntry{}, err
	}

	now := s.clock.Now()
	nowMs := now.UnixMilli()

	entry := models.HistoryEntry{
		ID:        s.nextID(nowMs),
		CarName:   carName,
		SavedAt:   nowMs,
		Timestamp: s.formatTimestamp(now),
		TotalDZD:  res.TotalLocal,
		Centimes:  res.TotalLocal,
		TotalEUR:  res.TotalForeign,
		Inputs:    models.NewInputsSnapshot(in),
		Breakdown: models.NewBreakdownSnapshot(res),
	}

	// Новый список строим отдельно: s.entries меняется только после успешной записи
	next := make([]models.HistoryEntry, 0, len(s.entries)+1)
	next = append(next, entry)
	next = append(next, s.entries...)
	next = s.capped(s.unexpired(next, nowMs))

	if err := s.persist(ctx, next); err != nil {
		s.logger.Warn("failed to save calculation", "car", carName, "error", err)
		return models.HistoryEntry{}, err
	}

	s.entries = next
	s.logger.Debug("calculation saved", "id", entry.ID, "car", carName, "entries", len(next))
	s.notify()

	return entry, nil
}

// Load replaces the list with the persisted one, dropping expired entries.
// It never fails: a missing key is an empty history, unreadable or
// malformed data is logged and treated as empty. When entries were dropped
// the cleaned list is written back (or the key removed if nothing is left).
func (s *Store) Load(ctx context.Context) []models.HistoryEntry {
	loaded, err := s.read(ctx)
	if err != nil {
		s.logger.Warn("history discarded", "error", err)
		loaded = nil
	}

	nowMs := s.clock.Now().UnixMilli()
	kept := s.capped(s.unexpired(loaded, nowMs))

	if removed := len(loaded) - len(kept); removed > 0 {
		s.logger.Info("expired history entries removed", "removed", removed, "kept", len(kept))
		if err := s.persist(ctx, kept); err != nil {
			// Просроченные записи будут отфильтрованы при следующей загрузке
			s.logger.Warn("failed to persist cleaned history", "error", err)
		}
	}

	s.entries = kept
	s.notify()

	return s.Entries()
}

// Remove deletes the entry with the given id and persists the result.
// A missing id is a no-op. On write failure the error wraps ErrWriteFailed
// and the entry stays.
func (s *Store) Remove(ctx context.Context, id int64) ([]models.HistoryEntry, error) {
	idx := -1
	for i, e := range s.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s.Entries(), nil
	}

	next := make([]models.HistoryEntry, 0, len(s.entries)-1)
	next = append(next, s.entries[:idx]...)
	next = append(next, s.entries[idx+1:]...)

	if err := s.persist(ctx, next); err != nil {
		s.logger.Warn("failed to delete calculation", "id", id, "error", err)
		return s.Entries(), err
	}

	s.entries = next
	s.notify()

	return s.Entries(), nil
}

// Clear empties the history and removes the persisted key.
// On failure the list is kept and the error wraps ErrWriteFailed.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, s.key); err != nil {
		s.logger.Warn("failed to clear history", "error", err)
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	s.entries = nil
	s.notify()

	return nil
}

// read загружает сохраненный список; отсутствие ключа не ошибка
func (s *Store) read(ctx context.Context) ([]models.HistoryEntry, error) {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	var entries []models.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	return entries, nil
}

// persist записывает список; пустой список удаляет ключ
func (s *Store) persist(ctx context.Context, entries []models.HistoryEntry) error {
	if len(entries) == 0 {
		if err := s.kv.Remove(ctx, s.key); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
		return nil
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal history: %w", ErrWriteFailed, err)
	}

	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return nil
}

// unexpired оставляет записи моложе ttl, порядок сохраняется
func (s *Store) unexpired(entries []models.HistoryEntry, nowMs int64) []models.HistoryEntry {
	ttlMs := s.ttl.Milliseconds()
	kept := make([]models.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if nowMs-e.SavedAt < ttlMs {
			kept = append(kept, e)
		}
	}
	return kept
}

// capped отбрасывает хвост (самые старые по порядку вставки)
func (s *Store) capped(entries []models.HistoryEntry) []models.HistoryEntry {
	if len(entries) > s.limit {
		return entries[:s.limit]
	}
	return entries
}

// nextID возвращает время создания, сдвинутое вперед при совпадении с существующей записью
func (s *Store) nextID(nowMs int64) int64 {
	id := nowMs
	for _, e := range s.entries {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	return id
}

func (s *Store) notify() {
	if s.observer != nil {
		s.observer.HistoryChanged(s.Entries())
	}
}
