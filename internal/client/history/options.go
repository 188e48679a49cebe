package history

import (
	"log/slog"
	"time"

	"github.com/iudanet/carcost/internal/clock"
	"github.com/iudanet/carcost/internal/models"
)

const (
	// DefaultKey ключ, под которым хранится сериализованная история
	DefaultKey = "calculationHistory"
	// DefaultLimit максимальное количество записей
	DefaultLimit = 5
	// DefaultTTL время жизни записи
	DefaultTTL = 24 * time.Hour
)

// Observer receives the current history after every change.
type Observer interface {
	HistoryChanged(entries []models.HistoryEntry)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(entries []models.HistoryEntry)

// HistoryChanged calls f(entries).
func (f ObserverFunc) HistoryChanged(entries []models.HistoryEntry) { f(entries) }

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for ids and expiry.
func WithClock(c clock.Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithKey sets the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLimit sets the maximum number of kept entries. Non-positive values are ignored.
func WithLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithTTL sets the entry lifetime. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithTimestampFormat sets how the display timestamp of new entries is rendered.
func WithTimestampFormat(f func(time.Time) string) Option {
	return func(s *Store) {
		if f != nil {
			s.formatTimestamp = f
		}
	}
}

// WithObserver registers the display collaborator notified after every change.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.observer = o
	}
}

// defaultTimestamp формат fr-DZ: 17/02/2026 14:05:09
func defaultTimestamp(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}
