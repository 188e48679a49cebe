// Package clock provides the wall-clock capability used for history expiry.
package clock

import (
	"sync"
	"time"
)

// Clock возвращает текущее время. Внедряется для детерминированных тестов истечения.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the real wall clock.
func System() Clock {
	return systemClock{}
}

// Manual представляет управляемые часы для тестов.
// Время меняется только через Set и Advance.
type Manual struct {
	now time.Time  // текущее значение часов
	mu  sync.Mutex // мьютекс для потокобезопасности
}

// NewManual создает часы, показывающие заданное время.
func NewManual(now time.Time) *Manual {
	return &Manual{now: now}
}

// Now возвращает текущее значение часов без его изменения.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

// Set устанавливает часы в заданное время.
func (m *Manual) Set(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = now
}

// Advance сдвигает часы на d и возвращает новое значение.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = m.now.Add(d)
	return m.now
}
