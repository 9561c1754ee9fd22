// Package session keeps interactive game state between button presses.
package session

import (
	"sync"
	"time"

	"casinobot/domain/entities"

	"github.com/google/uuid"
)

// Key identifies one session of one user
type Key struct {
	UserID    int64
	SessionID uuid.UUID
}

// ExpireFunc is called for every session removed by Sweep
type ExpireFunc[T any] func(key Key, value T)

type entry[T any] struct {
	mu       sync.Mutex
	value    T
	lastSeen time.Time
	closed   bool
}

// Registry holds sessions until they finish or sit idle past the timeout.
// Work on one session is serialized; different sessions run independently.
type Registry[T any] struct {
	mu       sync.Mutex
	sessions map[Key]*entry[T]
	timeout  time.Duration
	now      func() time.Time
	onExpire ExpireFunc[T]
}

// NewRegistry creates a registry with the given idle timeout
func NewRegistry[T any](timeout time.Duration) *Registry[T] {
	return &Registry[T]{
		sessions: make(map[Key]*entry[T]),
		timeout:  timeout,
		now:      time.Now,
	}
}

// WithClock replaces the time source
func (r *Registry[T]) WithClock(now func() time.Time) *Registry[T] {
	r.now = now
	return r
}

// OnExpire sets the callback run for swept sessions
func (r *Registry[T]) OnExpire(fn ExpireFunc[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onExpire = fn
}

// Start registers a new session under a fresh id
func (r *Registry[T]) Start(userID int64, value T) Key {
	key := Key{UserID: userID, SessionID: uuid.New()}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[key] = &entry[T]{value: value, lastSeen: r.now()}
	return key
}

// Get returns a copy of the session value without refreshing it
func (r *Registry[T]) Get(key Key) (T, error) {
	var zero T
	e, err := r.lookup(key)
	if err != nil {
		return zero, err
	}

	e.mu.Lock()
	if r.expireLocked(key, e) {
		value := e.value
		e.mu.Unlock()
		r.notifyExpired(key, value)
		return zero, entities.ErrSessionExpired
	}
	defer e.mu.Unlock()
	if e.closed {
		return zero, entities.ErrSessionExpired
	}
	return e.value, nil
}

// With runs fn against the session while holding it.
// A nil error refreshes the idle timer. done=true closes the session.
func (r *Registry[T]) With(key Key, fn func(value *T) (done bool, err error)) error {
	e, err := r.lookup(key)
	if err != nil {
		return err
	}

	e.mu.Lock()
	if r.expireLocked(key, e) {
		value := e.value
		e.mu.Unlock()
		r.notifyExpired(key, value)
		return entities.ErrSessionExpired
	}
	defer e.mu.Unlock()
	if e.closed {
		return entities.ErrSessionExpired
	}

	done, err := fn(&e.value)
	if err == nil {
		e.lastSeen = r.now()
	}
	if done {
		e.closed = true
		r.remove(key, e)
	}
	return err
}

// Close ends a session without running the expiry callback
func (r *Registry[T]) Close(key Key) {
	r.mu.Lock()
	e, ok := r.sessions[key]
	r.mu.Unlock()
	if !ok {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	r.remove(key, e)
}

// Sweep removes idle sessions and returns how many were removed.
// Sessions busy inside With are skipped.
func (r *Registry[T]) Sweep() int {
	r.mu.Lock()
	candidates := make(map[Key]*entry[T], len(r.sessions))
	for key, e := range r.sessions {
		candidates[key] = e
	}
	r.mu.Unlock()

	removed := 0
	for key, e := range candidates {
		if !e.mu.TryLock() {
			continue
		}
		expired := r.expireLocked(key, e)
		value := e.value
		e.mu.Unlock()

		if expired {
			removed++
			r.notifyExpired(key, value)
		}
	}
	return removed
}

// Len returns the number of open sessions
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// lookup finds a registered session
func (r *Registry[T]) lookup(key Key) (*entry[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[key]
	if !ok {
		return nil, entities.ErrSessionExpired
	}
	return e, nil
}

func (r *Registry[T]) remove(key Key, e *entry[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sessions[key] == e {
		delete(r.sessions, key)
	}
}

// expireLocked closes an open session that has sat idle past the timeout. e.mu must be held.
func (r *Registry[T]) expireLocked(key Key, e *entry[T]) bool {
	if e.closed || r.now().Sub(e.lastSeen) < r.timeout {
		return false
	}
	e.closed = true
	r.remove(key, e)
	return true
}

func (r *Registry[T]) notifyExpired(key Key, value T) {
	r.mu.Lock()
	onExpire := r.onExpire
	r.mu.Unlock()
	if onExpire != nil {
		onExpire(key, value)
	}
}
