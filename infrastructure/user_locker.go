package infrastructure

import "sync"

// UserLocker serializes work per Discord user. Locks are dropped once nobody holds or waits on them.
type UserLocker struct {
	mu    sync.Mutex
	locks map[int64]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

// NewUserLocker creates an empty locker
func NewUserLocker() *UserLocker {
	return &UserLocker{locks: make(map[int64]*userLock)}
}

// Lock blocks until the user's lock is held and returns the function that releases it
func (l *UserLocker) Lock(discordID int64) func() {
	l.mu.Lock()
	lock, ok := l.locks[discordID]
	if !ok {
		lock = &userLock{}
		l.locks[discordID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, discordID)
		}
		l.mu.Unlock()
	}
}

// Len returns the number of users with a held or awaited lock
func (l *UserLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
