package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"casinobot/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestRegistry() (*Registry[int], *testClock) {
	clock := &testClock{now: time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)}
	return NewRegistry[int](60 * time.Second).WithClock(clock.Now), clock
}

func TestRegistry_StartAndGet(t *testing.T) {
	r, _ := newTestRegistry()

	key := r.Start(1, 10)
	value, err := r.Get(key)
	require.NoError(t, err)
	assert.Equal(t, 10, value)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_KeyIsPerUser(t *testing.T) {
	r, _ := newTestRegistry()

	key := r.Start(1, 10)
	_, err := r.Get(Key{UserID: 2, SessionID: key.SessionID})
	assert.ErrorIs(t, err, entities.ErrSessionExpired)
}

func TestRegistry_WithRefreshesIdleTimer(t *testing.T) {
	r, clock := newTestRegistry()
	key := r.Start(1, 10)

	clock.Advance(50 * time.Second)
	require.NoError(t, r.With(key, func(v *int) (bool, error) {
		*v += 5
		return false, nil
	}))

	clock.Advance(50 * time.Second)
	value, err := r.Get(key)
	require.NoError(t, err)
	assert.Equal(t, 15, value)
}

func TestRegistry_FailedActionDoesNotRefresh(t *testing.T) {
	r, clock := newTestRegistry()
	key := r.Start(1, 10)

	clock.Advance(50 * time.Second)
	err := r.With(key, func(v *int) (bool, error) {
		return false, errors.New("boom")
	})
	require.Error(t, err)

	clock.Advance(20 * time.Second)
	_, err = r.Get(key)
	assert.ErrorIs(t, err, entities.ErrSessionExpired)
}

func TestRegistry_IdleSessionExpiresOnAccess(t *testing.T) {
	r, clock := newTestRegistry()

	var expired atomic.Int32
	r.OnExpire(func(key Key, value int) { expired.Add(1) })

	key := r.Start(1, 10)
	clock.Advance(60 * time.Second)

	called := false
	err := r.With(key, func(v *int) (bool, error) {
		called = true
		return false, nil
	})
	assert.ErrorIs(t, err, entities.ErrSessionExpired)
	assert.False(t, called)
	assert.Equal(t, int32(1), expired.Load())
	assert.Zero(t, r.Len())
}

func TestRegistry_DoneClosesSession(t *testing.T) {
	r, _ := newTestRegistry()
	key := r.Start(1, 10)

	require.NoError(t, r.With(key, func(v *int) (bool, error) { return true, nil }))

	err := r.With(key, func(v *int) (bool, error) { return false, nil })
	assert.ErrorIs(t, err, entities.ErrSessionExpired)
	assert.Zero(t, r.Len())
}

func TestRegistry_Sweep(t *testing.T) {
	r, clock := newTestRegistry()

	var expiredValues []int
	r.OnExpire(func(key Key, value int) { expiredValues = append(expiredValues, value) })

	stale := r.Start(1, 10)
	clock.Advance(45 * time.Second)
	fresh := r.Start(2, 20)
	clock.Advance(30 * time.Second)

	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, []int{10}, expiredValues)

	_, err := r.Get(stale)
	assert.ErrorIs(t, err, entities.ErrSessionExpired)
	_, err = r.Get(fresh)
	assert.NoError(t, err)
}

func TestRegistry_SweepSkipsBusySession(t *testing.T) {
	r, clock := newTestRegistry()
	key := r.Start(1, 10)

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error)
	go func() {
		done <- r.With(key, func(v *int) (bool, error) {
			close(entered)
			<-release
			return false, nil
		})
	}()

	<-entered
	clock.Advance(2 * time.Minute)
	assert.Zero(t, r.Sweep())

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_WithSerializesSameSession(t *testing.T) {
	r, _ := newTestRegistry()
	key := r.Start(1, 0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.With(key, func(v *int) (bool, error) {
				*v++
				return false, nil
			})
		}()
	}
	wg.Wait()

	value, err := r.Get(key)
	require.NoError(t, err)
	assert.Equal(t, 50, value)
}

func TestRegistry_Close(t *testing.T) {
	r, _ := newTestRegistry()

	var expired atomic.Int32
	r.OnExpire(func(key Key, value int) { expired.Add(1) })

	key := r.Start(1, 10)
	r.Close(key)

	_, err := r.Get(key)
	assert.ErrorIs(t, err, entities.ErrSessionExpired)
	assert.Zero(t, expired.Load())
}
