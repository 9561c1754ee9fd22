package infrastructure

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserLocker_SerializesSameUser(t *testing.T) {
	locker := NewUserLocker()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock(42)
			defer unlock()
			current := counter
			counter = current + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, locker.Len())
}

func TestUserLocker_DifferentUsersDoNotBlock(t *testing.T) {
	locker := NewUserLocker()

	unlockA := locker.Lock(1)
	unlockB := locker.Lock(2)
	assert.Equal(t, 2, locker.Len())

	unlockA()
	unlockB()
	assert.Equal(t, 0, locker.Len())
}
