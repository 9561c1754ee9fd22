package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomID_RoundTrip(t *testing.T) {
	id := CustomID("slots", "spin", "3f0c9a4e-8a1b-4c1d-9d3e-0a6b7c8d9e0f")
	assert.Equal(t, "slots_spin_3f0c9a4e-8a1b-4c1d-9d3e-0a6b7c8d9e0f", id)

	action, sessionID, ok := ParseCustomID("slots", id)
	assert.True(t, ok)
	assert.Equal(t, "spin", action)
	assert.Equal(t, "3f0c9a4e-8a1b-4c1d-9d3e-0a6b7c8d9e0f", sessionID)
}

func TestParseCustomID_Rejects(t *testing.T) {
	for _, id := range []string{"blackjack_hit_abc", "slots_spin", "slots__abc", "slots_spin_"} {
		_, _, ok := ParseCustomID("slots", id)
		assert.False(t, ok, id)
	}
}

func TestAnimate_StopsOnError(t *testing.T) {
	var seen []int
	err := Animate(5, 0, func(i int) error {
		seen = append(seen, i)
		if i == 2 {
			return errors.New("edit failed")
		}
		return nil
	})

	assert.Error(t, err)
	assert.Equal(t, []int{0, 1, 2}, seen)
}
