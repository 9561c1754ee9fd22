package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrantMessage(t *testing.T) {
	assert.Equal(t,
		"✅ Added **1,000 coins** to <@42>. New balance: **1,100 coins**",
		grantMessage(42, 1000, 1100))
}
