package cmd

import (
	"bytes"
	"testing"

	"casinobot/domain/games"
	"casinobot/domain/games/slots"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintOdds(t *testing.T) {
	var buf bytes.Buffer

	err := PrintOdds(&buf, games.NewSeededRandom(7), 2000, 10)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "2000 spins at bet 10")
	assert.Contains(t, out, "Return to player")
	assert.Contains(t, out, "Wagered:          20000")
	for _, symbol := range slots.Symbols() {
		assert.Contains(t, out, string(symbol))
	}
}

func TestPrintOdds_RejectsBadInput(t *testing.T) {
	var buf bytes.Buffer

	assert.Error(t, PrintOdds(&buf, games.DefaultRandom, 0, 10))
	assert.Error(t, PrintOdds(&buf, games.DefaultRandom, 10, 0))
	assert.Empty(t, buf.String())
}
