package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatShortNotation(t *testing.T) {
	assert.Equal(t, "999", FormatShortNotation(999))
	assert.Equal(t, "1.5k", FormatShortNotation(1500))
	assert.Equal(t, "25k", FormatShortNotation(25_000))
	assert.Equal(t, "-2.50M", FormatShortNotation(-2_500_000))
}

func TestFormatWinRate(t *testing.T) {
	assert.Equal(t, "45.5%", FormatWinRate(45.5))
}
