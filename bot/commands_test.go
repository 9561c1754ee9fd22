package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandDefinitions(t *testing.T) {
	byName := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range commandDefinitions() {
		byName[cmd.Name] = cmd
	}

	for _, name := range []string{"balance", "slots", "blackjack", "coinflip", "daily_reward", "leaderboard", "profile", "add_balance", "help", "tos"} {
		assert.Contains(t, byName, name)
		assert.Contains(t, commandRoutes, name, "command %s has no handler", name)
	}
	assert.Len(t, byName, len(commandRoutes))

	coinflip := byName["coinflip"]
	require.Len(t, coinflip.Options, 2)
	assert.Equal(t, "guess", coinflip.Options[0].Name)
	assert.Len(t, coinflip.Options[0].Choices, 2)
	require.NotNil(t, coinflip.Options[1].MinValue)
	assert.Equal(t, 1.0, *coinflip.Options[1].MinValue)

	assert.False(t, byName["profile"].Options[0].Required)
}
