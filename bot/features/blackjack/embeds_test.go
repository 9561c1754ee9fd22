package blackjack

import (
	"testing"

	"casinobot/bot/common"
	"casinobot/bot/session"
	"casinobot/domain/games/blackjack"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dealt(t *testing.T, cards ...blackjack.Card) *blackjack.Round {
	t.Helper()
	round, err := blackjack.NewRoundWithDeck(blackjack.NewStackedDeck(cards...), 10)
	require.NoError(t, err)
	return round
}

func TestBuildHandEmbed_HidesHoleCardUntilSettled(t *testing.T) {
	round := dealt(t, "K", "Q", "10", "7")
	g := Game{Name: "bob", Hand: round, Balance: 90}

	embed := buildHandEmbed(g)

	assert.Equal(t, "`K` `Q` (20)", embed.Fields[0].Value)
	assert.Equal(t, "`10` 🂠 (10 + ?)", embed.Fields[1].Value)
	assert.NotContains(t, embed.Fields[1].Value, "7")
	assert.Equal(t, common.ColorPrimary, embed.Color)
	assert.Len(t, embed.Fields, 3)

	require.NoError(t, round.Stand())
	g.Balance = 110
	embed = buildHandEmbed(g)

	assert.Equal(t, "`10` `7` (17)", embed.Fields[1].Value)
	assert.Equal(t, common.ColorSuccess, embed.Color)
	assert.Contains(t, embed.Description, "You win")
	assert.Equal(t, "110 coins", embed.Fields[3].Value)
}

func TestDescribeOutcome(t *testing.T) {
	tests := []struct {
		name     string
		cards    []blackjack.Card
		hit      bool
		contains string
	}{
		{"push", []blackjack.Card{"K", "7", "10", "7"}, false, "Push"},
		{"loss", []blackjack.Card{"K", "6", "10", "8"}, false, "Dealer wins"},
		{"bust", []blackjack.Card{"K", "6", "10", "8", "9"}, true, "Bust"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			round := dealt(t, tt.cards...)
			if tt.hit {
				require.NoError(t, round.Hit())
			} else {
				require.NoError(t, round.Stand())
			}
			assert.Contains(t, describeOutcome(round), tt.contains)
		})
	}
}

func TestBuildExpiredEmbed(t *testing.T) {
	g := Game{Hand: dealt(t, "K", "Q", "10", "7")}

	embed := buildExpiredEmbed(g)

	assert.Contains(t, embed.Description, "forfeited")
	assert.Equal(t, common.ColorWarning, embed.Color)
}

func TestBuildComponents(t *testing.T) {
	key := session.Key{UserID: 3, SessionID: uuid.New()}

	components := buildComponents(key)
	require.Len(t, components, 1)
	row := components[0].(discordgo.ActionsRow)
	require.Len(t, row.Components, 2)

	action, id, ok := common.ParseCustomID(customIDPrefix, row.Components[0].(discordgo.Button).CustomID)
	require.True(t, ok)
	assert.Equal(t, actionHit, action)
	assert.Equal(t, key.SessionID.String(), id)
}
