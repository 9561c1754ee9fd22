package common

import (
	"fmt"
	"strings"
	"time"

	"casinobot/domain/games/blackjack"
	"casinobot/domain/games/slots"
)

// FormatBalance formats a balance amount with thousand separators
func FormatBalance(balance int64) string {
	sign := ""
	if balance < 0 {
		sign = "-"
		balance = -balance
	}
	str := fmt.Sprintf("%d", balance)

	n := len(str)
	if n <= 3 {
		return sign + str
	}

	var result strings.Builder
	result.WriteString(sign)
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// FormatAmount appends the currency, e.g. "1,250 coins"
func FormatAmount(amount int64) string {
	return FormatBalance(amount) + " " + Currency
}

// FormatNet renders a signed result like "+50" or "-10"
func FormatNet(net int64) string {
	if net > 0 {
		return "+" + FormatBalance(net)
	}
	return FormatBalance(net)
}

// FormatGrid lays the slots grid out as three lines
func FormatGrid(grid slots.Grid) string {
	var b strings.Builder
	for row := range grid {
		if row > 0 {
			b.WriteString("\n")
		}
		for col := range grid[row] {
			if col > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(string(grid[row][col]))
		}
	}
	return b.String()
}

// FormatHand shows every card and the total
func FormatHand(hand blackjack.Hand) string {
	return fmt.Sprintf("%s (%d)", strings.Join(cardStrings(hand), " "), hand.Value())
}

// FormatHiddenHand shows only the dealer's up card
func FormatHiddenHand(hand blackjack.Hand) string {
	if len(hand) == 0 {
		return ""
	}
	return fmt.Sprintf("`%s` 🂠 (%d + ?)", hand[0], blackjack.HandValue(hand[:1]))
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays in user's local timezone
// Format types: "t" = short time, "T" = long time, "d" = short date, "D" = long date,
// "f" = short date/time, "F" = long date/time, "R" = relative time
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}

func cardStrings(hand blackjack.Hand) []string {
	out := make([]string, len(hand))
	for i, card := range hand {
		out[i] = "`" + string(card) + "`"
	}
	return out
}
