package bot

import (
	"fmt"
	"strings"
	"time"

	"casino/games"
	"casino/models"
	"casino/service"

	"github.com/bwmarrin/discordgo"
)

// Discord color constants
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorSuccess = 0x57F287 // Green
	ColorDanger  = 0xED4245 // Red
	ColorWarning = 0xFEE75C // Yellow
)

func resultColor(winnings, bet int64) int {
	switch {
	case winnings > bet:
		return ColorSuccess
	case winnings == bet:
		return ColorWarning
	default:
		return ColorDanger
	}
}

// buildSlotsEmbed renders a finished 3x3 spin
func buildSlotsEmbed(displayName string, result *service.SlotsResult) *discordgo.MessageEmbed {
	var outcome string
	if result.Winnings > 0 {
		outcome = fmt.Sprintf("**%s** hit **%s** and won **%s coins**!", displayName, result.Detail, FormatBalance(result.Winnings))
	} else {
		outcome = fmt.Sprintf("**%s** spun and lost **%s coins**.", displayName, FormatBalance(result.Bet))
	}

	return &discordgo.MessageEmbed{
		Title:       "🎰 Slots",
		Description: result.Grid.String() + "\n\n" + outcome,
		Color:       resultColor(result.Winnings, result.Bet),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Balance: %s coins", FormatBalance(result.NewBalance)),
		},
	}
}

// spinningReelsEmbed renders an in-progress reel spin, with revealed
// symbols on the left and spinners for the rest.
func spinningReelsEmbed(row [3]games.Symbol, revealed int) *discordgo.MessageEmbed {
	parts := make([]string, 3)
	for i := range parts {
		if i < revealed {
			parts[i] = string(row[i])
		} else {
			parts[i] = "🎰"
		}
	}

	return &discordgo.MessageEmbed{
		Title:       "🎰 Spinning...",
		Description: strings.Join(parts, " | "),
		Color:       ColorPrimary,
	}
}

// buildReelsEmbed renders the final animated spin result
func buildReelsEmbed(displayName string, result *service.ReelsResult) *discordgo.MessageEmbed {
	row := fmt.Sprintf("%s | %s | %s", result.Row[0], result.Row[1], result.Row[2])

	var outcome string
	if result.Winnings > 0 {
		outcome = fmt.Sprintf("**%s** hit **%s** and won **%s coins**!", displayName, result.Detail, FormatBalance(result.Winnings))
	} else {
		outcome = fmt.Sprintf("**%s** spun and lost **%s coins**.", displayName, FormatBalance(result.Bet))
	}

	return &discordgo.MessageEmbed{
		Title:       "🎰 Slots",
		Description: row + "\n\n" + outcome,
		Color:       resultColor(result.Winnings, result.Bet),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Balance: %s coins", FormatBalance(result.NewBalance)),
		},
	}
}

// buildCoinflipEmbed renders a coinflip result
func buildCoinflipEmbed(displayName string, result *service.CoinflipResult) *discordgo.MessageEmbed {
	side := "🪙 Heads"
	if result.Outcome == games.Tails {
		side = "🪙 Tails"
	}

	var outcome string
	if result.Won {
		outcome = fmt.Sprintf("**%s** called %s and won **%s coins**!", displayName, result.Choice, FormatBalance(result.Winnings))
	} else {
		outcome = fmt.Sprintf("**%s** called %s and lost **%s coins**.", displayName, result.Choice, FormatBalance(result.Bet))
	}

	return &discordgo.MessageEmbed{
		Title:       side,
		Description: outcome,
		Color:       resultColor(result.Winnings, result.Bet),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Balance: %s coins", FormatBalance(result.NewBalance)),
		},
	}
}

var blackjackStatusLines = map[games.BlackjackStatus]string{
	games.StatusPlayerBlackjack: "**Blackjack!** Paid 3:2.",
	games.StatusPlayerWin:       "**You win!**",
	games.StatusDealerBust:      "**Dealer busts, you win!**",
	games.StatusPush:            "**Push.** Your bet is returned.",
	games.StatusPlayerBust:      "**Bust!** You went over 21.",
	games.StatusDealerWin:       "**Dealer wins.**",
}

// buildBlackjackEmbed renders a hand. While the hand is active the
// dealer's hole card stays hidden.
func buildBlackjackEmbed(displayName string, snap *service.BlackjackSnapshot) *discordgo.MessageEmbed {
	active := snap.Status == games.StatusActive

	dealerValue := "?"
	if !active {
		dealerValue = fmt.Sprintf("%d", snap.DealerTotal)
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   fmt.Sprintf("%s (%d)", displayName, snap.PlayerTotal),
			Value:  games.FormatHand(snap.PlayerHand, false),
			Inline: false,
		},
		{
			Name:   fmt.Sprintf("Dealer (%s)", dealerValue),
			Value:  games.FormatHand(snap.DealerHand, active),
			Inline: false,
		},
	}

	embed := &discordgo.MessageEmbed{
		Title:  "🃏 Blackjack",
		Color:  ColorPrimary,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Bet: %s coins", FormatBalance(snap.Bet)),
		},
	}

	if active {
		embed.Description = "Hit to draw another card, or stand to play the dealer."
		return embed
	}

	embed.Description = blackjackStatusLines[snap.Status]
	embed.Color = resultColor(snap.Bet+snap.Payout, snap.Bet)
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Bet: %s coins • Balance: %s coins", FormatBalance(snap.Bet), FormatBalance(snap.NewBalance)),
	}
	return embed
}

// buildRewardEmbed renders a granted daily or work reward
func buildRewardEmbed(title string, result *service.RewardResult) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: result.Message,
		Color:       ColorSuccess,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Balance: %s coins", FormatBalance(result.NewBalance)),
		},
	}
}

// buildLeaderboardEmbed renders the top balances
func buildLeaderboardEmbed(users []*models.User) *discordgo.MessageEmbed {
	medals := []string{"🥇", "🥈", "🥉"}

	var sb strings.Builder
	for i, user := range users {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		fmt.Fprintf(&sb, "%s **%s** — %s coins\n", rank, user.Username, FormatBalance(user.Balance))
	}
	if len(users) == 0 {
		sb.WriteString("Nobody has played yet.")
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Leaderboard",
		Description: sb.String(),
		Color:       ColorWarning,
	}
}

// rewardAvailability renders when a time-gated reward next unlocks,
// as a Discord relative timestamp so the client keeps it live.
func rewardAvailability(last *time.Time, window time.Duration) string {
	if last == nil {
		return "Ready ✅"
	}
	next := last.Add(window)
	if time.Now().Before(next) {
		return fmt.Sprintf("<t:%d:R>", next.Unix())
	}
	return "Ready ✅"
}

// buildProfileEmbed renders a player's account summary
func buildProfileEmbed(displayName string, profile *service.Profile) *discordgo.MessageEmbed {
	var history strings.Builder
	for _, txn := range profile.Recent {
		sign := "+"
		if txn.Amount < 0 {
			sign = ""
		}
		fmt.Fprintf(&history, "`%s%s` %s — %s\n", sign, FormatBalance(txn.Amount), txn.GameType, txn.Details)
	}
	if len(profile.Recent) == 0 {
		history.WriteString("No transactions yet.")
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("👤 %s", displayName),
		Color: ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Balance",
				Value:  fmt.Sprintf("**%s coins**", FormatBalance(profile.User.Balance)),
				Inline: true,
			},
			{
				Name:   "Member since",
				Value:  fmt.Sprintf("<t:%d:D>", profile.User.CreatedAt.Unix()),
				Inline: true,
			},
			{
				Name:   "Daily reward",
				Value:  rewardAvailability(profile.User.LastDaily, service.DailyRewardWindow),
				Inline: true,
			},
			{
				Name:   "Work",
				Value:  rewardAvailability(profile.User.LastWork, service.WorkRewardWindow),
				Inline: true,
			},
			{
				Name:   "Recent activity",
				Value:  history.String(),
				Inline: false,
			},
		},
	}
}
