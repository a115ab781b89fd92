package bot

import (
	"context"
	"time"

	"casino/games"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// reelRevealDelay paces the animated spin edits
const reelRevealDelay = 900 * time.Millisecond

func (b *Bot) handleSlots(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i)

	result, err := b.gamblingService.PlaySlots(ctx, user.ID, user.Username, stringOption(i, "bet"))
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("Slots round rejected")
		b.respondWithError(s, i, userFacingError(err))
		return
	}

	displayName := GetDisplayName(s, i.GuildID, user.ID)
	b.respondWithEmbed(s, i, buildSlotsEmbed(displayName, result), nil)
}

// handleAnimatedSlots plays the round immediately but reveals the reels
// one at a time by editing the response.
func (b *Bot) handleAnimatedSlots(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i)

	result, err := b.gamblingService.PlayAnimatedSlots(ctx, user.ID, user.Username, stringOption(i, "bet"))
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("Animated slots round rejected")
		b.respondWithError(s, i, userFacingError(err))
		return
	}

	b.respondWithEmbed(s, i, spinningReelsEmbed(result.Row, 0), nil)

	// reveal the rest asynchronously; the outcome is already settled
	go func() {
		displayName := GetDisplayName(s, i.GuildID, user.ID)

		for revealed := 1; revealed <= 2; revealed++ {
			time.Sleep(reelRevealDelay)
			embed := spinningReelsEmbed(result.Row, revealed)
			if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Embeds: &[]*discordgo.MessageEmbed{embed},
			}); err != nil {
				log.WithError(err).Warn("Failed to edit spin animation")
				return
			}
		}

		time.Sleep(reelRevealDelay)
		embed := buildReelsEmbed(displayName, result)
		if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Embeds: &[]*discordgo.MessageEmbed{embed},
		}); err != nil {
			log.WithError(err).Warn("Failed to finish spin animation")
		}
	}()
}

func (b *Bot) handleCoinflip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i)

	choice, ok := games.ParseCoinSide(stringOption(i, "side"))
	if !ok {
		b.respondWithError(s, i, "Pick heads or tails.")
		return
	}

	result, err := b.gamblingService.PlayCoinflip(ctx, user.ID, user.Username, stringOption(i, "bet"), choice)
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("Coinflip round rejected")
		b.respondWithError(s, i, userFacingError(err))
		return
	}

	displayName := GetDisplayName(s, i.GuildID, user.ID)
	b.respondWithEmbed(s, i, buildCoinflipEmbed(displayName, result), nil)
}
