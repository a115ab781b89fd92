package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (b *Bot) handleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i)

	result, err := b.rewardService.ClaimDaily(ctx, user.ID, user.Username)
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("Failed to claim daily reward")
		b.respondWithError(s, i, "Unable to claim your daily reward. Please try again.")
		return
	}

	if !result.Granted {
		// cooldown messages are only interesting to the claimer
		b.respondWithError(s, i, result.Message)
		return
	}

	b.respondWithEmbed(s, i, buildRewardEmbed("📅 Daily Reward", result), nil)
}

func (b *Bot) handleWork(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i)

	result, err := b.rewardService.ClaimWork(ctx, user.ID, user.Username)
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("Failed to claim work reward")
		b.respondWithError(s, i, "Unable to clock in right now. Please try again.")
		return
	}

	if !result.Granted {
		b.respondWithError(s, i, result.Message)
		return
	}

	b.respondWithEmbed(s, i, buildRewardEmbed("💼 Work", result), nil)
}
