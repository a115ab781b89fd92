package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const leaderboardSize = 10

func (b *Bot) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i)

	// read-only: checking a balance never creates the account
	balance, err := b.userService.GetBalance(ctx, user.ID)
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("Failed to get balance")
		b.respondWithError(s, i, "Unable to retrieve balance. Please try again.")
		return
	}

	displayName := GetDisplayName(s, i.GuildID, user.ID)
	message := fmt.Sprintf("%s, your current balance: **%s coins**", displayName, FormatBalance(balance))
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
	if err != nil {
		log.Errorf("Error responding to balance command: %v", err)
	}
}

func (b *Bot) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	users, err := b.userService.Leaderboard(ctx, leaderboardSize)
	if err != nil {
		log.WithError(err).Error("Failed to get leaderboard")
		b.respondWithError(s, i, "Unable to load the leaderboard. Please try again.")
		return
	}

	b.respondWithEmbed(s, i, buildLeaderboardEmbed(users), nil)
}

func (b *Bot) handleProfile(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i)

	profile, err := b.userService.GetProfile(ctx, user.ID, user.Username)
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("Failed to get profile")
		b.respondWithError(s, i, "Unable to load your profile. Please try again.")
		return
	}

	displayName := GetDisplayName(s, i.GuildID, user.ID)
	b.respondWithEmbed(s, i, buildProfileEmbed(displayName, profile), nil)
}
