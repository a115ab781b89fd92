package bot

import (
	"context"
	"strings"

	"casino/games"
	"casino/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// buildBlackjackComponents returns the hit/stand row. The owner's id is
// baked into the custom ids so button presses can be attributed.
func buildBlackjackComponents(userID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Hit",
					Style:    discordgo.PrimaryButton,
					CustomID: "blackjack_hit_" + userID,
				},
				discordgo.Button{
					Label:    "Stand",
					Style:    discordgo.SecondaryButton,
					CustomID: "blackjack_stand_" + userID,
				},
			},
		},
	}
}

func (b *Bot) handleBlackjackCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i)

	snap, err := b.blackjackService.Start(ctx, user.ID, user.Username, stringOption(i, "bet"))
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("Blackjack hand rejected")
		b.respondWithError(s, i, userFacingError(err))
		return
	}

	displayName := GetDisplayName(s, i.GuildID, user.ID)
	embed := buildBlackjackEmbed(displayName, snap)

	var components []discordgo.MessageComponent
	if snap.Status == games.StatusActive {
		components = buildBlackjackComponents(user.ID)
	}
	b.respondWithEmbed(s, i, embed, components)
}

func (b *Bot) handleBlackjackButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ctx := context.Background()
	actor := interactionUser(i)

	var ownerID string
	var act func(context.Context, string, string) (*service.BlackjackSnapshot, error)
	switch {
	case strings.HasPrefix(customID, "blackjack_hit_"):
		ownerID = strings.TrimPrefix(customID, "blackjack_hit_")
		act = b.blackjackService.Hit
	case strings.HasPrefix(customID, "blackjack_stand_"):
		ownerID = strings.TrimPrefix(customID, "blackjack_stand_")
		act = b.blackjackService.Stand
	default:
		return
	}

	snap, err := act(ctx, ownerID, actor.ID)
	if err != nil {
		b.respondWithError(s, i, userFacingError(err))
		return
	}

	displayName := GetDisplayName(s, i.GuildID, ownerID)
	embed := buildBlackjackEmbed(displayName, snap)

	var components []discordgo.MessageComponent
	if snap.Status == games.StatusActive {
		components = buildBlackjackComponents(ownerID)
	}

	// update the original hand message in place
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		log.Errorf("Error updating blackjack message: %v", err)
	}
}
