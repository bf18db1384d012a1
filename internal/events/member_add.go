package events

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/echostudios/echobot/internal/command"
	"github.com/echostudios/echobot/internal/verify"
)

// onGuildMemberAdd sends the welcome message, attaching the verification
// button when the guild has verification enabled.
func onGuildMemberAdd(ctx *command.EventContext) error {
	member, ok := ctx.Payload.(*discordgo.GuildMemberAdd)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", ctx.Payload)
	}

	welcome := ctx.Settings.Welcome
	if !welcome.Enabled || welcome.ChannelID == "" {
		return nil
	}

	guildName := member.GuildID
	memberCount := 0
	if guild, err := ctx.Session.State.Guild(member.GuildID); err == nil {
		guildName = guild.Name
		memberCount = guild.MemberCount
	}

	message := strings.NewReplacer(
		"{user}", member.User.Mention(),
		"{server}", guildName,
	).Replace(welcome.Message)

	welcomeEmbed := &discordgo.MessageEmbed{
		Color: ctx.Settings.Colors.Primary,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    member.User.Username,
			IconURL: member.User.AvatarURL(""),
		},
		Title:       fmt.Sprintf("**Welcome** to **%s**", guildName),
		Description: message,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	if memberCount > 0 {
		welcomeEmbed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("You are member #%d!", memberCount),
		}
	}

	var components []discordgo.MessageComponent
	cfg, err := ctx.Store.GuildVerification(context.Background(), member.GuildID)
	if err != nil {
		log.Printf("[WARN] Failed to load verification config for guild %s: %v", member.GuildID, err)
	} else if cfg.Enabled {
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{verify.Button(cfg)},
		})
	}

	_, err = ctx.Session.ChannelMessageSendComplex(welcome.ChannelID, &discordgo.MessageSend{
		Content:    member.User.Mention(),
		Embeds:     []*discordgo.MessageEmbed{welcomeEmbed},
		Components: components,
	})
	if err != nil {
		return fmt.Errorf("failed to send welcome message: %w", err)
	}

	log.Printf("[INFO] 👋 Welcome message sent for %s in guild %s", member.User.Username, guildName)
	return nil
}
