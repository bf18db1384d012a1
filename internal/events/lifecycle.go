package events

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/echostudios/echobot/internal/command"
)

func onReady(ctx *command.EventContext) error {
	ready, ok := ctx.Payload.(*discordgo.Ready)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", ctx.Payload)
	}

	log.Printf("[INFO] 🎉 Bot %s is fully initialized!", ready.User.Username)
	log.Printf("[INFO] 📊 Serving %d guilds", len(ready.Guilds))
	log.Printf("[INFO] 🔗 Invite: https://discord.com/api/oauth2/authorize?client_id=%s&permissions=8&scope=bot%%20applications.commands", ready.User.ID)
	return nil
}

func onGuildCreate(ctx *command.EventContext) error {
	guild, ok := ctx.Payload.(*discordgo.GuildCreate)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", ctx.Payload)
	}

	log.Printf("[INFO] 🎉 Bot added to guild: %s (%s), %d members", guild.Name, guild.ID, guild.MemberCount)
	return nil
}
