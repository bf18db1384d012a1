package commands

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"github.com/echostudios/echobot/internal/command"
)

func userInfoDefinition() command.Definition {
	return command.Definition{
		Name:        "userinfo",
		Description: "Shows information about a user",
		Category:    CategoryUtility,
		Cooldown:    5 * time.Second,
		Data: &discordgo.ApplicationCommand{
			Name:        "userinfo",
			Description: "Shows information about a user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "The user to inspect (defaults to you)",
					Required:    false,
				},
			},
		},
		Handler: runUserInfo,
	}
}

func runUserInfo(ctx *command.Context) error {
	user := targetUser(ctx)
	if user == nil {
		return ctx.Responder.Reply("`❌` **User not found.**", true)
	}

	created, err := discordgo.SnowflakeTimestamp(user.ID)
	if err != nil {
		created = time.Time{}
	}

	msg := embed.NewEmbed().
		SetTitle(fmt.Sprintf("👤 %s", user.Username)).
		SetColor(ctx.Settings.Colors.Info).
		SetThumbnail(user.AvatarURL("")).
		AddField("ID", user.ID).
		AddField("Account created", created.Format("2006-01-02 15:04"))

	if member, memErr := ctx.Session.GuildMember(ctx.GuildID(), user.ID); memErr == nil {
		msg.AddField("Joined server", member.JoinedAt.Format("2006-01-02 15:04"))
		msg.AddField("Roles", fmt.Sprintf("%d", len(member.Roles)))
	}

	return ctx.Responder.ReplyComplex(&discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{msg.MessageEmbed},
	})
}

func targetUser(ctx *command.Context) *discordgo.User {
	data := ctx.Event.ApplicationCommandData()
	for _, opt := range data.Options {
		if opt.Name == "user" {
			return opt.UserValue(ctx.Session)
		}
	}
	if ctx.Event.Member != nil {
		return ctx.Event.Member.User
	}
	return ctx.Event.User
}
