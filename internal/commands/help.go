package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"github.com/echostudios/echobot/internal/command"
)

func helpDefinition() command.Definition {
	return command.Definition{
		Name:        "help",
		Description: "Shows all available commands",
		Category:    CategoryGeneral,
		Cooldown:    3 * time.Second,
		Data: &discordgo.ApplicationCommand{
			Name:        "help",
			Description: "Shows all available commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "command",
					Description: "Command name for detailed information",
					Required:    false,
				},
			},
		},
		Handler: runHelp,
	}
}

func runHelp(ctx *command.Context) error {
	opts := ctx.Event.ApplicationCommandData().Options
	if len(opts) > 0 {
		return helpForCommand(ctx, opts[0].StringValue())
	}
	return helpOverview(ctx)
}

func helpForCommand(ctx *command.Context, name string) error {
	desc, ok := ctx.Commands.Get(name)
	if !ok {
		return ctx.Responder.Reply(fmt.Sprintf("`❌` **Command `%s` not found.**", name), true)
	}

	msg := embed.NewEmbed().
		SetTitle(fmt.Sprintf("📋 Command: %s", desc.Name)).
		SetColor(ctx.Settings.Colors.Primary).
		AddField("Description", desc.Description).
		AddField("Category", desc.Category).
		AddField("Cooldown", fmt.Sprintf("%.0fs", desc.Cooldown.Seconds()))

	return ctx.Responder.ReplyComplex(&discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{msg.MessageEmbed},
	})
}

func helpOverview(ctx *command.Context) error {
	msg := embed.NewEmbed().
		SetTitle("🤖 Available Commands").
		SetDescription("Use `/help <command>` for detailed information about a specific command.").
		SetColor(ctx.Settings.Colors.Primary).
		SetFooter(fmt.Sprintf("Requested by %s", ctx.Username()))

	for _, category := range ctx.Commands.Categories() {
		var names []string
		for _, desc := range ctx.Commands.Category(category) {
			if desc.Enabled {
				names = append(names, fmt.Sprintf("`%s`", desc.Name))
			}
		}
		if len(names) == 0 {
			continue
		}
		msg.AddField(fmt.Sprintf("%s %s", categoryEmoji(category), category), strings.Join(names, ", "))
	}

	return ctx.Responder.ReplyComplex(&discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{msg.MessageEmbed},
	})
}
