package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"github.com/echostudios/echobot/internal/command"
)

func dbStatsDefinition() command.Definition {
	return command.Definition{
		Name:        "dbstats",
		Description: "Shows database statistics",
		Category:    CategoryUtility,
		Permissions: discordgo.PermissionAdministrator,
		Data: &discordgo.ApplicationCommand{
			Name:        "dbstats",
			Description: "Shows database statistics",
		},
		Handler: runDBStats,
	}
}

func runDBStats(ctx *command.Context) error {
	bg := context.Background()

	status := "`✅` Reachable"
	if err := ctx.Store.Ping(bg); err != nil {
		status = "`❌` Unreachable"
	}

	stats, err := ctx.Store.Stats(bg)
	if err != nil {
		return fmt.Errorf("failed to read store stats: %w", err)
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	msg := embed.NewEmbed().
		SetTitle("🗄️ Database Statistics").
		SetColor(ctx.Settings.Colors.Info).
		AddField("Connection", status)
	for _, name := range names {
		msg.AddField(name, fmt.Sprintf("%d documents", stats[name]))
	}

	return ctx.Responder.ReplyComplex(&discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{msg.MessageEmbed},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
}
