package commands

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/echostudios/echobot/internal/command"
)

func pingDefinition() command.Definition {
	return command.Definition{
		Name:        "ping",
		Description: "Responds with Pong! and shows bot latency",
		Category:    CategoryGeneral,
		Cooldown:    5 * time.Second,
		Data: &discordgo.ApplicationCommand{
			Name:        "ping",
			Description: "Responds with Pong! and shows bot latency",
		},
		Handler: runPing,
	}
}

func runPing(ctx *command.Context) error {
	latency := ctx.Session.HeartbeatLatency().Milliseconds()
	return ctx.Responder.Reply(fmt.Sprintf("🏓 Pong! API: %dms", latency), false)
}
