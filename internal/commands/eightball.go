package commands

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"github.com/echostudios/echobot/internal/command"
)

var eightBallAnswers = []string{
	"🔮 It is certain",
	"🔮 It is decidedly so",
	"🔮 Without a doubt",
	"🔮 Yes, definitely",
	"🔮 You can count on it",
	"🔮 As I see it, yes",
	"🔮 Most likely",
	"🔮 Outlook good",
	"🔮 Yes",
	"🔮 Signs point to yes",
	"🔮 Reply hazy, try again",
	"🔮 Ask again later",
	"🔮 Better not tell you now",
	"🔮 Cannot predict now",
	"🔮 Concentrate and ask again",
	"🔮 Don't count on it",
	"🔮 My reply is no",
	"🔮 My sources say no",
	"🔮 Outlook not so good",
	"🔮 Very doubtful",
}

func eightBallDefinition() command.Definition {
	return command.Definition{
		Name:        "8ball",
		Description: "Ask a question to the magic ball",
		Category:    CategoryEntertainment,
		Cooldown:    10 * time.Second,
		Data: &discordgo.ApplicationCommand{
			Name:        "8ball",
			Description: "Ask a question to the magic ball",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "question",
					Description: "Your question for the magic ball",
					Required:    true,
				},
			},
		},
		Handler: runEightBall,
	}
}

func runEightBall(ctx *command.Context) error {
	question := ctx.Event.ApplicationCommandData().Options[0].StringValue()
	answer := eightBallAnswers[rand.Intn(len(eightBallAnswers))]

	msg := embed.NewEmbed().
		SetTitle("🎱 Magic Ball").
		SetColor(ctx.Settings.Colors.Primary).
		AddField("❓ Question", question).
		AddField("🔮 Answer", answer).
		SetFooter(fmt.Sprintf("Requested by %s", ctx.Username()))

	return ctx.Responder.ReplyComplex(&discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{msg.MessageEmbed},
	})
}
