// Package bot wires the discordgo session to the dispatcher: it forwards
// gateway events into the registry's bindings and slash commands into the
// command state machine.
package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/echostudios/echobot/internal/command"
	"github.com/echostudios/echobot/internal/config"
	"github.com/echostudios/echobot/internal/dispatcher"
	"github.com/echostudios/echobot/internal/events"
)

// Bot owns the gateway session. All collaborators are injected at
// construction; nothing is looked up through globals.
type Bot struct {
	dg         *discordgo.Session
	cfg        *config.Config
	settings   *config.Settings
	store      command.GuildStore
	commands   *command.Registry
	dispatcher *dispatcher.Dispatcher
}

func New(cfg *config.Config, settings *config.Settings, store command.GuildStore, reg *command.Registry, d *dispatcher.Dispatcher) *Bot {
	return &Bot{
		cfg:        cfg,
		settings:   settings,
		store:      store,
		commands:   reg,
		dispatcher: d,
	}
}

// Run opens the session and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onGuildMemberAdd)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Closing gateway session...")
	return nil
}

func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages
}

func (b *Bot) eventContext(s *discordgo.Session, payload any) *command.EventContext {
	return &command.EventContext{
		Session:  s,
		Payload:  payload,
		Store:    b.store,
		Settings: b.settings,
		Commands: b.commands,
	}
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	if err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: b.cfg.BotStatus,
		Activities: []*discordgo.Activity{
			{Name: b.cfg.BotActivity, Type: discordgo.ActivityTypeWatching},
		},
	}); err != nil {
		log.Println("[WARN] Failed to set bot status:", err)
	}

	if b.cfg.InitSlashCommands {
		if err := b.registerCommands(); err != nil {
			log.Println("[ERR] Error registering slash commands:", err)
		}
	} else {
		log.Println("[INFO] Registering slash commands skipped")
	}

	b.dispatcher.Emit(events.EventReady, b.eventContext(s, r))
	log.Printf("[INFO] ✅ Discord bot %s is running.", r.User.Username)
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	b.dispatcher.Emit(events.EventGuildCreate, b.eventContext(s, g))
}

func (b *Bot) onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	b.dispatcher.Emit(events.EventGuildMemberAdd, b.eventContext(s, m))
}

// onInteractionCreate routes slash commands through the dispatcher's state
// machine; component and modal interactions go to the event bindings.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type == discordgo.InteractionApplicationCommand {
		ctx := &command.Context{
			Session:   s,
			Event:     i,
			Responder: command.NewResponder(s, i),
			Store:     b.store,
			Settings:  b.settings,
			Commands:  b.commands,
		}
		b.dispatcher.Dispatch(i.ApplicationCommandData().Name, ctx)
		return
	}

	b.dispatcher.Emit(events.EventInteractionCreate, b.eventContext(s, i))
}
