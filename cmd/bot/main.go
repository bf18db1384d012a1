package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/echostudios/echobot/internal/bot"
	"github.com/echostudios/echobot/internal/command"
	"github.com/echostudios/echobot/internal/commands"
	"github.com/echostudios/echobot/internal/config"
	"github.com/echostudios/echobot/internal/cooldown"
	"github.com/echostudios/echobot/internal/dispatcher"
	"github.com/echostudios/echobot/internal/events"
	"github.com/echostudios/echobot/internal/store"
)

func main() {
	log.Println("[INFO] Starting EchoBot...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal("[ERR] ", err)
	}
	settings := config.DefaultSettings(cfg)

	guilds, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("[ERR] ", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := guilds.Disconnect(shutdownCtx); err != nil {
			log.Println("[ERR] Error disconnecting from MongoDB:", err)
		}
	}()

	registry := command.NewRegistry()
	cmdReport := registry.LoadCommands(commands.Definitions())
	log.Printf("[INFO] Commands loaded: %d/%d", cmdReport.Loaded, cmdReport.Total)
	evtReport := registry.LoadEvents(events.Definitions())
	log.Printf("[INFO] Events loaded: %d/%d", evtReport.Loaded, evtReport.Total)

	gate := cooldown.NewGate()
	go gate.Sweep(ctx, settings.Cooldown.SweepInterval)

	d := dispatcher.New(registry, gate)
	b := bot.New(cfg, settings, guilds, registry, d)

	errCh := make(chan error, 1)
	go func() {
		if err := b.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
