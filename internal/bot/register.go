package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"
)

// registerCommands publishes every registered command's slash descriptor
// globally, paced under Discord's application command rate limit.
func (b *Bot) registerCommands() error {
	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			return fmt.Errorf("failed to resolve application ID: %w", err)
		}
		appID = user.ID
	}

	limiter := rate.NewLimiter(rate.Every(time.Second/40), 1)
	registered := 0
	for _, desc := range b.commands.All() {
		if err := limiter.Wait(context.Background()); err != nil {
			return err
		}
		if _, err := b.dg.ApplicationCommandCreate(appID, "", desc.Data); err != nil {
			log.Printf("[ERR] Can't create command %s: %v", desc.Name, err)
			continue
		}
		registered++
	}

	log.Printf("[INFO] %d slash commands registered", registered)
	return nil
}
