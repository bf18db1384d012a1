// Package dispatcher routes inbound interactions and gateway events to the
// handlers held by the registry, applying enablement, permission and cooldown
// checks on the way in and normalizing failures into a single user-visible
// notice on the way out.
package dispatcher

import (
	"fmt"
	"log"
	"time"

	"github.com/echostudios/echobot/internal/command"
	"github.com/echostudios/echobot/internal/cooldown"
)

const genericErrorNotice = "`❌` **An error occurred while executing the command.**"

// Dispatcher holds the collaborators every dispatch needs. Constructed once
// at startup and passed by reference; nothing is reached through globals.
type Dispatcher struct {
	commands  *command.Registry
	cooldowns *cooldown.Gate
	now       func() time.Time
}

func New(reg *command.Registry, gate *cooldown.Gate) *Dispatcher {
	return &Dispatcher{
		commands:  reg,
		cooldowns: gate,
		now:       time.Now,
	}
}

// Dispatch runs the full state machine for one command interaction. Every
// call produces exactly one terminal outcome: a handler reply, a denial
// notice, or an error notice. It never responds twice and never stays silent.
func (d *Dispatcher) Dispatch(name string, ctx *command.Context) {
	desc, ok := d.commands.Get(name)
	if !ok {
		log.Printf("[WARN] Unknown command '%s' invoked by %s", name, ctx.UserID())
		d.deny(ctx, fmt.Sprintf("`❌` **Command `%s` not found.**", name))
		return
	}

	if !desc.Enabled {
		d.deny(ctx, "`❌` **This command is currently disabled.**")
		return
	}

	if !ctx.HasPermissions(desc.Permissions) {
		d.deny(ctx, "`❌` **You do not have permission to use this command.**")
		return
	}

	if desc.Cooldown > 0 {
		allowed, retryAfter := d.cooldowns.Check(desc.Name, ctx.UserID(), desc.Cooldown, d.now())
		if !allowed {
			d.deny(ctx, fmt.Sprintf("`⏰` **You must wait %.1f seconds before using the `%s` command again.**",
				retryAfter.Seconds(), desc.Name))
			return
		}
	}

	if err := runHandler(desc.Handler, ctx); err != nil {
		log.Printf("[ERR] Error executing command '%s' (guild %s, user %s): %v",
			desc.Name, ctx.GuildID(), ctx.UserID(), err)
		d.fail(ctx)
		return
	}

	// A handler that returned cleanly without replying would leave the
	// interaction hanging; surface that as a fault instead.
	if !ctx.Responder.Replied() {
		log.Printf("[ERR] Command '%s' completed without responding", desc.Name)
		d.fail(ctx)
	}
}

// runHandler executes the handler, converting panics into errors so one bad
// command cannot take the process down.
func runHandler(h command.Handler, ctx *command.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx)
}

func (d *Dispatcher) deny(ctx *command.Context, notice string) {
	if err := ctx.Responder.Reply(notice, true); err != nil {
		log.Printf("[ERR] Failed to send denial notice: %v", err)
	}
}

// fail sends the single generic error artifact: a reply if nothing has been
// sent yet, otherwise a follow-up. Raw error detail never reaches the caller.
func (d *Dispatcher) fail(ctx *command.Context) {
	var err error
	if ctx.Responder.Replied() {
		err = ctx.Responder.FollowUp(genericErrorNotice, true)
	} else {
		err = ctx.Responder.Reply(genericErrorNotice, true)
	}
	if err != nil {
		log.Printf("[ERR] Failed to send error notice: %v", err)
	}
}
