package command

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/echostudios/echobot/internal/config"
	"github.com/echostudios/echobot/internal/verify"
)

// Handler executes a dispatched command. It is invoked at most once per
// interaction and replies through ctx.Responder.
type Handler func(ctx *Context) error

// Definition is the raw, unvalidated shape a command ships with. The registry
// validates it and turns it into a Descriptor.
type Definition struct {
	Name        string
	Description string
	Category    string
	// Cooldown between invocations of this command per user. Zero means none.
	Cooldown time.Duration
	// Permissions the caller must hold (discordgo permission bits). Zero means open.
	Permissions int64
	// Data is the slash-command descriptor registered with the platform.
	Data    *discordgo.ApplicationCommand
	Handler Handler
	// Disabled definitions load into the registry but refuse dispatch.
	Disabled bool
}

// Descriptor is the registered, validated form of a command. Immutable after
// registration apart from the enabled flag.
type Descriptor struct {
	Name        string
	Description string
	Category    string
	Cooldown    time.Duration
	Permissions int64
	Data        *discordgo.ApplicationCommand
	Handler     Handler
	Enabled     bool
}

// GuildStore is the persistent per-guild configuration the handlers work
// against. Implemented by the Mongo store; faked in tests.
type GuildStore interface {
	GuildVerification(ctx context.Context, guildID string) (*verify.Config, error)
	PatchGuildVerification(ctx context.Context, guildID string, patch *verify.Patch) error
	Stats(ctx context.Context) (map[string]int64, error)
	Ping(ctx context.Context) error
}

// Context carries everything a command handler may need: caller identity and
// arguments via Event, a reply capability, and the injected collaborators.
// Nothing here is reached through globals.
type Context struct {
	Session   *discordgo.Session
	Event     *discordgo.InteractionCreate
	Responder Responder
	Store     GuildStore
	Settings  *config.Settings
	Commands  *Registry
}

// GuildID returns the guild the interaction came from ("" in DMs).
func (c *Context) GuildID() string {
	return c.Event.GuildID
}

// UserID returns the invoking user's ID regardless of guild or DM context.
func (c *Context) UserID() string {
	if c.Event.Member != nil && c.Event.Member.User != nil {
		return c.Event.Member.User.ID
	}
	if c.Event.User != nil {
		return c.Event.User.ID
	}
	return ""
}

// Username returns the invoking user's name for log lines.
func (c *Context) Username() string {
	if c.Event.Member != nil && c.Event.Member.User != nil {
		return c.Event.Member.User.Username
	}
	if c.Event.User != nil {
		return c.Event.User.Username
	}
	return ""
}

// HasPermissions reports whether the caller holds all the given permission bits.
func (c *Context) HasPermissions(perms int64) bool {
	if perms == 0 {
		return true
	}
	if c.Event.Member == nil {
		return false
	}
	return c.Event.Member.Permissions&perms == perms
}
