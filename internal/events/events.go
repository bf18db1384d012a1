// Package events holds the gateway event bindings: lifecycle logging, the
// welcome message and the verification component/modal flow.
package events

import (
	"github.com/echostudios/echobot/internal/command"
)

// Event names, matching the gateway events the bot package forwards.
const (
	EventReady             = "ready"
	EventGuildCreate       = "guildCreate"
	EventGuildMemberAdd    = "guildMemberAdd"
	EventInteractionCreate = "interactionCreate"
)

const categoryGeneral = "General"

// Definitions returns every built-in event binding.
func Definitions() []command.EventDefinition {
	return []command.EventDefinition{
		{Name: EventReady, Category: categoryGeneral, Once: true, Handler: onReady},
		{Name: EventGuildCreate, Category: categoryGeneral, Handler: onGuildCreate},
		{Name: EventGuildMemberAdd, Category: categoryGeneral, Handler: onGuildMemberAdd},
		{Name: EventInteractionCreate, Category: categoryGeneral, Handler: onInteractionCreate},
	}
}
