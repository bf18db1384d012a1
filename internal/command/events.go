package command

import (
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/echostudios/echobot/internal/config"
)

// EventHandler reacts to a platform event. Failures are logged per binding
// and never stop delivery to later bindings.
type EventHandler func(ctx *EventContext) error

// EventContext carries the session, the raw event payload and the injected
// collaborators into an event handler.
type EventContext struct {
	Session  *discordgo.Session
	Payload  any
	Store    GuildStore
	Settings *config.Settings
	Commands *Registry
}

// EventDefinition is the raw shape of an event binding. Only Name and Handler
// are required.
type EventDefinition struct {
	Name     string
	Category string
	// Once bindings fire for their first matching event only, then drop out
	// of the active set.
	Once     bool
	Disabled bool
	Handler  EventHandler
}

// EventBinding is a registered event listener. Multiple bindings may share an
// event name; they fire in registration order.
type EventBinding struct {
	Name     string
	Category string
	Once     bool
	Handler  EventHandler

	mu      sync.Mutex
	enabled bool
	fired   bool
}

// Enabled reports whether the binding is currently eligible to fire.
func (b *EventBinding) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled && !(b.Once && b.fired)
}

// SetEnabled toggles the binding.
func (b *EventBinding) SetEnabled(enabled bool) {
	b.mu.Lock()
	b.enabled = enabled
	b.mu.Unlock()
}

// Claim atomically reserves the right to fire. For once bindings it returns
// true exactly one time, so re-delivery of the same event cannot re-trigger.
func (b *EventBinding) Claim() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.enabled || (b.Once && b.fired) {
		return false
	}
	if b.Once {
		b.fired = true
	}
	return true
}

// LoadEvents validates and registers a batch of event bindings. Invalid
// definitions are skipped with a reason; the rest of the batch still loads.
func (r *Registry) LoadEvents(defs []EventDefinition) Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	report := Report{Total: len(defs)}
	for _, def := range defs {
		if reason := validateEvent(def); reason != "" {
			name := def.Name
			if name == "" {
				name = "(unnamed)"
			}
			log.Printf("[WARN] Event '%s' is invalid, skipped: %s", name, reason)
			report.Rejected = append(report.Rejected, Rejection{Name: name, Reason: reason})
			continue
		}

		binding := &EventBinding{
			Name:     def.Name,
			Category: def.Category,
			Once:     def.Once,
			Handler:  def.Handler,
			enabled:  !def.Disabled,
		}
		r.bindings = append(r.bindings, binding)
		r.byEvent[def.Name] = append(r.byEvent[def.Name], binding)
		report.Loaded++
	}
	return report
}

func validateEvent(def EventDefinition) string {
	if def.Name == "" && def.Handler == nil {
		return "missing [name handler]"
	}
	if def.Name == "" {
		return "missing [name]"
	}
	if def.Handler == nil {
		return "missing [handler]"
	}
	return ""
}

// Bindings returns the bindings registered for an event name, in registration
// order, including currently inactive ones.
func (r *Registry) Bindings(name string) []*EventBinding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*EventBinding(nil), r.byEvent[name]...)
}

// ActiveBindings returns the bindings for an event name that are still
// eligible to fire.
func (r *Registry) ActiveBindings(name string) []*EventBinding {
	var active []*EventBinding
	for _, b := range r.Bindings(name) {
		if b.Enabled() {
			active = append(active, b)
		}
	}
	return active
}
