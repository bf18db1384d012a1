package command

import (
	"fmt"
	"log"
	"sync"
)

// Registry indexes validated command descriptors and event bindings. Writes
// happen at load time; after that it is read-many from concurrent dispatches,
// with only enablement and once-firing flags mutating under the lock.
type Registry struct {
	mu         sync.RWMutex
	commands   map[string]*Descriptor
	categories []string
	byCategory map[string][]*Descriptor
	bindings   []*EventBinding
	byEvent    map[string][]*EventBinding
}

// Rejection records a definition that failed validation and why.
type Rejection struct {
	Name   string
	Reason string
}

// Report summarizes a load batch.
type Report struct {
	Loaded   int
	Total    int
	Rejected []Rejection
}

func NewRegistry() *Registry {
	return &Registry{
		commands:   map[string]*Descriptor{},
		byCategory: map[string][]*Descriptor{},
		byEvent:    map[string][]*EventBinding{},
	}
}

// LoadCommands validates and indexes a batch of command definitions. Invalid
// definitions are rejected with a reason and loading continues; a later
// definition reusing a name silently replaces the earlier one, surfaced only
// as a warning.
func (r *Registry) LoadCommands(defs []Definition) Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	report := Report{Total: len(defs)}
	for _, def := range defs {
		if reason := validateCommand(def); reason != "" {
			name := def.Name
			if name == "" {
				name = "(unnamed)"
			}
			log.Printf("[WARN] Command '%s' is invalid, skipped: %s", name, reason)
			report.Rejected = append(report.Rejected, Rejection{Name: name, Reason: reason})
			continue
		}

		desc := &Descriptor{
			Name:        def.Name,
			Description: def.Description,
			Category:    def.Category,
			Cooldown:    def.Cooldown,
			Permissions: def.Permissions,
			Data:        def.Data,
			Handler:     def.Handler,
			Enabled:     !def.Disabled,
		}

		if old, dup := r.commands[def.Name]; dup {
			log.Printf("[WARN] Duplicate command name '%s': definition from category '%s' overwritten", def.Name, old.Category)
			r.removeFromCategory(old)
		}
		r.commands[def.Name] = desc
		r.addToCategory(desc)
		report.Loaded++
	}
	return report
}

func validateCommand(def Definition) string {
	var missing []string
	if def.Name == "" {
		missing = append(missing, "name")
	}
	if def.Description == "" {
		missing = append(missing, "description")
	}
	if def.Data == nil {
		missing = append(missing, "data")
	}
	if def.Handler == nil {
		missing = append(missing, "handler")
	}
	if len(missing) > 0 {
		return fmt.Sprintf("missing %v", missing)
	}
	if def.Cooldown < 0 {
		return "negative cooldown"
	}
	return ""
}

func (r *Registry) addToCategory(desc *Descriptor) {
	if _, ok := r.byCategory[desc.Category]; !ok {
		r.categories = append(r.categories, desc.Category)
	}
	r.byCategory[desc.Category] = append(r.byCategory[desc.Category], desc)
}

func (r *Registry) removeFromCategory(desc *Descriptor) {
	list := r.byCategory[desc.Category]
	for i, d := range list {
		if d == desc {
			r.byCategory[desc.Category] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Get returns the descriptor registered under name.
func (r *Registry) Get(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.commands[name]
	return desc, ok
}

// Category returns the descriptors of one category in registration order.
func (r *Registry) Category(name string) []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Descriptor(nil), r.byCategory[name]...)
}

// Categories returns category names in first-registration order.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.categories...)
}

// All returns every registered descriptor, category-ordered.
func (r *Registry) All() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*Descriptor
	for _, cat := range r.categories {
		all = append(all, r.byCategory[cat]...)
	}
	return all
}

// SetEnabled toggles a command's enablement. Descriptors are never removed at
// runtime, only toggled.
func (r *Registry) SetEnabled(name string, enabled bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	desc, ok := r.commands[name]
	if !ok {
		return false
	}
	desc.Enabled = enabled
	log.Printf("[INFO] Command '%s' %s", name, map[bool]string{true: "enabled", false: "disabled"}[enabled])
	return true
}
