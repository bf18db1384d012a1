package dispatcher

import (
	"fmt"
	"log"

	"github.com/echostudios/echobot/internal/command"
)

// Emit delivers a platform event to every enabled binding registered for its
// name, in registration order. Once bindings fire a single time, then drop
// out. A binding failure is logged and does not stop delivery to the rest.
func (d *Dispatcher) Emit(name string, ctx *command.EventContext) {
	for _, binding := range d.commands.Bindings(name) {
		if !binding.Claim() {
			continue
		}
		if err := runBinding(binding, ctx); err != nil {
			log.Printf("[ERR] Error in '%s' event handler (category %s): %v", name, binding.Category, err)
		}
	}
}

func runBinding(b *command.EventBinding, ctx *command.EventContext) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("event handler panic: %v", r)
		}
	}()
	return b.Handler(ctx)
}
