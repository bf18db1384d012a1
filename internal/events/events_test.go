package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echostudios/echobot/internal/command"
)

func TestDefinitionsLoadCleanly(t *testing.T) {
	reg := command.NewRegistry()
	report := reg.LoadEvents(Definitions())

	assert.Empty(t, report.Rejected)
	assert.Equal(t, report.Total, report.Loaded)

	for _, name := range []string{EventReady, EventGuildCreate, EventGuildMemberAdd, EventInteractionCreate} {
		assert.Len(t, reg.Bindings(name), 1, name)
	}
}

// The ready binding is once-only: a gateway reconnect re-delivering ready must
// not re-run startup work.
func TestReadyBindingIsOnce(t *testing.T) {
	reg := command.NewRegistry()
	reg.LoadEvents(Definitions())

	binding := reg.Bindings(EventReady)[0]
	require.True(t, binding.Once)
	assert.True(t, binding.Claim())
	assert.False(t, binding.Claim())

	// The other bindings stay active across deliveries.
	member := reg.Bindings(EventGuildMemberAdd)[0]
	assert.True(t, member.Claim())
	assert.True(t, member.Claim())
}
