package command

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDefinition(name, category string) Definition {
	return Definition{
		Name:        name,
		Description: "test command",
		Category:    category,
		Data:        &discordgo.ApplicationCommand{Name: name, Description: "test command"},
		Handler:     func(ctx *Context) error { return nil },
	}
}

// TestLoadCommandsValidation verifies that a definition missing any required
// field is rejected with a reason while the rest of the batch still loads.
func TestLoadCommandsValidation(t *testing.T) {
	noName := validDefinition("", "General")
	noDescription := validDefinition("no-desc", "General")
	noDescription.Description = ""
	noData := validDefinition("no-data", "General")
	noData.Data = nil
	noHandler := validDefinition("no-handler", "General")
	noHandler.Handler = nil

	reg := NewRegistry()
	report := reg.LoadCommands([]Definition{
		validDefinition("good", "General"),
		noName,
		noDescription,
		noData,
		noHandler,
		validDefinition("also-good", "Utility"),
	})

	assert.Equal(t, 2, report.Loaded)
	assert.Equal(t, 6, report.Total)
	require.Len(t, report.Rejected, 4)
	assert.Equal(t, "(unnamed)", report.Rejected[0].Name)
	assert.Contains(t, report.Rejected[1].Reason, "description")
	assert.Contains(t, report.Rejected[2].Reason, "data")
	assert.Contains(t, report.Rejected[3].Reason, "handler")

	_, ok := reg.Get("good")
	assert.True(t, ok)
	_, ok = reg.Get("also-good")
	assert.True(t, ok)
	for _, name := range []string{"no-desc", "no-data", "no-handler"} {
		_, ok := reg.Get(name)
		assert.False(t, ok, "rejected command %q must not be indexed", name)
	}
	assert.Len(t, reg.All(), 2)
}

func TestLoadCommandsRejectsNegativeCooldown(t *testing.T) {
	def := validDefinition("bad-cooldown", "General")
	def.Cooldown = -1

	reg := NewRegistry()
	report := reg.LoadCommands([]Definition{def})

	assert.Zero(t, report.Loaded)
	require.Len(t, report.Rejected, 1)
	assert.Equal(t, "negative cooldown", report.Rejected[0].Reason)
}

// TestLoadCommandsDuplicateOverwrite verifies last-write-wins on duplicate
// names: one registry entry remains, holding the later definition.
func TestLoadCommandsDuplicateOverwrite(t *testing.T) {
	first := validDefinition("dup", "General")
	second := validDefinition("dup", "Utility")
	second.Description = "the second one"

	reg := NewRegistry()
	report := reg.LoadCommands([]Definition{first, second})

	assert.Equal(t, 2, report.Loaded)
	desc, ok := reg.Get("dup")
	require.True(t, ok)
	assert.Equal(t, "the second one", desc.Description)
	assert.Equal(t, "Utility", desc.Category)

	// The earlier definition must be gone from its category index too.
	assert.Empty(t, reg.Category("General"))
	require.Len(t, reg.Category("Utility"), 1)
	assert.Len(t, reg.All(), 1)
}

func TestCategoriesKeepInsertionOrder(t *testing.T) {
	reg := NewRegistry()
	reg.LoadCommands([]Definition{
		validDefinition("a", "General"),
		validDefinition("b", "Utility"),
		validDefinition("c", "General"),
		validDefinition("d", "Administration"),
	})

	assert.Equal(t, []string{"General", "Utility", "Administration"}, reg.Categories())

	general := reg.Category("General")
	require.Len(t, general, 2)
	assert.Equal(t, "a", general[0].Name)
	assert.Equal(t, "c", general[1].Name)
}

func TestSetEnabled(t *testing.T) {
	reg := NewRegistry()
	reg.LoadCommands([]Definition{validDefinition("toggle-me", "General")})

	desc, ok := reg.Get("toggle-me")
	require.True(t, ok)
	assert.True(t, desc.Enabled)

	assert.True(t, reg.SetEnabled("toggle-me", false))
	desc, _ = reg.Get("toggle-me")
	assert.False(t, desc.Enabled)

	assert.False(t, reg.SetEnabled("no-such-command", true))
}

func TestLoadEventsValidation(t *testing.T) {
	handler := func(ctx *EventContext) error { return nil }

	reg := NewRegistry()
	report := reg.LoadEvents([]EventDefinition{
		{Name: "ready", Handler: handler},
		{Name: "", Handler: handler},
		{Name: "guildMemberAdd"},
		{Name: "interactionCreate", Handler: handler},
	})

	assert.Equal(t, 2, report.Loaded)
	require.Len(t, report.Rejected, 2)
	assert.Contains(t, report.Rejected[0].Reason, "name")
	assert.Contains(t, report.Rejected[1].Reason, "handler")

	assert.Len(t, reg.Bindings("ready"), 1)
	assert.Empty(t, reg.Bindings("guildMemberAdd"))
}

func TestEventBindingsShareNames(t *testing.T) {
	handler := func(ctx *EventContext) error { return nil }

	reg := NewRegistry()
	report := reg.LoadEvents([]EventDefinition{
		{Name: "interactionCreate", Handler: handler},
		{Name: "interactionCreate", Handler: handler},
	})

	assert.Equal(t, 2, report.Loaded)
	assert.Len(t, reg.Bindings("interactionCreate"), 2)
}

func TestOnceBindingClaim(t *testing.T) {
	reg := NewRegistry()
	reg.LoadEvents([]EventDefinition{
		{Name: "ready", Once: true, Handler: func(ctx *EventContext) error { return nil }},
	})

	binding := reg.Bindings("ready")[0]
	assert.True(t, binding.Claim())
	assert.False(t, binding.Claim(), "once binding must claim exactly one time")
	assert.Empty(t, reg.ActiveBindings("ready"))
}

func TestDisabledBindingDoesNotClaim(t *testing.T) {
	reg := NewRegistry()
	reg.LoadEvents([]EventDefinition{
		{Name: "guildCreate", Disabled: true, Handler: func(ctx *EventContext) error { return nil }},
	})

	binding := reg.Bindings("guildCreate")[0]
	assert.False(t, binding.Claim())

	binding.SetEnabled(true)
	assert.True(t, binding.Claim())
}
