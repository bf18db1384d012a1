package commands

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echostudios/echobot/internal/command"
	"github.com/echostudios/echobot/internal/config"
	"github.com/echostudios/echobot/internal/verify"
)

// Every built-in definition must pass registry validation as shipped.
func TestDefinitionsLoadCleanly(t *testing.T) {
	reg := command.NewRegistry()
	report := reg.LoadCommands(Definitions())

	assert.Empty(t, report.Rejected)
	assert.Equal(t, report.Total, report.Loaded)

	for _, name := range []string{"ping", "help", "8ball", "userinfo", "dbstats", "setup-verify"} {
		desc, ok := reg.Get(name)
		require.True(t, ok, "command %q must be registered", name)
		assert.True(t, desc.Enabled)
		assert.Equal(t, name, desc.Data.Name, "slash descriptor name must match")
	}
}

func TestAdminCommandsRequireAdministrator(t *testing.T) {
	reg := command.NewRegistry()
	reg.LoadCommands(Definitions())

	for _, name := range []string{"dbstats", "setup-verify"} {
		desc, ok := reg.Get(name)
		require.True(t, ok)
		assert.EqualValues(t, discordgo.PermissionAdministrator, desc.Permissions, name)
	}
}

func TestSetupMessageReflectsConfig(t *testing.T) {
	settings := config.DefaultSettings(nil)

	cfg := verify.DefaultConfig()
	cfg.Enabled = true
	cfg.VerifiedRoleID = "role123"

	msg, menuComp := SetupMessage(cfg, settings)

	require.GreaterOrEqual(t, len(msg.Fields), 8)
	assert.Equal(t, "`✅` Enabled", msg.Fields[0].Value)
	assert.Equal(t, "<@&role123>", msg.Fields[1].Value)
	assert.Equal(t, "`❌` Not configured", msg.Fields[2].Value, "unset channel shows as unconfigured")
	assert.Equal(t, settings.Colors.Primary, msg.Color)

	row, ok := menuComp.(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 1)
	menu, ok := row.Components[0].(discordgo.SelectMenu)
	require.True(t, ok)
	assert.Equal(t, SetupMenuID, menu.CustomID)
	require.Len(t, menu.Options, 9)

	// The toggle entry flips with the enabled state.
	assert.Equal(t, "Disable System", menu.Options[0].Label)
	cfg.Enabled = false
	_, menuComp = SetupMessage(cfg, settings)
	menu = menuComp.(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.Equal(t, "Enable System", menu.Options[0].Label)

	values := make([]string, len(menu.Options))
	for i, opt := range menu.Options {
		values[i] = opt.Value
	}
	assert.Equal(t, []string{
		SetupToggleSystem, SetupVerifiedRole, SetupVerifyChannel, SetupLogChannel,
		SetupCustomizeButton, SetupCustomizeColors, SetupCustomizeEmbed,
		SetupSendEmbed, SetupTest,
	}, values)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, "abcde...", truncate("abcdefgh", 5))
	// Multibyte text must be cut on rune boundaries.
	assert.Equal(t, "héll...", truncate("héllo wörld", 4))
}
