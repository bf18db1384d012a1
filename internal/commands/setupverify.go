package commands

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/echostudios/echobot/internal/command"
	"github.com/echostudios/echobot/internal/config"
	"github.com/echostudios/echobot/internal/verify"
)

// Component IDs for the verification setup flow. The interactionCreate event
// binding routes on these.
const (
	SetupMenuID = "setup_verification_menu"

	SetupToggleSystem    = "toggle_system"
	SetupVerifiedRole    = "set_verified_role"
	SetupVerifyChannel   = "set_verification_channel"
	SetupLogChannel      = "set_log_channel"
	SetupCustomizeButton = "customize_button"
	SetupCustomizeColors = "customize_colors"
	SetupCustomizeEmbed  = "customize_embed"
	SetupSendEmbed       = "send_verification_embed"
	SetupTest            = "test_verification"
)

func setupVerifyDefinition() command.Definition {
	adminOnly := int64(discordgo.PermissionAdministrator)
	return command.Definition{
		Name:        "setup-verify",
		Description: "Configure the verification system for the server",
		Category:    CategoryAdministration,
		Permissions: adminOnly,
		Data: &discordgo.ApplicationCommand{
			Name:                     "setup-verify",
			Description:              "Configure the verification system for the server",
			DefaultMemberPermissions: &adminOnly,
		},
		Handler: runSetupVerify,
	}
}

func runSetupVerify(ctx *command.Context) error {
	cfg, err := ctx.Store.GuildVerification(context.Background(), ctx.GuildID())
	if err != nil {
		return fmt.Errorf("failed to load verification config: %w", err)
	}

	msg, menu := SetupMessage(cfg, ctx.Settings)
	return ctx.Responder.ReplyComplex(&discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{msg},
		Components: []discordgo.MessageComponent{menu},
		Flags:      discordgo.MessageFlagsEphemeral,
	})
}

// SetupMessage builds the setup embed and its select menu from the current
// config. Also used by the setup handlers to refresh the message after a
// patch.
func SetupMessage(cfg *verify.Config, settings *config.Settings) (*discordgo.MessageEmbed, discordgo.MessageComponent) {
	setupEmbed := &discordgo.MessageEmbed{
		Color: settings.Colors.Primary,
		Title: "🔧 **Verification System Setup**",
		Description: "Configure the verification system for your server.\n\n" +
			"**How it works:**\n" +
			"1. New members receive a welcome message with a verification button\n" +
			"2. When they click the button, they automatically receive the verified role\n" +
			"3. The system is fully customizable\n\n**Current configuration:**",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📋 System Status", Value: statusValue(cfg.Enabled), Inline: true},
			{Name: "🎭 Verified Role", Value: mention(cfg.VerifiedRoleID, "<@&%s>"), Inline: true},
			{Name: "📢 Verification Channel", Value: mention(cfg.VerificationChannelID, "<#%s>"), Inline: true},
			{Name: "📝 Log Channel", Value: mention(cfg.LogChannelID, "<#%s>"), Inline: true},
			{Name: "🔘 Button Text", Value: cfg.ButtonText, Inline: true},
			{Name: "😀 Button Emoji", Value: cfg.ButtonEmoji, Inline: true},
			{Name: "🎨 Button Color", Value: cfg.ButtonColor, Inline: true},
			{Name: "🌈 Embed Color", Value: cfg.EmbedColor, Inline: true},
			{Name: "📝 Embed Title", Value: cfg.Embed.Title},
			{Name: "📄 Embed Description", Value: truncate(cfg.Embed.Description, 50)},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Use the menu below to configure the system"},
	}

	toggleLabel, toggleDesc, toggleEmoji := "Enable System", "Enable the verification system", "✅"
	if cfg.Enabled {
		toggleLabel, toggleDesc, toggleEmoji = "Disable System", "Disable the verification system", "❌"
	}

	menu := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    SetupMenuID,
				Placeholder: "Select an action to configure the system...",
				Options: []discordgo.SelectMenuOption{
					{Label: toggleLabel, Description: toggleDesc, Value: SetupToggleSystem, Emoji: &discordgo.ComponentEmoji{Name: toggleEmoji}},
					{Label: "Set Verified Role", Description: "Configure the role to assign after verification", Value: SetupVerifiedRole, Emoji: &discordgo.ComponentEmoji{Name: "🎭"}},
					{Label: "Set Verification Channel", Description: "Configure the channel for the verification embed", Value: SetupVerifyChannel, Emoji: &discordgo.ComponentEmoji{Name: "📢"}},
					{Label: "Set Log Channel", Description: "Configure the channel for verification logs", Value: SetupLogChannel, Emoji: &discordgo.ComponentEmoji{Name: "📝"}},
					{Label: "Customize Button", Description: "Customize button text and emoji", Value: SetupCustomizeButton, Emoji: &discordgo.ComponentEmoji{Name: "🔧"}},
					{Label: "Customize Colors", Description: "Customize button and embed colors", Value: SetupCustomizeColors, Emoji: &discordgo.ComponentEmoji{Name: "🎨"}},
					{Label: "Customize Embed", Description: "Customize title, description and other embed elements", Value: SetupCustomizeEmbed, Emoji: &discordgo.ComponentEmoji{Name: "📝"}},
					{Label: "Send Verification Embed", Description: "Send the verification embed to the configured channel", Value: SetupSendEmbed, Emoji: &discordgo.ComponentEmoji{Name: "📤"}},
					{Label: "Test System", Description: "Test the verification system configuration", Value: SetupTest, Emoji: &discordgo.ComponentEmoji{Name: "🧪"}},
				},
			},
		},
	}

	return setupEmbed, menu
}

func statusValue(enabled bool) string {
	if enabled {
		return "`✅` Enabled"
	}
	return "`❌` Disabled"
}

func mention(id, format string) string {
	if id == "" {
		return "`❌` Not configured"
	}
	return fmt.Sprintf(format, id)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
