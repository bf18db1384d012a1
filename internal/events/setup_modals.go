package events

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/echostudios/echobot/internal/command"
	"github.com/echostudios/echobot/internal/verify"
)

// Modal custom IDs for the setup flow.
const (
	modalVerifiedRole  = "modal_verified_role"
	modalVerifyChannel = "modal_verification_channel"
	modalLogChannel    = "modal_log_channel"
	modalButton        = "modal_button_customize"
	modalColors        = "modal_customize_colors"
	modalEmbed         = "modal_customize_embed"
)

func textInput(customID, label, placeholder, value string, required bool, style discordgo.TextInputStyle) discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    customID,
				Label:       label,
				Style:       style,
				Placeholder: placeholder,
				Value:       value,
				Required:    required,
			},
		},
	}
}

func showVerifiedRoleModal(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder) error {
	cfg, err := ctx.Store.GuildVerification(context.Background(), i.GuildID)
	if err != nil {
		return storeFailure(r, err)
	}
	return r.ShowModal(modalVerifiedRole, "Set Verified Role", []discordgo.MessageComponent{
		textInput("verified_role_input", "Role ID to assign", "Ex: 1234567890123456789", cfg.VerifiedRoleID, true, discordgo.TextInputShort),
	})
}

func showVerificationChannelModal(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder) error {
	cfg, err := ctx.Store.GuildVerification(context.Background(), i.GuildID)
	if err != nil {
		return storeFailure(r, err)
	}
	return r.ShowModal(modalVerifyChannel, "Set Verification Channel", []discordgo.MessageComponent{
		textInput("verification_channel_input", "Channel ID for verification embed", "Ex: 1234567890123456789", cfg.VerificationChannelID, true, discordgo.TextInputShort),
	})
}

func showLogChannelModal(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder) error {
	cfg, err := ctx.Store.GuildVerification(context.Background(), i.GuildID)
	if err != nil {
		return storeFailure(r, err)
	}
	return r.ShowModal(modalLogChannel, "Set Log Channel", []discordgo.MessageComponent{
		textInput("log_channel_input", "Channel ID for logs", "Ex: 1234567890123456789", cfg.LogChannelID, false, discordgo.TextInputShort),
	})
}

func showButtonModal(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder) error {
	cfg, err := ctx.Store.GuildVerification(context.Background(), i.GuildID)
	if err != nil {
		return storeFailure(r, err)
	}
	return r.ShowModal(modalButton, "Customize Verification Button", []discordgo.MessageComponent{
		textInput("button_text_input", "Button text", "Ex: Verify", cfg.ButtonText, true, discordgo.TextInputShort),
		textInput("button_emoji_input", "Button emoji", "Ex: ✅", cfg.ButtonEmoji, false, discordgo.TextInputShort),
	})
}

func showColorsModal(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder) error {
	cfg, err := ctx.Store.GuildVerification(context.Background(), i.GuildID)
	if err != nil {
		return storeFailure(r, err)
	}
	return r.ShowModal(modalColors, "Customize Colors", []discordgo.MessageComponent{
		textInput("button_color_input", "Button color", "Success, Primary, Secondary, Danger", cfg.ButtonColor, true, discordgo.TextInputShort),
		textInput("embed_color_input", "Embed color (hexadecimal)", "Ex: #0099ff", cfg.EmbedColor, true, discordgo.TextInputShort),
	})
}

func showEmbedModal(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder) error {
	cfg, err := ctx.Store.GuildVerification(context.Background(), i.GuildID)
	if err != nil {
		return storeFailure(r, err)
	}
	return r.ShowModal(modalEmbed, "Customize Verification Embed", []discordgo.MessageComponent{
		textInput("embed_title_input", "Embed title", "Ex: 🔐 **Server Verification**", cfg.Embed.Title, true, discordgo.TextInputShort),
		textInput("embed_description_input", "Embed description", "Enter embed description...", cfg.Embed.Description, true, discordgo.TextInputParagraph),
		textInput("embed_thumbnail_input", "Thumbnail URL (optional)", "Ex: https://example.com/image.png", cfg.Embed.ThumbnailURL, false, discordgo.TextInputShort),
		textInput("embed_footer_text_input", "Footer text", "Ex: EchoBot Discord - Verification System", cfg.Embed.Footer.Text, false, discordgo.TextInputShort),
		textInput("embed_footer_icon_input", "Footer icon URL (optional)", "Ex: https://example.com/icon.png", cfg.Embed.Footer.IconURL, false, discordgo.TextInputShort),
	})
}

func handleModal(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder) error {
	data := i.ModalSubmitData()
	switch data.CustomID {
	case modalVerifiedRole:
		return submitVerifiedRole(ctx, i, r, data)
	case modalVerifyChannel:
		return submitVerificationChannel(ctx, i, r, data)
	case modalLogChannel:
		return submitLogChannel(ctx, i, r, data)
	case modalButton:
		return submitButton(ctx, i, r, data)
	case modalColors:
		return submitColors(ctx, i, r, data)
	case modalEmbed:
		return submitEmbed(ctx, i, r, data)
	default:
		log.Printf("[WARN] Unrecognized modal: %s", data.CustomID)
		return nil
	}
}

func modalValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, comp := range data.Components {
		row, ok := comp.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}

func submitVerifiedRole(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder, data discordgo.ModalSubmitInteractionData) error {
	roleID := modalValue(data, "verified_role_input")

	// Existence against the live guild is checked here; the store never
	// performs platform lookups.
	if !guildHasRole(ctx.Session, i.GuildID, roleID) {
		return r.Reply("`❌` **Role not found in server. Verify the role ID.**", true)
	}

	patch := &verify.Patch{VerifiedRoleID: &roleID}
	if err := ctx.Store.PatchGuildVerification(context.Background(), i.GuildID, patch); err != nil {
		return storeFailure(r, err)
	}

	refreshSetupMessage(ctx, i)
	return r.Reply(fmt.Sprintf("`✅` **Verification role set:** <@&%s>", roleID), true)
}

func submitVerificationChannel(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder, data discordgo.ModalSubmitInteractionData) error {
	channelID := modalValue(data, "verification_channel_input")
	if !guildHasChannel(ctx.Session, i.GuildID, channelID) {
		return r.Reply("`❌` **Channel not found in server. Verify the channel ID.**", true)
	}

	patch := &verify.Patch{VerificationChannelID: &channelID}
	if err := ctx.Store.PatchGuildVerification(context.Background(), i.GuildID, patch); err != nil {
		return storeFailure(r, err)
	}

	refreshSetupMessage(ctx, i)
	return r.Reply(fmt.Sprintf("`✅` **Verification channel set:** <#%s>", channelID), true)
}

func submitLogChannel(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder, data discordgo.ModalSubmitInteractionData) error {
	channelID := modalValue(data, "log_channel_input")
	if channelID != "" && !guildHasChannel(ctx.Session, i.GuildID, channelID) {
		return r.Reply("`❌` **Channel not found in server. Verify the channel ID.**", true)
	}

	patch := &verify.Patch{LogChannelID: &channelID}
	if err := ctx.Store.PatchGuildVerification(context.Background(), i.GuildID, patch); err != nil {
		return storeFailure(r, err)
	}

	refreshSetupMessage(ctx, i)
	action := "set"
	if channelID == "" {
		action = "removed"
	}
	return r.Reply(fmt.Sprintf("`✅` **Log channel %s successfully!**", action), true)
}

func submitButton(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder, data discordgo.ModalSubmitInteractionData) error {
	text := modalValue(data, "button_text_input")
	emoji := modalValue(data, "button_emoji_input")

	patch := &verify.Patch{ButtonText: &text, ButtonEmoji: &emoji}
	if err := ctx.Store.PatchGuildVerification(context.Background(), i.GuildID, patch); err != nil {
		return storeFailure(r, err)
	}

	refreshSetupMessage(ctx, i)
	return r.Reply(fmt.Sprintf("`✅` **Button customized successfully!**\n\n**Text:** %s\n**Emoji:** %s", text, emoji), true)
}

func submitColors(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder, data discordgo.ModalSubmitInteractionData) error {
	buttonColor := modalValue(data, "button_color_input")
	embedColor := modalValue(data, "embed_color_input")

	if !verify.ValidButtonColor(buttonColor) {
		return r.Reply("`❌` **Invalid button color. Use: Success, Primary, Secondary, Danger**", true)
	}
	if !verify.ValidHexColor(embedColor) {
		return r.Reply("`❌` **Invalid embed color. Use hexadecimal format (e.g. #0099ff)**", true)
	}

	patch := &verify.Patch{ButtonColor: &buttonColor, EmbedColor: &embedColor}
	if err := ctx.Store.PatchGuildVerification(context.Background(), i.GuildID, patch); err != nil {
		return storeFailure(r, err)
	}

	refreshSetupMessage(ctx, i)
	return r.Reply(fmt.Sprintf("`✅` **Colors customized successfully!**\n\n**Button color:** %s\n**Embed color:** %s", buttonColor, embedColor), true)
}

func submitEmbed(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder, data discordgo.ModalSubmitInteractionData) error {
	patch := &verify.Patch{
		Embed: &verify.EmbedPatch{
			Title:         modalValue(data, "embed_title_input"),
			Description:   modalValue(data, "embed_description_input"),
			ThumbnailURL:  modalValue(data, "embed_thumbnail_input"),
			FooterText:    modalValue(data, "embed_footer_text_input"),
			FooterIconURL: modalValue(data, "embed_footer_icon_input"),
			ShowTimestamp: true,
		},
	}
	if err := patch.Validate(); err != nil {
		return r.Reply("`❌` **Invalid thumbnail or footer icon URL.**", true)
	}

	if err := ctx.Store.PatchGuildVerification(context.Background(), i.GuildID, patch); err != nil {
		return storeFailure(r, err)
	}

	refreshSetupMessage(ctx, i)
	return r.Reply(fmt.Sprintf("`✅` **Embed customized successfully!**\n\n**Title:** %s", patch.Embed.Title), true)
}
