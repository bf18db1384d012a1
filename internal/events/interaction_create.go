package events

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/echostudios/echobot/internal/command"
	"github.com/echostudios/echobot/internal/commands"
	"github.com/echostudios/echobot/internal/verify"
)

// onInteractionCreate handles the component and modal interactions of the
// verification flow. Slash commands never reach this binding; the bot routes
// them straight to the dispatcher.
func onInteractionCreate(ctx *command.EventContext) error {
	i, ok := ctx.Payload.(*discordgo.InteractionCreate)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", ctx.Payload)
	}

	r := command.NewResponder(ctx.Session, i)
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		return handleComponent(ctx, i, r)
	case discordgo.InteractionModalSubmit:
		return handleModal(ctx, i, r)
	}
	return nil
}

func handleComponent(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder) error {
	data := i.MessageComponentData()

	if data.CustomID == verify.ButtonID {
		return handleVerifyButton(ctx, i, r)
	}

	if data.CustomID == commands.SetupMenuID {
		if !isAdministrator(i) {
			return r.Reply("`❌` **You don't have permission to configure the system.**", true)
		}
		if len(data.Values) == 0 {
			return r.Reply("`❌` **Unrecognized option.**", true)
		}
		return handleSetupAction(ctx, i, r, data.Values[0])
	}

	log.Printf("[WARN] No matching component for customID: %s", data.CustomID)
	return nil
}

func handleSetupAction(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder, action string) error {
	switch action {
	case commands.SetupToggleSystem:
		return toggleVerification(ctx, i, r)
	case commands.SetupVerifiedRole:
		return showVerifiedRoleModal(ctx, i, r)
	case commands.SetupVerifyChannel:
		return showVerificationChannelModal(ctx, i, r)
	case commands.SetupLogChannel:
		return showLogChannelModal(ctx, i, r)
	case commands.SetupCustomizeButton:
		return showButtonModal(ctx, i, r)
	case commands.SetupCustomizeColors:
		return showColorsModal(ctx, i, r)
	case commands.SetupCustomizeEmbed:
		return showEmbedModal(ctx, i, r)
	case commands.SetupSendEmbed:
		return sendVerificationEmbed(ctx, i, r)
	case commands.SetupTest:
		return testVerification(ctx, i, r)
	default:
		log.Printf("[WARN] Unrecognized setup menu option: %s", action)
		return r.Reply("`❌` **Unrecognized option.**", true)
	}
}

// handleVerifyButton grants the configured role to the clicking member.
func handleVerifyButton(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder) error {
	cfg, err := ctx.Store.GuildVerification(context.Background(), i.GuildID)
	if err != nil {
		log.Printf("[ERR] Failed to load verification config for guild %s: %v", i.GuildID, err)
		return r.Reply("`❌` **Error during verification. Contact an administrator.**", true)
	}

	if !cfg.Enabled {
		return r.Reply("`❌` **Verification system disabled.**", true)
	}
	if cfg.VerifiedRoleID == "" {
		return r.Reply("`❌` **Verification role not configured.**", true)
	}
	if !guildHasRole(ctx.Session, i.GuildID, cfg.VerifiedRoleID) {
		return r.Reply("`❌` **Verification role not found in server.**", true)
	}

	for _, roleID := range i.Member.Roles {
		if roleID == cfg.VerifiedRoleID {
			return r.Reply("`✅` **You are already verified!**", true)
		}
	}

	if err := ctx.Session.GuildMemberRoleAdd(i.GuildID, i.Member.User.ID, cfg.VerifiedRoleID); err != nil {
		log.Printf("[ERR] Failed to assign verified role in guild %s to user %s: %v", i.GuildID, i.Member.User.ID, err)
		return r.Reply("`❌` **Error during verification. Contact an administrator.**", true)
	}

	if err := r.Reply(cfg.SuccessMessage, true); err != nil {
		return err
	}
	log.Printf("[INFO] ✅ User %s verified in guild %s", i.Member.User.Username, i.GuildID)

	if cfg.LogChannelID != "" {
		content := fmt.Sprintf("✅ **%s** has been verified successfully!", i.Member.User.Username)
		if _, err := ctx.Session.ChannelMessageSend(cfg.LogChannelID, content); err != nil {
			log.Printf("[WARN] Failed to send verification log message: %v", err)
		}
	}
	return nil
}

func toggleVerification(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder) error {
	cfg, err := ctx.Store.GuildVerification(context.Background(), i.GuildID)
	if err != nil {
		return storeFailure(r, err)
	}

	enabled := !cfg.Enabled
	patch := &verify.Patch{Enabled: &enabled}
	if err := ctx.Store.PatchGuildVerification(context.Background(), i.GuildID, patch); err != nil {
		return storeFailure(r, err)
	}

	refreshSetupMessage(ctx, i)
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	return r.Reply(fmt.Sprintf("`✅` **Verification system %s successfully!**", state), true)
}

func sendVerificationEmbed(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder) error {
	cfg, err := ctx.Store.GuildVerification(context.Background(), i.GuildID)
	if err != nil {
		return storeFailure(r, err)
	}

	if cfg.VerificationChannelID == "" {
		return r.Reply("`❌` **Verification channel not configured. Configure the channel first.**", true)
	}
	if !guildHasChannel(ctx.Session, i.GuildID, cfg.VerificationChannelID) {
		return r.Reply("`❌` **Verification channel not found in server.**", true)
	}

	_, err = ctx.Session.ChannelMessageSendComplex(cfg.VerificationChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{verify.Embed(cfg, ctx.Settings.Colors.Primary)},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{verify.Button(cfg)}},
		},
	})
	if err != nil {
		log.Printf("[ERR] Failed to send verification embed in guild %s: %v", i.GuildID, err)
		return r.Reply("`❌` **Error sending verification embed.**", true)
	}

	return r.Reply(fmt.Sprintf("`✅` **Verification embed sent successfully to <#%s>!**", cfg.VerificationChannelID), true)
}

func testVerification(ctx *command.EventContext, i *discordgo.InteractionCreate, r command.Responder) error {
	cfg, err := ctx.Store.GuildVerification(context.Background(), i.GuildID)
	if err != nil {
		return storeFailure(r, err)
	}

	if !cfg.Enabled {
		return r.Reply("`❌` **Verification system is not enabled.**", true)
	}
	if cfg.VerifiedRoleID == "" {
		return r.Reply("`❌` **Verification role not configured.**", true)
	}
	if !guildHasRole(ctx.Session, i.GuildID, cfg.VerifiedRoleID) {
		return r.Reply("`❌` **Verification role not found in server.**", true)
	}

	return r.Reply(fmt.Sprintf(
		"`✅` **Test completed!** The system is working correctly.\n\n**Role:** <@&%s>\n**Button text:** %s\n**Button emoji:** %s",
		cfg.VerifiedRoleID, cfg.ButtonText, cfg.ButtonEmoji), true)
}

// refreshSetupMessage re-renders the setup embed on the message that hosts
// the menu, so the shown configuration tracks the stored one.
func refreshSetupMessage(ctx *command.EventContext, i *discordgo.InteractionCreate) {
	if i.Message == nil {
		return
	}
	cfg, err := ctx.Store.GuildVerification(context.Background(), i.GuildID)
	if err != nil {
		log.Printf("[WARN] Failed to refresh setup message: %v", err)
		return
	}

	setupEmbed, menu := commands.SetupMessage(cfg, ctx.Settings)
	_, err = ctx.Session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    i.ChannelID,
		ID:         i.Message.ID,
		Embeds:     &[]*discordgo.MessageEmbed{setupEmbed},
		Components: &[]discordgo.MessageComponent{menu},
	})
	if err != nil {
		log.Printf("[WARN] Failed to edit setup message: %v", err)
	}
}

func storeFailure(r command.Responder, err error) error {
	log.Printf("[ERR] Guild store failure: %v", err)
	return r.Reply("`❌` **Error during configuration.**", true)
}

func isAdministrator(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

func guildHasRole(s *discordgo.Session, guildID, roleID string) bool {
	if role, err := s.State.Role(guildID, roleID); err == nil && role != nil {
		return true
	}
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return false
	}
	for _, role := range roles {
		if role.ID == roleID {
			return true
		}
	}
	return false
}

func guildHasChannel(s *discordgo.Session, guildID, channelID string) bool {
	ch, err := s.State.Channel(channelID)
	if err != nil || ch == nil {
		ch, err = s.Channel(channelID)
		if err != nil || ch == nil {
			return false
		}
	}
	return ch.GuildID == guildID
}
