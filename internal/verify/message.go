package verify

import (
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// ButtonID is the component custom ID the verification button uses.
const ButtonID = "verify_user"

// ColorInt converts a "#rrggbb" string to the integer discordgo expects.
// Falls back to def when the string is malformed.
func ColorInt(hex string, def int) int {
	v, err := strconv.ParseInt(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return def
	}
	return int(v)
}

func buttonStyle(color string) discordgo.ButtonStyle {
	switch color {
	case ButtonPrimary:
		return discordgo.PrimaryButton
	case ButtonSecondary:
		return discordgo.SecondaryButton
	case ButtonDanger:
		return discordgo.DangerButton
	default:
		return discordgo.SuccessButton
	}
}

// Button builds the verification button from a guild's config.
func Button(cfg *Config) discordgo.Button {
	btn := discordgo.Button{
		CustomID: ButtonID,
		Label:    cfg.ButtonText,
		Style:    buttonStyle(cfg.ButtonColor),
	}
	if cfg.ButtonEmoji != "" {
		btn.Emoji = &discordgo.ComponentEmoji{Name: cfg.ButtonEmoji}
	}
	return btn
}

// Embed builds the verification embed sent to the verification channel.
func Embed(cfg *Config, defaultColor int) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Title:       cfg.Embed.Title,
		Description: cfg.Embed.Description,
		Color:       ColorInt(cfg.EmbedColor, defaultColor),
	}
	if cfg.Embed.ThumbnailURL != "" {
		e.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: cfg.Embed.ThumbnailURL}
	}
	if cfg.Embed.Footer.Text != "" || cfg.Embed.Footer.IconURL != "" {
		e.Footer = &discordgo.MessageEmbedFooter{
			Text:    cfg.Embed.Footer.Text,
			IconURL: cfg.Embed.Footer.IconURL,
		}
	}
	if cfg.Embed.ShowTimestamp {
		e.Timestamp = time.Now().Format(time.RFC3339)
	}
	return e
}
