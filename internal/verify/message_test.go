package verify

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorInt(t *testing.T) {
	assert.Equal(t, 0x0099ff, ColorInt("#0099ff", 0))
	assert.Equal(t, 0xffffff, ColorInt("#FFFFFF", 0))
	assert.Equal(t, 0x123456, ColorInt("123456", 0), "leading # is optional here")
	assert.Equal(t, 0xabcdef, ColorInt("#zzz", 0xabcdef), "malformed falls back to default")
	assert.Equal(t, 0xabcdef, ColorInt("", 0xabcdef))
}

func TestButton(t *testing.T) {
	cfg := DefaultConfig()
	btn := Button(cfg)

	assert.Equal(t, ButtonID, btn.CustomID)
	assert.Equal(t, "Verify", btn.Label)
	assert.Equal(t, discordgo.SuccessButton, btn.Style)
	require.NotNil(t, btn.Emoji)
	assert.Equal(t, "✅", btn.Emoji.Name)

	cfg.ButtonColor = ButtonDanger
	cfg.ButtonEmoji = ""
	btn = Button(cfg)
	assert.Equal(t, discordgo.DangerButton, btn.Style)
	assert.Nil(t, btn.Emoji)
}

func TestEmbed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EmbedColor = "#ff0000"
	cfg.Embed.ThumbnailURL = "https://example.com/thumb.png"

	e := Embed(cfg, 0x0099ff)
	assert.Equal(t, cfg.Embed.Title, e.Title)
	assert.Equal(t, 0xff0000, e.Color)
	require.NotNil(t, e.Thumbnail)
	assert.Equal(t, "https://example.com/thumb.png", e.Thumbnail.URL)
	require.NotNil(t, e.Footer)
	assert.Equal(t, cfg.Embed.Footer.Text, e.Footer.Text)
	assert.NotEmpty(t, e.Timestamp)

	cfg.EmbedColor = "garbage"
	cfg.Embed.ShowTimestamp = false
	e = Embed(cfg, 0x0099ff)
	assert.Equal(t, 0x0099ff, e.Color, "malformed color falls back to the palette default")
	assert.Empty(t, e.Timestamp)
}
