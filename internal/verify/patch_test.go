package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestValidHexColor(t *testing.T) {
	assert.True(t, ValidHexColor("#0099ff"))
	assert.True(t, ValidHexColor("#FFFFFF"))
	assert.True(t, ValidHexColor("#00AaFf"))

	assert.False(t, ValidHexColor("0099ff"), "missing leading #")
	assert.False(t, ValidHexColor("#09f"), "3-digit shorthand is not accepted")
	assert.False(t, ValidHexColor("#0099gg"))
	assert.False(t, ValidHexColor("#0099ff0"))
	assert.False(t, ValidHexColor(""))
}

func TestValidButtonColor(t *testing.T) {
	for _, color := range []string{ButtonPrimary, ButtonSecondary, ButtonSuccess, ButtonDanger} {
		assert.True(t, ValidButtonColor(color))
	}
	assert.False(t, ValidButtonColor("success"), "styles are case-sensitive")
	assert.False(t, ValidButtonColor("Link"))
	assert.False(t, ValidButtonColor(""))
}

func TestPatchValidate(t *testing.T) {
	assert.NoError(t, (&Patch{}).Validate(), "empty patch is a no-op, not an error")

	valid := &Patch{
		Enabled:     boolPtr(true),
		ButtonColor: strPtr(ButtonDanger),
		EmbedColor:  strPtr("#ff0000"),
	}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&Patch{ButtonColor: strPtr("Orange")}).Validate())
	assert.Error(t, (&Patch{EmbedColor: strPtr("red")}).Validate())
	assert.Error(t, (&Patch{EmbedColor: strPtr("#fff")}).Validate())
}

func TestPatchValidateEmbed(t *testing.T) {
	good := &Patch{Embed: &EmbedPatch{
		Title:       "Verify here",
		Description: "Click the button",
	}}
	assert.NoError(t, good.Validate())

	withURLs := &Patch{Embed: &EmbedPatch{
		Title:         "Verify here",
		Description:   "Click the button",
		ThumbnailURL:  "https://example.com/thumb.png",
		FooterIconURL: "https://example.com/icon.png",
	}}
	assert.NoError(t, withURLs.Validate())

	assert.Error(t, (&Patch{Embed: &EmbedPatch{Description: "no title"}}).Validate())
	assert.Error(t, (&Patch{Embed: &EmbedPatch{Title: "no description"}}).Validate())
	assert.Error(t, (&Patch{Embed: &EmbedPatch{
		Title:        "t",
		Description:  "d",
		ThumbnailURL: "not a url",
	}}).Validate())
}

// Fields keys must match the stored document's field names so the dotted-path
// merge lands on the right sub-document entries.
func TestPatchFields(t *testing.T) {
	assert.Empty(t, (&Patch{}).Fields())

	p := &Patch{
		Enabled:        boolPtr(true),
		VerifiedRoleID: strPtr("role123"),
		ButtonColor:    strPtr(ButtonPrimary),
		EmbedColor:     strPtr("#112233"),
	}
	fields := p.Fields()
	require.Len(t, fields, 4)
	assert.Equal(t, true, fields["enabled"])
	assert.Equal(t, "role123", fields["verifiedRole"])
	assert.Equal(t, ButtonPrimary, fields["buttonColor"])
	assert.Equal(t, "#112233", fields["embedColor"])
	assert.NotContains(t, fields, "buttonText")
}

func TestPatchFieldsEmbed(t *testing.T) {
	p := &Patch{Embed: &EmbedPatch{
		Title:         "Welcome",
		Description:   "Verify below",
		FooterText:    "footer",
		ShowTimestamp: true,
	}}
	fields := p.Fields()
	require.Contains(t, fields, "embed")

	embed, ok := fields["embed"].(EmbedConfig)
	require.True(t, ok)
	assert.Equal(t, "Welcome", embed.Title)
	assert.Equal(t, "footer", embed.Footer.Text)
	assert.True(t, embed.ShowTimestamp)
}

// Apply must change exactly the provided fields and leave siblings alone.
func TestPatchApply(t *testing.T) {
	cfg := DefaultConfig()
	originalText := cfg.ButtonText
	originalEmbed := cfg.Embed

	p := &Patch{
		Enabled:    boolPtr(true),
		EmbedColor: strPtr("#ff0000"),
	}
	p.Apply(cfg)

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "#ff0000", cfg.EmbedColor)
	assert.Equal(t, originalText, cfg.ButtonText)
	assert.Equal(t, originalEmbed, cfg.Embed)
}

func TestPatchApplyEmbedReplacesWholesale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Embed.ThumbnailURL = "https://example.com/old.png"

	p := &Patch{Embed: &EmbedPatch{
		Title:       "New title",
		Description: "New description",
	}}
	p.Apply(cfg)

	assert.Equal(t, "New title", cfg.Embed.Title)
	assert.Empty(t, cfg.Embed.ThumbnailURL, "embed patch replaces the whole sub-object")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "Verify", cfg.ButtonText)
	assert.Equal(t, "✅", cfg.ButtonEmoji)
	assert.Equal(t, ButtonSuccess, cfg.ButtonColor)
	assert.Equal(t, "#0099ff", cfg.EmbedColor)
	assert.True(t, ValidHexColor(cfg.EmbedColor))
	assert.True(t, ValidButtonColor(cfg.ButtonColor))
	assert.NotEmpty(t, cfg.Embed.Title)
	assert.NotEmpty(t, cfg.Embed.Description)
	assert.True(t, cfg.Embed.ShowTimestamp)
}
