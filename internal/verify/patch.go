package verify

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidButtonColor reports whether s is one of the four accepted styles.
func ValidButtonColor(s string) bool {
	return validate.Var(s, "oneof=Primary Secondary Success Danger") == nil
}

// ValidHexColor reports whether s is a "#rrggbb" color.
func ValidHexColor(s string) bool {
	return validate.Var(s, "len=7,hexcolor") == nil
}

// Patch is a partial update to a guild's verification config. Nil fields are
// left untouched; the whole patch is rejected if any provided field fails
// validation, so a bad color never causes a partial write.
type Patch struct {
	Enabled               *bool
	VerifiedRoleID        *string
	VerificationChannelID *string
	LogChannelID          *string
	ButtonText            *string
	ButtonEmoji           *string
	ButtonColor           *string `validate:"omitempty,oneof=Primary Secondary Success Danger"`
	EmbedColor            *string `validate:"omitempty,len=7,hexcolor"`
	SuccessMessage        *string
	Embed                 *EmbedPatch
}

// EmbedPatch replaces the embed sub-object wholesale.
type EmbedPatch struct {
	Title         string `validate:"required"`
	Description   string `validate:"required"`
	ThumbnailURL  string `validate:"omitempty,url"`
	FooterText    string
	FooterIconURL string `validate:"omitempty,url"`
	ShowTimestamp bool
}

// Validate checks the provided fields against the verification constraints:
// embed colors must be 6-digit hex, button colors one of the four styles,
// URLs well-formed.
func (p *Patch) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid verification patch: %w", err)
	}
	if p.Embed != nil {
		if err := validate.Struct(p.Embed); err != nil {
			return fmt.Errorf("invalid verification embed: %w", err)
		}
	}
	return nil
}

// Fields flattens the patch into document fields keyed relative to the
// verification sub-document, suitable for a path-wise merge. Only provided
// fields appear, so sibling fields are never clobbered.
func (p *Patch) Fields() map[string]any {
	fields := map[string]any{}
	if p.Enabled != nil {
		fields["enabled"] = *p.Enabled
	}
	if p.VerifiedRoleID != nil {
		fields["verifiedRole"] = *p.VerifiedRoleID
	}
	if p.VerificationChannelID != nil {
		fields["verificationChannel"] = *p.VerificationChannelID
	}
	if p.LogChannelID != nil {
		fields["logChannel"] = *p.LogChannelID
	}
	if p.ButtonText != nil {
		fields["buttonText"] = *p.ButtonText
	}
	if p.ButtonEmoji != nil {
		fields["buttonEmoji"] = *p.ButtonEmoji
	}
	if p.ButtonColor != nil {
		fields["buttonColor"] = *p.ButtonColor
	}
	if p.EmbedColor != nil {
		fields["embedColor"] = *p.EmbedColor
	}
	if p.SuccessMessage != nil {
		fields["successMessage"] = *p.SuccessMessage
	}
	if p.Embed != nil {
		fields["embed"] = EmbedConfig{
			Title:         p.Embed.Title,
			Description:   p.Embed.Description,
			ThumbnailURL:  p.Embed.ThumbnailURL,
			Footer:        FooterConfig{Text: p.Embed.FooterText, IconURL: p.Embed.FooterIconURL},
			ShowTimestamp: p.Embed.ShowTimestamp,
		}
	}
	return fields
}

// Apply merges the patch into cfg in place. Mirrors the path-wise merge the
// store performs server-side; used to refresh in-memory views and by tests.
func (p *Patch) Apply(cfg *Config) {
	if p.Enabled != nil {
		cfg.Enabled = *p.Enabled
	}
	if p.VerifiedRoleID != nil {
		cfg.VerifiedRoleID = *p.VerifiedRoleID
	}
	if p.VerificationChannelID != nil {
		cfg.VerificationChannelID = *p.VerificationChannelID
	}
	if p.LogChannelID != nil {
		cfg.LogChannelID = *p.LogChannelID
	}
	if p.ButtonText != nil {
		cfg.ButtonText = *p.ButtonText
	}
	if p.ButtonEmoji != nil {
		cfg.ButtonEmoji = *p.ButtonEmoji
	}
	if p.ButtonColor != nil {
		cfg.ButtonColor = *p.ButtonColor
	}
	if p.EmbedColor != nil {
		cfg.EmbedColor = *p.EmbedColor
	}
	if p.SuccessMessage != nil {
		cfg.SuccessMessage = *p.SuccessMessage
	}
	if p.Embed != nil {
		cfg.Embed = EmbedConfig{
			Title:         p.Embed.Title,
			Description:   p.Embed.Description,
			ThumbnailURL:  p.Embed.ThumbnailURL,
			Footer:        FooterConfig{Text: p.Embed.FooterText, IconURL: p.Embed.FooterIconURL},
			ShowTimestamp: p.Embed.ShowTimestamp,
		}
	}
}
