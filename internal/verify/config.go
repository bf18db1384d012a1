package verify

// Config is the per-guild verification document, stored nested under the
// "verification" key of the guild record.
type Config struct {
	Enabled               bool        `bson:"enabled" json:"enabled"`
	VerifiedRoleID        string      `bson:"verifiedRole,omitempty" json:"verifiedRole,omitempty"`
	VerificationChannelID string      `bson:"verificationChannel,omitempty" json:"verificationChannel,omitempty"`
	LogChannelID          string      `bson:"logChannel,omitempty" json:"logChannel,omitempty"`
	ButtonText            string      `bson:"buttonText" json:"buttonText"`
	ButtonEmoji           string      `bson:"buttonEmoji" json:"buttonEmoji"`
	ButtonColor           string      `bson:"buttonColor" json:"buttonColor"`
	EmbedColor            string      `bson:"embedColor" json:"embedColor"`
	SuccessMessage        string      `bson:"successMessage" json:"successMessage"`
	Embed                 EmbedConfig `bson:"embed" json:"embed"`
}

// EmbedConfig describes the verification embed sent to the verification channel.
type EmbedConfig struct {
	Title         string       `bson:"title" json:"title"`
	Description   string       `bson:"description" json:"description"`
	ThumbnailURL  string       `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Footer        FooterConfig `bson:"footer" json:"footer"`
	ShowTimestamp bool         `bson:"timestamp" json:"timestamp"`
}

type FooterConfig struct {
	Text    string `bson:"text" json:"text"`
	IconURL string `bson:"iconURL,omitempty" json:"iconURL,omitempty"`
}

// Button colors accepted by ButtonColor.
const (
	ButtonPrimary   = "Primary"
	ButtonSecondary = "Secondary"
	ButtonSuccess   = "Success"
	ButtonDanger    = "Danger"
)

// DefaultConfig returns the verification document synthesized on first access
// for a guild with no stored configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled:        false,
		ButtonText:     "Verify",
		ButtonEmoji:    "✅",
		ButtonColor:    ButtonSuccess,
		EmbedColor:     "#0099ff",
		SuccessMessage: "`✅` **Verification completed successfully!**",
		Embed: EmbedConfig{
			Title:         "🔐 **Server Verification**",
			Description:   "Welcome to the server! To access channels, you must first verify yourself.\n\n**Click the button below to verify yourself and receive the necessary permissions.**",
			Footer:        FooterConfig{Text: "EchoBot Discord - Verification System"},
			ShowTimestamp: true,
		},
	}
}
