package common

// Discord color constants
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorSuccess = 0x2ECC71 // Green
	ColorDanger  = 0x992D22 // Dark red
	ColorError   = 0xED4245 // Red
	ColorWarning = 0xE67E22 // Orange
	ColorInfo    = 0x3498DB // Blue
)

// Embed limits enforced by Discord
const (
	MaxEmbedFieldValue = 1024
)

// Footer text shared by reminder embeds
const BotName = "RevoBot"
