package tui

// Color constants for the leaflog TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#12241A" // Dark forest green
	ColorBorder         = "#3A554A" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E8F0EA" // Primary text (field labels, user input, titles)
	ColorSecondaryText = "#AFC4B5" // Secondary text - sage grey
	ColorDisabledText  = "#6D8377" // Disabled/muted text
	ColorPlaceholder   = "#AFC4B5" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Leaf theme)
	ColorAccentMain   = "#2F9E6E" // Logo, accent elements, active borders
	ColorAccentBright = "#7BD8A8" // Hover, highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings
)
