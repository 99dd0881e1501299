package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconBullet   = "•"
	IconTag      = "#"
	IconPrep     = "⏱️"
	IconLevel    = "📊"
	IconServings = "🍽️"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " • "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	WindowWidth  float32 = 1100
	WindowHeight float32 = 800

	ImageBoxWidth  float32 = 280
	ImageBoxHeight float32 = 180

	IngredientsMinHeight float32 = 180

	DialogWidth  float32 = 560
	DialogHeight float32 = 480
)

// MaxShownTags limits the tags rendered next to country and category
const MaxShownTags = 2
