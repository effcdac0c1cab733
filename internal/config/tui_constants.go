package config

// Layout constants.
const (
	// MinKidCardWidth is the narrowest a kid card renders before cards stack.
	MinKidCardWidth = 26

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 80

	// KidProgressWidth is the preferred width for kid progress bars.
	KidProgressWidth = 20

	// HeaderProgressWidth is the preferred width for the overall progress bar.
	HeaderProgressWidth = 30
)

// Display limits.
const (
	// MaxVisibleTasks limits tasks shown on the mission board before scrolling.
	MaxVisibleTasks = 8

	// MaxBadgesDisplayed limits inline badge display on kid cards.
	MaxBadgesDisplayed = 3

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxTitleLength is the maximum task title length.
	MaxTitleLength = 60

	// MaxDescriptionLength is the maximum task description length.
	MaxDescriptionLength = 200

	// MaxLabelLength bounds the due and time-of-day labels.
	MaxLabelLength = 30
)
