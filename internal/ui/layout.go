package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops
	// secondary fields and the ingredient bar hides digit hints.
	LayoutCompactWidth = 90

	// DetailMaxWidth caps the recipe overlay so instructions stay readable.
	DetailMaxWidth = 100
)

// LogTailLines is how many log lines the diagnostics overlay shows.
const LogTailLines = 500
