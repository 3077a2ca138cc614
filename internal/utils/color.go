package utils

import "strings"

// CategoryPalette is the rotation of default colors assigned to categories
// created without an explicit color.
var CategoryPalette = []string{
	"#4ECDC4", // teal
	"#FF6B6B", // coral
	"#FFD93D", // yellow
	"#6BCB77", // green
	"#4D96FF", // blue
	"#B39DDB", // lavender
	"#FF9F45", // orange
	"#F06292", // pink
}

// PaletteColor returns the palette entry for the i-th created category,
// wrapping around when the palette is exhausted.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return CategoryPalette[i%len(CategoryPalette)]
}

// IsHexColor reports whether s looks like a #RGB, #RRGGBB or #AARRGGBB hex color.
func IsHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	digits := s[1:]
	switch len(digits) {
	case 3, 6, 8:
	default:
		return false
	}
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
