package models

import "strings"

// Theme identifies one of the storefront colour schemes.
type Theme string

const (
	ThemeCleanLight Theme = "theme1"
	ThemeDarkPro    Theme = "theme2"
	ThemeWarmCozy   Theme = "theme3"

	// DefaultTheme is used when no valid preference has been stored.
	DefaultTheme = ThemeCleanLight
)

// Themes lists every theme in display order.
var Themes = []Theme{ThemeCleanLight, ThemeDarkPro, ThemeWarmCozy}

// ValidTheme reports whether value names one of the supported themes.
func ValidTheme(value string) bool {
	switch Theme(value) {
	case ThemeCleanLight, ThemeDarkPro, ThemeWarmCozy:
		return true
	default:
		return false
	}
}

// NormalizeTheme trims value and returns it as a Theme, falling back to the default.
func NormalizeTheme(value string) Theme {
	trimmed := strings.TrimSpace(value)
	if ValidTheme(trimmed) {
		return Theme(trimmed)
	}
	return DefaultTheme
}

func (t Theme) String() string {
	return string(t)
}
