package theme

import (
	"strings"

	"storefront/models"
)

// FontsURL loads the typefaces referenced by the theme variables.
const FontsURL = "https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&family=Merriweather:wght@300;400;700&family=Pacifico&display=swap"

// Variable is a CSS custom property applied to the document root.
type Variable struct {
	Name  string
	Value string
}

// Definition contains the presentation of one storefront theme.
type Definition struct {
	ID          models.Theme
	Label       string
	Description string
	Icon        string
	Variables   []Variable
}

var catalogue = map[models.Theme]Definition{
	models.ThemeCleanLight: {
		ID:          models.ThemeCleanLight,
		Label:       "Clean Light",
		Description: "Modern & Minimal",
		Icon:        "☀",
		Variables: []Variable{
			{"--font", "'Inter', sans-serif"},
			{"--bg", "linear-gradient(135deg, #f8fafc 0%, #e2e8f0 100%)"},
			{"--text", "#1e293b"},
			{"--card-bg", "#ffffff"},
			{"--card-shadow", "0 10px 25px rgba(0, 0, 0, 0.1)"},
			{"--card-hover-shadow", "0 20px 40px rgba(0, 0, 0, 0.15)"},
			{"--accent", "#3b82f6"},
			{"--accent-hover", "#2563eb"},
			{"--border", "#e2e8f0"},
			{"--input-bg", "#ffffff"},
			{"--input-border", "#d1d5db"},
			{"--input-focus", "#3b82f6"},
		},
	},
	models.ThemeDarkPro: {
		ID:          models.ThemeDarkPro,
		Label:       "Dark Pro",
		Description: "Professional Dark",
		Icon:        "☾",
		Variables: []Variable{
			{"--font", "'Merriweather', serif"},
			{"--bg", "linear-gradient(135deg, #0f172a 0%, #1e293b 100%)"},
			{"--text", "#e2e8f0"},
			{"--card-bg", "linear-gradient(145deg, #1e293b, #334155)"},
			{"--card-shadow", "0 10px 25px rgba(0, 0, 0, 0.3)"},
			{"--card-hover-shadow", "0 20px 40px rgba(0, 0, 0, 0.4)"},
			{"--accent", "#8b5cf6"},
			{"--accent-hover", "#7c3aed"},
			{"--border", "#334155"},
			{"--input-bg", "#334155"},
			{"--input-border", "#475569"},
			{"--input-focus", "#8b5cf6"},
		},
	},
	models.ThemeWarmCozy: {
		ID:          models.ThemeWarmCozy,
		Label:       "Warm Cozy",
		Description: "Playful & Friendly",
		Icon:        "♥",
		Variables: []Variable{
			{"--font", "'Pacifico', cursive"},
			{"--bg", "linear-gradient(135deg, #fff7ed 0%, #fed7aa 100%)"},
			{"--text", "#334155"},
			{"--card-bg", "linear-gradient(145deg, #fffbeb, #fef3c7)"},
			{"--card-shadow", "0 10px 25px rgba(245, 158, 11, 0.2)"},
			{"--card-hover-shadow", "0 20px 40px rgba(245, 158, 11, 0.3)"},
			{"--accent", "#f59e0b"},
			{"--accent-hover", "#d97706"},
			{"--border", "#fed7aa"},
			{"--input-bg", "#fffbeb"},
			{"--input-border", "#fbbf24"},
			{"--input-focus", "#f59e0b"},
		},
	},
}

// Resolve returns the definition for id, falling back to the default theme.
func Resolve(id models.Theme) Definition {
	if def, ok := catalogue[id]; ok {
		return def
	}
	return catalogue[models.DefaultTheme]
}

// Options lists the themes in tab order.
func Options() []Definition {
	options := make([]Definition, 0, len(models.Themes))
	for _, id := range models.Themes {
		options = append(options, catalogue[id])
	}
	return options
}

// RootStyle renders the custom properties as a :root rule.
func (d Definition) RootStyle() string {
	var b strings.Builder
	b.WriteString(":root{")
	for _, v := range d.Variables {
		b.WriteString(v.Name)
		b.WriteString(":")
		b.WriteString(v.Value)
		b.WriteString(";")
	}
	b.WriteString("}")
	return b.String()
}
