package style

import (
	"os"

	"github.com/chronois/avrora/internal/domain"
)

// Palette holds the colours of one theme and accent.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type Palette struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	User    string
	Accent  string
}

// Themes are the base palettes. Dark themes use bright colours, light
// themes use dark ones.
var Themes = map[string]Palette{
	domain.ThemeDark: {
		Success: "10",  // bright green
		Warning: "11",  // bright yellow
		Error:   "9",   // bright red
		Info:    "14",  // bright cyan
		Muted:   "245", // medium gray
		User:    "15",  // white
	},
	domain.ThemeLight: {
		Success: "28",  // dark green
		Warning: "130", // dark orange
		Error:   "124", // dark red
		Info:    "27",  // dark blue
		Muted:   "243", // medium-dark gray
		User:    "235", // near black
	},
}

// accentColors maps each accent colour name to its dark and light shade.
var accentColors = map[string][2]string{
	"Deep Purple": {"141", "55"},
	"Indigo":      {"105", "61"},
	"Blue":        {"75", "25"},
	"Teal":        {"44", "30"},
	"Green":       {"78", "28"},
	"Orange":      {"214", "166"},
	"Pink":        {"212", "162"},
}

// paletteEnvKeys lets a user override single colours, e.g.
// AVRORA_COLOR_ACCENT=201.
var paletteEnvKeys = map[string]string{
	"color_success": "Success",
	"color_warning": "Warning",
	"color_error":   "Error",
	"color_info":    "Info",
	"color_muted":   "Muted",
	"color_user":    "User",
	"color_accent":  "Accent",
}

// LoadPalette builds the palette for theme and accent.
// Resolution priority:
// 1. Environment variable (AVRORA_COLOR_*)
// 2. Accent colour shade for the theme
// 3. Theme value (unknown themes fall back to dark)
func LoadPalette(theme, accent string) Palette {
	if theme != domain.ThemeLight {
		theme = domain.ThemeDark
	}
	result := Themes[theme]

	shades, ok := accentColors[accent]
	if !ok {
		shades = accentColors[domain.AccentColors[0]]
	}
	if theme == domain.ThemeDark {
		result.Accent = shades[0]
	} else {
		result.Accent = shades[1]
	}

	for key, field := range paletteEnvKeys {
		if v := os.Getenv("AVRORA_" + toUpperSnake(key)); v != "" {
			setColorField(&result, field, v)
		}
	}
	return result
}

// setColorField sets a field on Palette by name.
func setColorField(p *Palette, field, value string) {
	switch field {
	case "Success":
		p.Success = value
	case "Warning":
		p.Warning = value
	case "Error":
		p.Error = value
	case "Info":
		p.Info = value
	case "Muted":
		p.Muted = value
	case "User":
		p.User = value
	case "Accent":
		p.Accent = value
	}
}

// toUpperSnake converts "color_success" to "COLOR_SUCCESS".
func toUpperSnake(s string) string {
	result := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			result[i] = c - 'a' + 'A'
		} else {
			result[i] = c
		}
	}
	return string(result)
}
