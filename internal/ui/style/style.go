// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss colours are chosen. All
// styling is semantic (Success, Accent, User, etc.) rather than visual.
// The palette follows the theme and accent_color settings and can be
// switched while the chat is running.
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/chronois/avrora/internal/domain"
)

var (
	mu      sync.RWMutex
	enabled bool
	palette Palette
	theme   string
	accent  string

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	accentStyle  lipgloss.Style
	userStyle    lipgloss.Style
	systemStyle  lipgloss.Style
)

// Init sets up styling for the given theme and accent colour. NO_COLOR and
// AVRORA_NO_COLOR disable styling regardless of enable.
//
// This function should be called once from main before any output.
func Init(enable bool, t, a string) {
	mu.Lock()
	defer mu.Unlock()

	theme, accent = t, a
	if os.Getenv("NO_COLOR") != "" || os.Getenv("AVRORA_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		lipgloss.SetColorProfile(termenv.ANSI256)
		palette = LoadPalette(t, a)
		initStyles(palette)
	}
}

// Apply switches the palette after a theme or accent change. It does
// nothing while styling is disabled.
func Apply(t, a string) {
	mu.Lock()
	defer mu.Unlock()

	theme, accent = t, a
	if !enabled {
		return
	}
	palette = LoadPalette(t, a)
	initStyles(palette)
}

// Update applies a single changed setting. Keys other than theme and
// accent_color are ignored.
func Update(key, value string) {
	mu.RLock()
	t, a := theme, accent
	mu.RUnlock()

	switch key {
	case domain.KeyTheme:
		Apply(value, a)
	case domain.KeyAccentColor:
		Apply(t, value)
	}
}

// ApplySettings is Apply for a settings snapshot.
func ApplySettings(s domain.Settings) {
	Apply(s.Theme, s.AccentColor)
}

// Current returns the palette in use.
func Current() Palette {
	mu.RLock()
	defer mu.RUnlock()
	return palette
}

func initStyles(p Palette) {
	successStyle = makeStyle(p.Success)
	warningStyle = makeStyle(p.Warning)
	errorStyle   = makeStyle(p.Error)
	infoStyle    = makeStyle(p.Info)
	mutedStyle   = makeStyle(p.Muted)
	headerStyle  = makeStyle(p.Accent).Bold(true)
	accentStyle  = makeStyle(p.Accent)
	userStyle    = makeStyle(p.User).Bold(true)
	systemStyle  = makeStyle(p.Error).Italic(true)
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(s *lipgloss.Style, text string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string { return render(&successStyle, text) }

// Warning styles text for warning messages.
func Warning(text string) string { return render(&warningStyle, text) }

// Error styles text for error messages.
func Error(text string) string { return render(&errorStyle, text) }

// Info styles text for informational messages.
func Info(text string) string { return render(&infoStyle, text) }

// Header styles text for section headers or titles.
func Header(text string) string { return render(&headerStyle, text) }

// Muted styles text for less important or secondary information.
func Muted(text string) string { return render(&mutedStyle, text) }

// Accent styles text with the configured accent colour.
func Accent(text string) string { return render(&accentStyle, text) }

// Role styles a chat line by its author.
func Role(role domain.Role, text string) string {
	switch role {
	case domain.RoleUser:
		return render(&userStyle, text)
	case domain.RoleSystem:
		return render(&systemStyle, text)
	default:
		return render(&accentStyle, text)
	}
}
