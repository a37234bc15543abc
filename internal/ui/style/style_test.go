package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronois/avrora/internal/domain"
)

func semantic() map[string]func(string) string {
	return map[string]func(string) string{
		"Success": Success,
		"Warning": Warning,
		"Error":   Error,
		"Info":    Info,
		"Header":  Header,
		"Muted":   Muted,
		"Accent":  Accent,
	}
}

func TestDisabledReturnsPlainText(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("AVRORA_NO_COLOR", "")

	Init(false, domain.ThemeDark, "Teal")

	for name, fn := range semantic() {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, "test message", fn("test message"))
		})
	}
	require.Equal(t, "я", Role(domain.RoleUser, "я"))
}

func TestEnabledReturnsStyledText(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("AVRORA_NO_COLOR", "")

	Init(true, domain.ThemeDark, "Teal")

	for name, fn := range semantic() {
		t.Run(name, func(t *testing.T) {
			out := fn("test message")
			require.Contains(t, out, "test message")
			require.True(t, strings.Contains(out, "\x1b["), "%s should contain ANSI codes: %q", name, out)
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	for _, env := range []string{"NO_COLOR", "AVRORA_NO_COLOR"} {
		t.Run(env, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			t.Setenv("AVRORA_NO_COLOR", "")
			t.Setenv(env, "1")

			Init(true, domain.ThemeDark, "Teal")

			require.False(t, Enabled())
			require.Equal(t, "test", Warning("test"))
		})
	}
}

func TestLoadPalette(t *testing.T) {
	t.Setenv("AVRORA_COLOR_ACCENT", "")

	dark := LoadPalette(domain.ThemeDark, "Orange")
	require.Equal(t, "214", dark.Accent)
	require.Equal(t, Themes[domain.ThemeDark].Success, dark.Success)

	light := LoadPalette(domain.ThemeLight, "Orange")
	require.Equal(t, "166", light.Accent)
	require.Equal(t, "124", light.Error)

	unknown := LoadPalette("sepia", "Magenta")
	require.Equal(t, "141", unknown.Accent)
	require.Equal(t, Themes[domain.ThemeDark].User, unknown.User)
}

func TestLoadPalette_EnvOverride(t *testing.T) {
	t.Setenv("AVRORA_COLOR_ACCENT", "201")
	t.Setenv("AVRORA_COLOR_USER", "bold")

	p := LoadPalette(domain.ThemeDark, "Blue")

	require.Equal(t, "201", p.Accent)
	require.Equal(t, "bold", p.User)
}

func TestApply_SwitchesPalette(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("AVRORA_NO_COLOR", "")
	t.Setenv("AVRORA_COLOR_ACCENT", "")

	Init(true, domain.ThemeDark, "Blue")
	require.Equal(t, "75", Current().Accent)

	ApplySettings(domain.Settings{Theme: domain.ThemeLight, AccentColor: "Pink"})
	require.Equal(t, "162", Current().Accent)

	Init(false, domain.ThemeDark, "Blue")
	Apply(domain.ThemeDark, "Green")
	require.Equal(t, "162", Current().Accent, "disabled styling keeps the palette")
}

func TestAccentColorsHaveShades(t *testing.T) {
	for _, name := range domain.AccentColors {
		_, ok := accentColors[name]
		require.True(t, ok, "no shades for %q", name)
	}
}

func TestNopStyler(t *testing.T) {
	var s domain.Styler = NopStyler{}
	require.False(t, s.Enabled())
	require.Equal(t, "x", s.Accent("x"))
}

func TestUpdate_OnlyThemeAndAccent(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("AVRORA_NO_COLOR", "")
	t.Setenv("AVRORA_COLOR_ACCENT", "")

	Init(true, domain.ThemeDark, "Green")

	Update(domain.KeyAccentColor, "Orange")
	require.Equal(t, "214", Current().Accent)

	Update(domain.KeyTheme, domain.ThemeLight)
	require.Equal(t, "166", Current().Accent)

	Update(domain.KeyCity, "Київ")
	require.Equal(t, "166", Current().Accent)
}
