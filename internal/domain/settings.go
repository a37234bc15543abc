package domain

import (
	"strconv"
	"strings"
)

// Settings is an immutable snapshot of the user's settings taken at the
// start of a dispatch cycle or when a deferred action is scheduled.
type Settings struct {
	Name           string
	City           string
	MusicURL       string
	TelegramOnline bool
	TelegramPath   string
	PCPower        bool
	Theme          string
	AccentColor    string
	Headlines      int
	Silent         bool
	SaveChat       bool
	LogLevel       string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return SettingsFromMap(nil)
}

// SettingsFromMap builds a snapshot from raw key/value pairs. Missing or
// malformed values fall back to their defaults.
func SettingsFromMap(m map[string]string) Settings {
	get := func(key string) string {
		if v, ok := m[key]; ok {
			return v
		}
		v, _ := GetDefaultValue(key)
		return v
	}

	s := Settings{
		Name:           get(KeyName),
		City:           get(KeyCity),
		MusicURL:       get(KeyMusic),
		TelegramOnline: parseBool(get(KeyTelegramOnline)),
		TelegramPath:   get(KeyTelegramPath),
		PCPower:        parseBool(get(KeyPCPower)),
		Theme:          get(KeyTheme),
		AccentColor:    get(KeyAccentColor),
		Silent:         parseBool(get(KeySilentMode)),
		SaveChat:       parseBool(get(KeySaveChat)),
		LogLevel:       get(KeyLogLevel),
	}

	if s.MusicURL == "" {
		s.MusicURL = DefaultMusicURL
	}
	if s.Theme != ThemeLight {
		s.Theme = ThemeDark
	}

	n, err := strconv.Atoi(strings.TrimSpace(get(KeyHeadlines)))
	switch {
	case err != nil:
		n = DefaultHeadlines
	case n < MinHeadlines:
		n = MinHeadlines
	case n > MaxHeadlines:
		n = MaxHeadlines
	}
	s.Headlines = n

	return s
}

// ToMap renders the snapshot back into key/value pairs.
func (s Settings) ToMap() map[string]string {
	return map[string]string{
		KeyName:           s.Name,
		KeyCity:           s.City,
		KeyMusic:          s.MusicURL,
		KeyTelegramOnline: strconv.FormatBool(s.TelegramOnline),
		KeyTelegramPath:   s.TelegramPath,
		KeyPCPower:        strconv.FormatBool(s.PCPower),
		KeyTheme:          s.Theme,
		KeyAccentColor:    s.AccentColor,
		KeyHeadlines:      strconv.Itoa(s.Headlines),
		KeySilentMode:     strconv.FormatBool(s.Silent),
		KeySaveChat:       strconv.FormatBool(s.SaveChat),
		KeyLogLevel:       s.LogLevel,
	}
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}
