package config

import (
	"slices"
	"strconv"
	"strings"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/usage"
)

// Validate checks a value before it is persisted.
func Validate(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	if strings.ContainsAny(value, "\r\n") {
		return usage.InvalidConfigValue(key, value, "must be a single line")
	}

	switch key {
	case domain.KeyTelegramOnline, domain.KeyPCPower, domain.KeySilentMode, domain.KeySaveChat:
		if _, err := strconv.ParseBool(value); err != nil {
			return usage.InvalidConfigValue(key, value, "expected true or false")
		}

	case domain.KeyHeadlines:
		n, err := strconv.Atoi(value)
		if err != nil {
			return usage.InvalidConfigValue(key, value, "expected a number")
		}
		if n < domain.MinHeadlines || n > domain.MaxHeadlines {
			return usage.OutOfRange(key, n, domain.MinHeadlines, domain.MaxHeadlines)
		}

	case domain.KeyTheme:
		if value != domain.ThemeDark && value != domain.ThemeLight {
			return usage.InvalidConfigValue(key, value, "expected dark or light")
		}

	case domain.KeyAccentColor:
		if !slices.Contains(domain.AccentColors, value) {
			return usage.InvalidConfigValue(key, value, "expected one of "+strings.Join(domain.AccentColors, ", "))
		}

	case domain.KeyLogLevel:
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "error":
		default:
			return usage.InvalidConfigValue(key, value, "expected debug, info, warn or error")
		}
	}

	return nil
}
