package config

import (
	"strings"

	"github.com/chronois/avrora/internal/domain"
)

// Default returns the built-in value for a settings key.
func Default(key string) (string, bool) {
	return domain.GetDefaultValue(key)
}

// DefaultLines is the content of a freshly created settings file.
func DefaultLines() []string {
	lines := []string{
		"# Avrora settings",
		"# Edit values below or say \"аврора називай мене <ім'я>\", \"аврора я в місті <місто>\"...",
		"",
	}

	for _, key := range domain.VisibleConfigKeys() {
		lines = append(lines, key.Name+"="+key.Default)
	}

	return lines
}

// repair drops malformed lines, resets invalid values to their defaults and
// appends missing keys. Reports whether anything changed.
func repair(lines []string) ([]string, bool) {
	var out []string
	changed := false
	seen := make(map[string]bool)

	for i, line := range lines {
		if i == 0 && strings.HasPrefix(line, "\uFEFF") {
			line = strings.TrimPrefix(line, "\uFEFF")
			changed = true
		}

		key, value, ok := splitLine(line)
		if !ok {
			if isCommentOrBlank(line) {
				out = append(out, line)
			} else {
				changed = true
			}
			continue
		}

		if key == "" {
			changed = true
			continue
		}

		if domain.IsValidConfigKey(key) && Validate(key, value) != nil {
			def, _ := Default(key)
			line = key + "=" + def
			changed = true
		}

		seen[key] = true
		out = append(out, line)
	}

	for _, key := range domain.VisibleConfigKeys() {
		if !seen[key.Name] {
			out = append(out, key.Name+"="+key.Default)
			changed = true
		}
	}

	return out, changed
}

func isCommentOrBlank(line string) bool {
	for _, r := range line {
		switch r {
		case ' ', '\t':
			continue
		case '#':
			return true
		default:
			return false
		}
	}
	return true
}
