package config

import "strings"

// Set replaces the value of key in lines, or appends key=value.
// Comments, blank lines and order are preserved. Reports whether an
// existing line was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		k, _, ok := splitLine(line)
		if ok && k == key {
			lines[i] = key + "=" + value
			return lines, true
		}
	}

	lines = append(lines, key+"="+value)
	return lines, false
}

// Unset removes every line holding key.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		k, _, ok := splitLine(line)
		if ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

// splitLine splits a key=value line. Comments, blank lines and lines
// without '=' report ok=false.
func splitLine(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\uFEFF"))
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	k, v, found := strings.Cut(trimmed, "=")
	if !found {
		return "", "", false
	}

	return strings.TrimSpace(k), strings.TrimSpace(v), true
}
