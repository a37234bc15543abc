package config

import (
	"fmt"
	"strings"
)

// Parse turns key=value lines into a map. Blank lines and '#' comments are
// skipped, a leading BOM is ignored and the last duplicate wins. A line
// without '=' or with an empty key is an error.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, found := strings.Cut(trimmed, "=")
		if !found {
			return nil, fmt.Errorf("config: line %d: missing '='", i+1)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = strings.TrimSpace(value)
	}

	return cfg, nil
}
