// Package commands persists user-defined voice commands. Each line of the
// file is pattern=action; file order is match order.
package commands

import (
	"fmt"
	"strings"

	"github.com/chronois/avrora/internal/config"
	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
	"github.com/chronois/avrora/internal/usage"
)

// Store is the custom command file.
type Store struct {
	file *config.File
	log  domain.Logger
}

// NewStore returns a store backed by the file at path.
func NewStore(path string, logger domain.Logger) *Store {
	return &Store{
		file: config.NewFile(path, config.WithSeed(seed)),
		log:  log.Named(logger, "commands"),
	}
}

func seed() []string {
	return []string{
		"# avrora custom commands",
		"# pattern=shell command, one per line. A pattern may hold one [slot];",
		"# [число] only accepts whole numbers.",
	}
}

// Path returns the file location.
func (s *Store) Path() string {
	return s.file.Path()
}

// Entries returns the commands in file order. Malformed lines are dropped
// and the file is rewritten without them.
func (s *Store) Entries() ([]domain.CommandEntry, error) {
	var entries []domain.CommandEntry
	err := s.file.WithLock(func() error {
		lines, err := s.file.ReadLines()
		if err != nil {
			return fmt.Errorf("read commands: %w", err)
		}

		var dirty bool
		entries, lines, dirty = parse(lines)
		if dirty {
			s.log.Warn("dropped malformed lines in %s", s.file.Path())
			if err := s.file.WriteLines(lines); err != nil {
				s.log.Error("rewrite %s: %v", s.file.Path(), err)
			}
		}
		return nil
	})
	return entries, err
}

// Get returns the action stored for pattern.
func (s *Store) Get(pattern string) (string, bool, error) {
	entries, err := s.Entries()
	if err != nil {
		return "", false, err
	}
	pattern = normalizePattern(pattern)
	for _, e := range entries {
		if e.Pattern == pattern {
			return e.Action, true, nil
		}
	}
	return "", false, nil
}

// Set adds or replaces a command. The pattern is stored lower-cased.
func (s *Store) Set(pattern, action string) error {
	pattern = normalizePattern(pattern)
	action = strings.TrimSpace(action)

	if err := validate(pattern, action); err != nil {
		return err
	}

	return s.file.WithLock(func() error {
		lines, err := s.file.ReadLines()
		if err != nil {
			return fmt.Errorf("read commands: %w", err)
		}
		lines, updated := config.Set(lines, pattern, action)
		if err := s.file.WriteLines(lines); err != nil {
			return fmt.Errorf("write commands: %w", err)
		}
		if updated {
			s.log.Info("updated %q", pattern)
		} else {
			s.log.Info("added %q", pattern)
		}
		return nil
	})
}

// Delete removes the command with exactly this pattern.
func (s *Store) Delete(pattern string) (bool, error) {
	pattern = normalizePattern(pattern)
	var removed bool

	err := s.file.WithLock(func() error {
		lines, err := s.file.ReadLines()
		if err != nil {
			return fmt.Errorf("read commands: %w", err)
		}
		lines, removed = config.Unset(lines, pattern)
		if !removed {
			return nil
		}
		if err := s.file.WriteLines(lines); err != nil {
			return fmt.Errorf("write commands: %w", err)
		}
		s.log.Info("deleted %q", pattern)
		return nil
	})
	return removed, err
}

func normalizePattern(p string) string {
	return strings.ToLower(strings.TrimSpace(p))
}

func validate(pattern, action string) error {
	if pattern == "" {
		return usage.MissingArgument("command pattern")
	}
	if action == "" {
		return usage.MissingArgument("command action")
	}
	if strings.HasPrefix(pattern, "#") {
		return usage.InvalidConfigValue("pattern", pattern, "must not start with '#'")
	}
	if strings.Contains(pattern, "=") {
		return usage.InvalidConfigValue("pattern", pattern, "must not contain '='")
	}
	if strings.ContainsAny(pattern+action, "\r\n") {
		return usage.InvalidConfigValue("command", pattern, "must be a single line")
	}
	if strings.Count(pattern, "[") > 1 || strings.Count(pattern, "]") > 1 {
		return usage.InvalidConfigValue("pattern", pattern, "only one [slot] is allowed")
	}
	start, end := strings.Index(pattern, "["), strings.Index(pattern, "]")
	if (start < 0) != (end < 0) || end < start {
		return usage.InvalidConfigValue("pattern", pattern, "unbalanced [slot]")
	}
	return nil
}

// parse reads pattern=action lines. A repeated pattern keeps its first
// position and its last action. dirty reports that cleaned differs from
// lines.
func parse(lines []string) (entries []domain.CommandEntry, cleaned []string, dirty bool) {
	index := make(map[string]int)

	for _, line := range lines {
		if isComment(line) {
			cleaned = append(cleaned, line)
			continue
		}

		trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\uFEFF"))

		pattern, action, ok := strings.Cut(trimmed, "=")
		pattern = normalizePattern(pattern)
		action = strings.TrimSpace(action)
		if !ok || validate(pattern, action) != nil {
			dirty = true
			continue
		}

		if i, seen := index[pattern]; seen {
			entries[i].Action = action
			dirty = true
			continue
		}

		if pattern+"="+action != trimmed {
			dirty = true
		}
		index[pattern] = len(entries)
		entries = append(entries, domain.CommandEntry{Pattern: pattern, Action: action})
		cleaned = append(cleaned, line)
	}

	if dirty {
		cleaned = rebuild(cleaned, entries)
	}
	return entries, cleaned, dirty
}

// rebuild rewrites entry lines from entries, keeping comments in place.
func rebuild(lines []string, entries []domain.CommandEntry) []string {
	out := make([]string, 0, len(lines))
	i := 0
	for _, line := range lines {
		if isComment(line) {
			out = append(out, line)
			continue
		}
		out = append(out, entries[i].Pattern+"="+entries[i].Action)
		i++
	}
	return out
}

func isComment(line string) bool {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\uFEFF"))
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

var _ domain.CommandStore = (*Store)(nil)
